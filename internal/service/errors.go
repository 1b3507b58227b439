package service

import "errors"

// Validation
var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrEmptyQuery         = errors.New("no text provided")
	ErrMissingName        = errors.New("name is required")
	ErrInvalidExpiry      = errors.New("expiry must be a positive integer")
	ErrMissingRecipeID    = errors.New("recipeId is required")
	ErrInvalidPreferences = errors.New("invalid preferences")
)

// Authorization
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUnknownUser        = errors.New("unknown user")
)

// Not found
var (
	ErrRecipeNotFound   = errors.New("recipe not found")
	ErrNoRecipeMatch    = errors.New("no recipe matched the query")
	ErrItemNotFound     = errors.New("item not found")
	ErrFavoriteNotFound = errors.New("favorite not found")
	ErrImageNotFound    = errors.New("image not found")
)

// Conflict
var (
	ErrUserExists      = errors.New("user already exists")
	ErrAlreadyFavorite = errors.New("recipe already in favorites")
)
