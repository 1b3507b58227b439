package types

import (
	"encoding/json"

	"github.com/pageza/cookmate/backend/internal/models"
)

// Field names follow the web client: the password travels as "pass".
type RegisterRequest struct {
	Email string `json:"email"`
	Pass  string `json:"pass"`
}

type LoginRequest struct {
	Email string `json:"email"`
	Pass  string `json:"pass"`
}

type VoiceRequest struct {
	Text string `json:"text"`
}

// PantryRequest carries expiry raw so integers, numeric strings and
// null can all be coerced by the pantry service.
type PantryRequest struct {
	User   string          `json:"user"`
	Name   string          `json:"name"`
	Expiry json.RawMessage `json:"expiry"`
}

type FavoriteRequest struct {
	User     string `json:"user"`
	RecipeID string `json:"recipeId"`
}

// FeedbackRequest accepts any JSON value in any field. "recipe" is an
// older spelling of "recipeId".
type FeedbackRequest struct {
	User     models.RawJSON `json:"user"`
	RecipeID models.RawJSON `json:"recipeId"`
	Recipe   models.RawJSON `json:"recipe"`
	Rating   models.RawJSON `json:"rating"`
	Spice    models.RawJSON `json:"spice"`
	Salt     models.RawJSON `json:"salt"`
	Sweet    models.RawJSON `json:"sweet"`
	Taste    models.RawJSON `json:"taste"`
	Improve  models.RawJSON `json:"improve"`
}

// ToModel converts the request into a storable Feedback
func (r *FeedbackRequest) ToModel() *models.Feedback {
	recipeID := r.RecipeID
	if len(recipeID) == 0 {
		recipeID = r.Recipe
	}
	return &models.Feedback{
		User:     r.User,
		RecipeID: recipeID,
		Rating:   r.Rating,
		Spice:    r.Spice,
		Salt:     r.Salt,
		Sweet:    r.Sweet,
		Taste:    r.Taste,
		Improve:  r.Improve,
	}
}

// UpdatePreferencesRequest is a partial update; nil fields are left alone
type UpdatePreferencesRequest struct {
	VoiceEnabled *bool    `json:"voice_enabled"`
	VoiceRate    *float64 `json:"voice_rate"`
	Diet         *string  `json:"diet"`
}
