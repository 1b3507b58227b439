package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pageza/cookmate/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FavoriteService keeps each user's bookmarked recipes
type FavoriteService struct {
	db      *gorm.DB
	recipes IRecipeService
	now     func() time.Time
}

// Ensure FavoriteService implements IFavoriteService
var _ IFavoriteService = (*FavoriteService)(nil)

func NewFavoriteService(db *gorm.DB, recipes IRecipeService) *FavoriteService {
	return &FavoriteService{db: db, recipes: recipes, now: time.Now}
}

// List returns the favorited recipes in the order they were added.
// Favorites whose recipe has since been removed are skipped.
func (s *FavoriteService) List(ctx context.Context, email string) ([]models.Recipe, error) {
	var favorites []models.Favorite
	err := s.db.WithContext(ctx).
		Where("user_email = ?", NormalizeEmail(email)).
		Order("added_at").
		Find(&favorites).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	recipes := make([]models.Recipe, 0, len(favorites))
	for _, fav := range favorites {
		recipe, err := s.recipes.Get(ctx, fav.RecipeID)
		if errors.Is(err, ErrRecipeNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, *recipe)
	}
	return recipes, nil
}

// Add bookmarks a recipe. The recipe must exist and the pair must be new;
// the unique index on (user_email, recipe_id) decides concurrent adds.
func (s *FavoriteService) Add(ctx context.Context, email, recipeID string) (*models.Favorite, error) {
	recipeID = strings.TrimSpace(recipeID)
	if recipeID == "" {
		return nil, ErrMissingRecipeID
	}

	recipe, err := s.recipes.Get(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	fav := &models.Favorite{
		UserEmail: NormalizeEmail(email),
		RecipeID:  recipe.Slug,
		AddedAt:   s.now().UTC(),
	}
	res := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_email"}, {Name: "recipe_id"}},
			DoNothing: true,
		}).
		Create(fav)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to add favorite: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrAlreadyFavorite
	}
	return fav, nil
}

// Remove deletes a bookmark by recipe slug
func (s *FavoriteService) Remove(ctx context.Context, email, recipeID string) error {
	recipeID = strings.TrimSpace(recipeID)
	if recipeID == "" {
		return ErrMissingRecipeID
	}
	if recipe, err := s.recipes.Get(ctx, recipeID); err == nil {
		recipeID = recipe.Slug
	}

	res := s.db.WithContext(ctx).
		Where("user_email = ? AND recipe_id = ?", NormalizeEmail(email), recipeID).
		Delete(&models.Favorite{})
	if res.Error != nil {
		return fmt.Errorf("failed to remove favorite: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}
