package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pageza/cookmate/backend/internal/models"
	"github.com/pageza/cookmate/backend/internal/types"
	"gorm.io/gorm"
)

// RecipeService reads the recipe catalogue
type RecipeService struct {
	db *gorm.DB
}

// Ensure RecipeService implements IRecipeService
var _ IRecipeService = (*RecipeService)(nil)

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// List returns recipes ordered by name, narrowed by filter
func (s *RecipeService) List(ctx context.Context, filter types.RecipeFilter) ([]models.Recipe, error) {
	query := s.db.WithContext(ctx).Model(&models.Recipe{})

	if cuisine := strings.TrimSpace(filter.Cuisine); cuisine != "" {
		query = query.Where("LOWER(cuisine) = ?", strings.ToLower(cuisine))
	}

	if difficulty := strings.ToLower(strings.TrimSpace(filter.Difficulty)); difficulty != "" {
		// unset difficulty reads as Easy
		if difficulty == "easy" {
			query = query.Where("LOWER(COALESCE(difficulty, '')) IN ('easy', '')")
		} else {
			query = query.Where("LOWER(difficulty) = ?", difficulty)
		}
	}

	if q := strings.ToLower(strings.TrimSpace(filter.Query)); q != "" {
		like := "%" + escapeLike(q) + "%"
		query = query.Where(
			`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(CAST(ingredients AS TEXT)) LIKE ? ESCAPE '\')`,
			like, like,
		)
	}

	var recipes []models.Recipe
	if err := query.Order("name").Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, nil
}

// Get resolves a recipe by slug. The stable UUID and, for legacy rows,
// the title-cased name are accepted as fallbacks.
func (s *RecipeService) Get(ctx context.Context, slug string) (*models.Recipe, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrRecipeNotFound
	}

	db := s.db.WithContext(ctx)
	var recipe models.Recipe

	err := db.Where("slug = ?", slug).First(&recipe).Error
	if err == nil {
		return &recipe, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get recipe %q: %w", slug, err)
	}

	if id, perr := uuid.Parse(slug); perr == nil {
		err = db.Where("id = ?", id).First(&recipe).Error
	} else {
		err = db.Where("name = ?", Unslug(slug)).First(&recipe).Error
	}
	switch {
	case err == nil:
		return &recipe, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrRecipeNotFound
	default:
		return nil, fmt.Errorf("failed to get recipe %q: %w", slug, err)
	}
}

// FindByName matches name case-insensitively, exact match first and
// then the shortest name containing it.
func (s *RecipeService) FindByName(ctx context.Context, name string) (*models.Recipe, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, ErrRecipeNotFound
	}

	db := s.db.WithContext(ctx)
	var recipe models.Recipe

	err := db.Where("LOWER(name) = ?", name).First(&recipe).Error
	if err == nil {
		return &recipe, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to match recipe name: %w", err)
	}

	err = db.Where(`LOWER(name) LIKE ? ESCAPE '\'`, "%"+escapeLike(name)+"%").
		Order("LENGTH(name), name").
		First(&recipe).Error
	switch {
	case err == nil:
		return &recipe, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrRecipeNotFound
	default:
		return nil, fmt.Errorf("failed to match recipe name: %w", err)
	}
}

// Upsert inserts a recipe or updates the one with the same slug. The
// existing ID and slug are kept on update.
func (s *RecipeService) Upsert(ctx context.Context, recipe *models.Recipe) (bool, error) {
	if strings.TrimSpace(recipe.Name) == "" {
		return false, ErrMissingName
	}
	if recipe.Slug == "" {
		recipe.Slug = models.Slugify(recipe.Name)
	}

	db := s.db.WithContext(ctx)
	var existing models.Recipe
	err := db.Where("slug = ?", recipe.Slug).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := db.Create(recipe).Error; err != nil {
			return false, fmt.Errorf("failed to create recipe %s: %w", recipe.Name, err)
		}
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up recipe %s: %w", recipe.Name, err)
	}

	recipe.ID = existing.ID
	recipe.CreatedAt = existing.CreatedAt
	if err := db.Save(recipe).Error; err != nil {
		return false, fmt.Errorf("failed to update recipe %s: %w", recipe.Name, err)
	}
	return false, nil
}
