package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pageza/cookmate/backend/internal/models"
	"gorm.io/gorm"
)

// FeedbackService stores ratings and taste notes. Nothing is validated:
// feedback for unknown recipes, anonymous feedback and oddly typed values
// are all kept as sent.
type FeedbackService struct {
	db *gorm.DB
}

// Ensure FeedbackService implements IFeedbackService
var _ IFeedbackService = (*FeedbackService)(nil)

func NewFeedbackService(db *gorm.DB) *FeedbackService {
	return &FeedbackService{db: db}
}

func (s *FeedbackService) Create(ctx context.Context, feedback *models.Feedback) error {
	feedback.UserEmail, feedback.RecipeKey = nil, nil
	if user, ok := feedback.User.Text(); ok {
		if email := NormalizeEmail(user); email != "" {
			feedback.UserEmail = &email
		}
	}
	if recipe, ok := feedback.RecipeID.Text(); ok {
		if key := strings.TrimSpace(recipe); key != "" {
			feedback.RecipeKey = &key
		}
	}
	if err := s.db.WithContext(ctx).Create(feedback).Error; err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return nil
}

// ListByRecipe returns feedback for one recipe, oldest first. An empty
// recipeID yields an empty list.
func (s *FeedbackService) ListByRecipe(ctx context.Context, recipeID string) ([]models.Feedback, error) {
	recipeID = strings.TrimSpace(recipeID)
	if recipeID == "" {
		return []models.Feedback{}, nil
	}

	var feedback []models.Feedback
	err := s.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("created_at").
		Find(&feedback).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return feedback, nil
}
