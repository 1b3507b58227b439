package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pageza/cookmate/backend/internal/models"
	"github.com/pageza/cookmate/backend/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileService handles user profile operations
type ProfileService struct {
	db  *gorm.DB
	now func() time.Time
}

// Ensure ProfileService implements IProfileService
var _ IProfileService = (*ProfileService)(nil)

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db, now: time.Now}
}

// GetProfile returns the account with its activity counts
func (s *ProfileService) GetProfile(ctx context.Context, user *models.User) (*types.ProfileResponse, error) {
	if user == nil {
		return nil, ErrUnknownUser
	}

	var stats types.ProfileStats
	db := s.db.WithContext(ctx)
	if err := db.Model(&models.RecipeView{}).Where("user_id = ?", user.ID).Count(&stats.RecipesViewed).Error; err != nil {
		return nil, fmt.Errorf("failed to count recipe views: %w", err)
	}
	if err := db.Model(&models.Favorite{}).Where("user_email = ?", user.Email).Count(&stats.Favorites).Error; err != nil {
		return nil, fmt.Errorf("failed to count favorites: %w", err)
	}
	if err := db.Model(&models.Feedback{}).Where("user_email = ?", user.Email).Count(&stats.Feedback).Error; err != nil {
		return nil, fmt.Errorf("failed to count feedback: %w", err)
	}

	return &types.ProfileResponse{
		Success: true,
		User:    types.NewUserInfo(user),
		Stats:   stats,
	}, nil
}

// UpdatePreferences applies the non-nil fields of req
func (s *ProfileService) UpdatePreferences(ctx context.Context, userID uuid.UUID, req *types.UpdatePreferencesRequest) (*models.User, error) {
	if req == nil {
		return nil, ErrInvalidPreferences
	}

	updates := map[string]interface{}{}
	if req.VoiceEnabled != nil {
		updates["pref_voice_enabled"] = *req.VoiceEnabled
	}
	if req.VoiceRate != nil {
		if *req.VoiceRate <= 0 || *req.VoiceRate > models.MaxVoiceRate {
			return nil, fmt.Errorf("%w: voice_rate must be between 0 and %g", ErrInvalidPreferences, models.MaxVoiceRate)
		}
		updates["pref_voice_rate"] = *req.VoiceRate
	}
	if req.Diet != nil {
		diet := strings.TrimSpace(*req.Diet)
		if len(diet) > 50 {
			return nil, fmt.Errorf("%w: diet is too long", ErrInvalidPreferences)
		}
		updates["pref_diet"] = diet
	}

	var user models.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&user).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", userID).First(&user).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownUser
		}
		return nil, fmt.Errorf("failed to update preferences: %w", err)
	}
	return &user, nil
}

// RecordView notes that userID opened recipeID. Repeat views are no-ops.
func (s *ProfileService) RecordView(ctx context.Context, userID, recipeID uuid.UUID) error {
	view := &models.RecipeView{
		UserID:   userID,
		RecipeID: recipeID,
		ViewedAt: s.now().UTC(),
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "recipe_id"}},
			DoNothing: true,
		}).
		Create(view).Error
	if err != nil {
		return fmt.Errorf("failed to record view: %w", err)
	}
	return nil
}
