package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pageza/cookmate/backend/internal/models"
	"github.com/pageza/cookmate/backend/internal/types"
)

// IRecipeService defines the interface for recipe catalogue reads
type IRecipeService interface {
	List(ctx context.Context, filter types.RecipeFilter) ([]models.Recipe, error)
	Get(ctx context.Context, slug string) (*models.Recipe, error)
	FindByName(ctx context.Context, name string) (*models.Recipe, error)
}

// IVoiceService answers free-text recipe questions
type IVoiceService interface {
	Answer(ctx context.Context, text string) (*VoiceAnswer, error)
}

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	Logout(ctx context.Context, token string) error
	ValidateToken(token string) (*types.TokenClaims, error)
	ValidateSession(ctx context.Context, token string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// IProfileService defines the interface for user profile operations
type IProfileService interface {
	GetProfile(ctx context.Context, user *models.User) (*types.ProfileResponse, error)
	UpdatePreferences(ctx context.Context, userID uuid.UUID, req *types.UpdatePreferencesRequest) (*models.User, error)
	RecordView(ctx context.Context, userID, recipeID uuid.UUID) error
}

// IPantryService defines per-user pantry operations
type IPantryService interface {
	List(ctx context.Context, email string) ([]models.PantryItem, error)
	Add(ctx context.Context, email, name string, expiry int) (*models.PantryItem, error)
	Delete(ctx context.Context, email, id string) error
}

// IFavoriteService defines per-user favorites operations
type IFavoriteService interface {
	List(ctx context.Context, email string) ([]models.Recipe, error)
	Add(ctx context.Context, email, recipeID string) (*models.Favorite, error)
	Remove(ctx context.Context, email, recipeID string) error
}

// IFeedbackService defines the interface for feedback operations
type IFeedbackService interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	ListByRecipe(ctx context.Context, recipeID string) ([]models.Feedback, error)
}

// ISubstitutionService suggests ingredient swaps
type ISubstitutionService interface {
	Suggest(ingredient string) ([]string, error)
	ForRecipe(recipe *models.Recipe) map[string][]string
}
