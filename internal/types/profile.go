package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/pageza/cookmate/backend/internal/models"
)

// UserInfo is the public view of an account
type UserInfo struct {
	ID          uuid.UUID          `json:"id"`
	Email       string             `json:"email"`
	CreatedAt   time.Time          `json:"created_at"`
	LastLogin   *time.Time         `json:"last_login"`
	Preferences models.Preferences `json:"preferences"`
}

func NewUserInfo(u *models.User) UserInfo {
	return UserInfo{
		ID:          u.ID,
		Email:       u.Email,
		CreatedAt:   u.CreatedAt,
		LastLogin:   u.LastLogin,
		Preferences: u.Preferences,
	}
}

type ProfileStats struct {
	RecipesViewed int64 `json:"recipes_viewed"`
	Favorites     int64 `json:"favorites"`
	Feedback      int64 `json:"feedback"`
}

type ProfileResponse struct {
	Success bool         `json:"success"`
	User    UserInfo     `json:"user"`
	Stats   ProfileStats `json:"stats"`
}

// PantryItem adds the computed shelf life. "_id" mirrors "id" for the
// web client, which reads the legacy key.
type PantryItem struct {
	ID       uuid.UUID `json:"id"`
	LegacyID uuid.UUID `json:"_id"`
	Name     string    `json:"name"`
	Expiry   int       `json:"expiry"`
	AddedAt  time.Time `json:"added_at"`
	DaysLeft int       `json:"days_left"`
}

func NewPantryItem(item *models.PantryItem, now time.Time) PantryItem {
	return PantryItem{
		ID:       item.ID,
		LegacyID: item.ID,
		Name:     item.Name,
		Expiry:   item.Expiry,
		AddedAt:  item.AddedAt,
		DaysLeft: item.DaysLeft(now),
	}
}
