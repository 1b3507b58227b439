package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DefaultVoiceRate = 0.95
	MaxVoiceRate     = 10.0
)

type User struct {
	ID           uuid.UUID   `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
	Email        string      `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string      `gorm:"not null" json:"-"`
	Preferences  Preferences `gorm:"embedded;embeddedPrefix:pref_" json:"preferences"`
	LastLogin    *time.Time  `json:"last_login"`

	// One active session per user: SHA-256 of the last issued token.
	SessionTokenHash *string    `gorm:"size:64;index" json:"-"`
	SessionExpiresAt *time.Time `json:"-"`
}

// Preferences drive the client's voice playback and recipe suggestions
type Preferences struct {
	VoiceEnabled bool    `json:"voice_enabled"`
	VoiceRate    float64 `json:"voice_rate"`
	Diet         string  `gorm:"size:50" json:"diet"`
}

func DefaultPreferences() Preferences {
	return Preferences{VoiceEnabled: true, VoiceRate: DefaultVoiceRate}
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// RecipeView records that a signed-in user opened a recipe
type RecipeView struct {
	ID       uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID   uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_recipe_views_user_recipe" json:"user_id"`
	RecipeID uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_recipe_views_user_recipe" json:"recipe_id"`
	ViewedAt time.Time `gorm:"not null" json:"viewed_at"`
}

func (v *RecipeView) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
