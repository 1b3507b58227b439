package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Favorite bookmarks a recipe by slug. A user can hold each recipe once.
type Favorite struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserEmail string    `gorm:"size:255;not null;uniqueIndex:idx_favorites_user_recipe" json:"user"`
	RecipeID  string    `gorm:"size:255;not null;uniqueIndex:idx_favorites_user_recipe" json:"recipeId"`
	AddedAt   time.Time `gorm:"not null" json:"added_at"`
}

func (f *Favorite) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
