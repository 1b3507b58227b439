package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Feedback is append-only. Every client field is optional and kept as
// the raw JSON that was sent. UserEmail and RecipeKey are derived lookup
// keys for profile stats and per-recipe listing.
type Feedback struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	User      RawJSON   `gorm:"column:user_value;type:text" json:"user"`
	RecipeID  RawJSON   `gorm:"column:recipe_value;type:text" json:"recipeId"`
	Rating    RawJSON   `gorm:"type:text" json:"rating"`
	Spice     RawJSON   `gorm:"type:text" json:"spice"`
	Salt      RawJSON   `gorm:"type:text" json:"salt"`
	Sweet     RawJSON   `gorm:"type:text" json:"sweet"`
	Taste     RawJSON   `gorm:"type:text" json:"taste"`
	Improve   RawJSON   `gorm:"type:text" json:"improve"`

	UserEmail *string `gorm:"column:user_email;type:text;index" json:"-"`
	RecipeKey *string `gorm:"column:recipe_id;type:text;index" json:"-"`
}

// TableName returns the table name for the Feedback model
func (Feedback) TableName() string {
	return "feedback"
}

func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
