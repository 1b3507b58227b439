package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recipe is a read-mostly catalogue entry. ID never changes; Slug is
// derived from Name on first save and kept afterwards.
type Recipe struct {
	ID               uuid.UUID  `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	Slug             string     `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Name             string     `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Cuisine          string     `gorm:"size:100;index" json:"cuisine"`
	Time             string     `gorm:"size:50" json:"time"`
	Difficulty       string     `gorm:"size:50" json:"difficulty"`
	Ingredients      StringList `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	BasicIngredients StringList `gorm:"type:jsonb;not null;default:'[]'" json:"basic_ingredients"`
	Steps            StringList `gorm:"type:jsonb;not null;default:'[]'" json:"steps"`
	Alternatives     StringList `gorm:"type:jsonb;not null;default:'[]'" json:"alternatives"`
	Img              string     `gorm:"size:255" json:"img"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (r *Recipe) BeforeSave(tx *gorm.DB) error {
	if r.Slug == "" {
		r.Slug = Slugify(r.Name)
	}
	return nil
}

// Slugify lower-cases name and replaces spaces with hyphens. Existing
// clients build recipe URLs this way, so the rule must not change.
func Slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}
