package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultPantryExpiry = 7

// PantryItem is a perishable ingredient. Remaining shelf life is never
// stored; see DaysLeft.
type PantryItem struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserEmail string    `gorm:"size:255;not null;index" json:"user"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Expiry    int       `gorm:"not null" json:"expiry"`
	AddedAt   time.Time `gorm:"not null;index" json:"added_at"`
}

func (p *PantryItem) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// DaysLeft returns expiry minus the whole days elapsed since AddedAt,
// floored at zero.
func (p *PantryItem) DaysLeft(now time.Time) int {
	elapsed := 0
	if now.After(p.AddedAt) {
		elapsed = int(now.Sub(p.AddedAt) / (24 * time.Hour))
	}
	left := p.Expiry - elapsed
	if left < 0 {
		return 0
	}
	return left
}
