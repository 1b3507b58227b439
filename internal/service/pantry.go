package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pageza/cookmate/backend/internal/models"
	"gorm.io/gorm"
)

// PantryService manages each user's perishable ingredients
type PantryService struct {
	db  *gorm.DB
	now func() time.Time
}

// Ensure PantryService implements IPantryService
var _ IPantryService = (*PantryService)(nil)

func NewPantryService(db *gorm.DB) *PantryService {
	return &PantryService{db: db, now: time.Now}
}

// List returns the user's items, newest first
func (s *PantryService) List(ctx context.Context, email string) ([]models.PantryItem, error) {
	var items []models.PantryItem
	err := s.db.WithContext(ctx).
		Where("user_email = ?", NormalizeEmail(email)).
		Order("added_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pantry: %w", err)
	}
	return items, nil
}

func (s *PantryService) Add(ctx context.Context, email, name string, expiry int) (*models.PantryItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingName
	}
	if expiry <= 0 {
		return nil, ErrInvalidExpiry
	}

	item := &models.PantryItem{
		UserEmail: NormalizeEmail(email),
		Name:      name,
		Expiry:    expiry,
		AddedAt:   s.now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, fmt.Errorf("failed to add pantry item: %w", err)
	}
	return item, nil
}

// Delete removes an item only if email owns it. Someone else's item
// reports ErrItemNotFound, same as a missing one.
func (s *PantryService) Delete(ctx context.Context, email, id string) error {
	itemID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return ErrItemNotFound
	}

	res := s.db.WithContext(ctx).
		Where("id = ? AND user_email = ?", itemID, NormalizeEmail(email)).
		Delete(&models.PantryItem{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete pantry item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// ParseExpiry coerces a raw JSON expiry. Absent, null and "" mean the
// default; integers and integral numeric strings are accepted.
func ParseExpiry(raw json.RawMessage) (int, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return models.DefaultPantryExpiry, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return 0, ErrInvalidExpiry
	}

	var n float64
	switch val := v.(type) {
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return 0, ErrInvalidExpiry
		}
		n = f
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return models.DefaultPantryExpiry, nil
		}
		i, err := strconv.Atoi(s)
		if err != nil {
			return 0, ErrInvalidExpiry
		}
		n = float64(i)
	default:
		return 0, ErrInvalidExpiry
	}

	if n != math.Trunc(n) || n <= 0 || n > math.MaxInt32 {
		return 0, ErrInvalidExpiry
	}
	return int(n), nil
}
