// Package storage is the local key/value store backing the session token and
// the savings goal. Values are opaque strings; callers choose the encoding.
package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "budgetdash/internal/errors"
	"budgetdash/internal/models"
)

// Store reads and writes local items.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

type gormStore struct {
	db *gorm.DB
}

// NewStore creates a Store on top of db.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// Get returns the value stored under key and whether it exists.
func (s *gormStore) Get(ctx context.Context, key string) (string, bool, error) {
	var item models.LocalItem
	if err := s.db.WithContext(ctx).Where("key = ?", key).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return item.Value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *gormStore) Set(ctx context.Context, key, value string) error {
	item := models.LocalItem{Key: key, Value: value}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&item).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// Remove deletes key. Removing a missing key is not an error.
func (s *gormStore) Remove(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Where("key = ?", key).Delete(&models.LocalItem{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
