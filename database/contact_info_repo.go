package database

import (
	"context"
	"errors"

	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ContactInfoRepo reads and writes the singleton contact_info row. The table
// has no store-level uniqueness constraint; reads take the most recently
// updated row and writes go back into that same row, so duplicates can only
// pre-exist the application. When one is detected it is logged, never fatal.
type ContactInfoRepo struct {
	db *gorm.DB
}

func NewContactInfoRepo(db *gorm.DB) *ContactInfoRepo {
	return &ContactInfoRepo{db}
}

// Get returns the current contact info row, or gorm.ErrRecordNotFound when
// the table is empty.
func (r *ContactInfoRepo) Get(ctx context.Context) (*models.ContactInfo, error) {
	var rows []models.ContactInfo
	err := r.db.WithContext(ctx).Order("updated_at DESC").Limit(2).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	if len(rows) > 1 {
		log.Warn().Msg("contact_info holds more than one row; reading the most recently updated one")
	}
	return &rows[0], nil
}

// Upsert writes the contact info, reusing the existing row's identity when
// one exists so the table stays a singleton.
func (r *ContactInfoRepo) Upsert(ctx context.Context, info *models.ContactInfo) error {
	existing, err := r.Get(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.WithContext(ctx).Create(info).Error
	}
	if err != nil {
		return err
	}

	info.ID = existing.ID
	info.CreatedAt = existing.CreatedAt
	return r.db.WithContext(ctx).Save(info).Error
}
