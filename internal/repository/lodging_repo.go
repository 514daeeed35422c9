package repository

import (
	"context"

	"github.com/staybook/lodging-booking-service/internal/models"
	"gorm.io/gorm"
)

type LodgingRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Lodging, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Lodging, error)
}

type lodgingRepository struct {
	db *gorm.DB
}

func NewLodgingRepository(db *gorm.DB) LodgingRepository {
	return &lodgingRepository{db: db}
}

func (r *lodgingRepository) FindByID(ctx context.Context, id uint) (*models.Lodging, error) {
	var lodging models.Lodging
	if err := r.db.WithContext(ctx).First(&lodging, id).Error; err != nil {
		return nil, err
	}
	return &lodging, nil
}

// FindByIDForUpdate acquires a row-level lock on the lodging within the given
// transaction, serializing concurrent capacity checks for the same lodging.
func (r *lodgingRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Lodging, error) {
	var lodging models.Lodging
	if err := tx.WithContext(ctx).
		Set("gorm:query_option", "FOR UPDATE").
		First(&lodging, id).Error; err != nil {
		return nil, err
	}
	return &lodging, nil
}
