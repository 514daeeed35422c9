package repository

import (
	"context"

	"github.com/staybook/lodging-booking-service/internal/models"
	"gorm.io/gorm"
)

type TouristRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Tourist, error)
}

type touristRepository struct {
	db *gorm.DB
}

func NewTouristRepository(db *gorm.DB) TouristRepository {
	return &touristRepository{db: db}
}

func (r *touristRepository) FindByID(ctx context.Context, id uint) (*models.Tourist, error) {
	var tourist models.Tourist
	if err := r.db.WithContext(ctx).First(&tourist, id).Error; err != nil {
		return nil, err
	}
	return &tourist, nil
}
