package repository

import (
	"context"

	"github.com/staybook/lodging-booking-service/internal/models"
	"gorm.io/gorm"
)

type NightlyRateRepository interface {
	CreateBatch(ctx context.Context, tx *gorm.DB, rates []models.NightlyRate) error
	DeleteByBookingID(ctx context.Context, tx *gorm.DB, bookingID uint) error
	FindByBookingID(ctx context.Context, bookingID uint) ([]models.NightlyRate, error)
}

type nightlyRateRepository struct {
	db *gorm.DB
}

func NewNightlyRateRepository(db *gorm.DB) NightlyRateRepository {
	return &nightlyRateRepository{db: db}
}

func (r *nightlyRateRepository) CreateBatch(ctx context.Context, tx *gorm.DB, rates []models.NightlyRate) error {
	if len(rates) == 0 {
		return nil
	}
	return tx.WithContext(ctx).Create(&rates).Error
}

func (r *nightlyRateRepository) DeleteByBookingID(ctx context.Context, tx *gorm.DB, bookingID uint) error {
	return tx.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Delete(&models.NightlyRate{}).Error
}

func (r *nightlyRateRepository) FindByBookingID(ctx context.Context, bookingID uint) ([]models.NightlyRate, error) {
	var rates []models.NightlyRate
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("date ASC").
		Find(&rates).Error
	if err != nil {
		return nil, err
	}
	return rates, nil
}
