package repository

import (
	"context"
	"time"

	"github.com/staybook/lodging-booking-service/internal/models"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	Save(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	FindByID(ctx context.Context, id uint) (*models.Booking, error)
	FindAll(ctx context.Context, limit, offset int) ([]models.Booking, error)
	Delete(ctx context.Context, id uint) error
	SumOccupantsOnNight(ctx context.Context, tx *gorm.DB, lodgingID uint, night time.Time) (int, error)
	ExpireStale(ctx context.Context, cutoff time.Time) (int64, error)
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
	GetDB() *gorm.DB
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *bookingRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *bookingRepository) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	return tx.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) Save(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	return tx.WithContext(ctx).Save(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Preload("Lodging").
		Preload("Tourist").
		First(&booking, id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, limit, offset int) ([]models.Booking, error) {
	var bookings []models.Booking
	q := r.db.WithContext(ctx).
		Preload("Lodging").
		Preload("Tourist").
		Order("id ASC").
		Offset(offset)
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Booking{}, id).Error
}

// SumOccupantsOnNight totals the occupants of accepted bookings covering the
// given night for one lodging. CheckOut is stored as the last occupied night,
// so coverage is check_in <= night <= check_out.
func (r *bookingRepository) SumOccupantsOnNight(ctx context.Context, tx *gorm.DB, lodgingID uint, night time.Time) (int, error) {
	var total int
	err := tx.WithContext(ctx).
		Model(&models.Booking{}).
		Select("COALESCE(SUM(adults + children + babies), 0)").
		Where("lodging_id = ? AND state = ? AND check_in <= ? AND check_out >= ?",
			lodgingID, models.StateAccepted, night, night).
		Scan(&total).Error
	return total, err
}

// ExpireStale force-expires unconfirmed bookings whose check-in is before the
// cutoff. A single UPDATE keeps the sweep idempotent under overlapping runs.
func (r *bookingRepository) ExpireStale(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("state IN ? AND check_in < ?",
			[]models.BookingState{models.StateCreated, models.StatePending}, cutoff).
		Update("state", models.StateExpired)
	return result.RowsAffected, result.Error
}
