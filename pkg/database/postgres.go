package database

import (
	"log"

	"github.com/staybook/lodging-booking-service/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Lodging{},
		&models.Tourist{},
		&models.Booking{},
		&models.NightlyRate{},
	); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// Partial unique index: one open proposal per tourist per lodging
	db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_booking_open_proposal
		ON bookings (lodging_id, tourist_id)
		WHERE state IN ('created', 'pending')
	`)

	return db
}
