//go:build integration

package integration

import (
	"fmt"
	"log"
	"os"
	"testing"

	"github.com/staybook/lodging-booking-service/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("TEST_DB_HOST", "localhost"),
		getEnv("TEST_DB_PORT", "5434"),
		getEnv("TEST_DB_USER", "postgres"),
		getEnv("TEST_DB_PASSWORD", "postgres"),
		getEnv("TEST_DB_NAME", "booking_test_db"),
	)

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect to test database: %v", err)
	}

	// Drop and recreate tables for clean state
	testDB.Exec("DROP TABLE IF EXISTS nightly_rates")
	testDB.Exec("DROP TABLE IF EXISTS bookings")
	testDB.Exec("DROP TABLE IF EXISTS tourists")
	testDB.Exec("DROP TABLE IF EXISTS lodgings")

	if err := testDB.AutoMigrate(
		&models.Lodging{},
		&models.Tourist{},
		&models.Booking{},
		&models.NightlyRate{},
	); err != nil {
		log.Fatalf("failed to auto-migrate test database: %v", err)
	}

	testDB.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_booking_open_proposal
		ON bookings (lodging_id, tourist_id)
		WHERE state IN ('created', 'pending')
	`)

	code := m.Run()

	testDB.Exec("DROP TABLE IF EXISTS nightly_rates")
	testDB.Exec("DROP TABLE IF EXISTS bookings")
	testDB.Exec("DROP TABLE IF EXISTS tourists")
	testDB.Exec("DROP TABLE IF EXISTS lodgings")

	os.Exit(code)
}

func cleanTables() {
	testDB.Exec("DELETE FROM nightly_rates")
	testDB.Exec("DELETE FROM bookings")
	testDB.Exec("DELETE FROM tourists")
	testDB.Exec("DELETE FROM lodgings")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
