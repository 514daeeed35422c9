package models

import "time"

// NightlyRate is the price snapshot for a single occupied night. Rows are
// regenerated wholesale whenever a booking's dates change.
type NightlyRate struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BookingID uint      `gorm:"not null;index" json:"booking_id"`
	Date      time.Time `gorm:"not null" json:"date"`
	Price     float64   `gorm:"not null" json:"price"`
}
