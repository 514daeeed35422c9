package models

import "time"

type BookingState string

const (
	StateCreated  BookingState = "created"
	StatePending  BookingState = "pending"
	StateAccepted BookingState = "accepted"
	StateRejected BookingState = "rejected"
	StateExpired  BookingState = "expired"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// CheckOut holds the last occupied night, not the departure date.
	CheckIn    time.Time    `gorm:"not null" json:"check_in"`
	CheckOut   time.Time    `gorm:"not null" json:"check_out"`
	TotalPrice float64      `gorm:"not null" json:"total_price"`
	LodgingID  uint         `gorm:"not null" json:"lodging_id"`
	TouristID  uint         `gorm:"not null" json:"tourist_id"`
	State      BookingState `gorm:"type:varchar(20);not null;default:'created'" json:"state"`
	Adults     int          `gorm:"not null" json:"adults"`
	Children   int          `gorm:"not null" json:"children"`
	Babies     int          `gorm:"not null" json:"babies"`
	HasPaid    bool         `gorm:"not null;default:false" json:"has_paid"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`

	Lodging      *Lodging      `gorm:"foreignKey:LodgingID" json:"lodging,omitempty"`
	Tourist      *Tourist      `gorm:"foreignKey:TouristID" json:"tourist,omitempty"`
	NightlyRates []NightlyRate `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE" json:"nightly_rates,omitempty"`
}

// Occupants is the head count used for capacity accounting.
func (b *Booking) Occupants() int {
	return b.Adults + b.Children + b.Babies
}
