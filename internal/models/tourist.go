package models

import "time"

// TouristType selects the pricing strategy applied to the tourist's bookings.
type TouristType string

const (
	TouristStandard TouristType = "standard"
	TouristPremium  TouristType = "premium"
)

type Tourist struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	FirstName string      `gorm:"not null" json:"first_name"`
	LastName  string      `gorm:"not null" json:"last_name"`
	Type      TouristType `gorm:"type:varchar(20);not null;default:'standard'" json:"type"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
