package models

import "time"

type Lodging struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Phone        string    `json:"phone"`
	Information  string    `json:"information"`
	Capacity     int       `gorm:"not null" json:"capacity"`
	NightlyPrice float64   `gorm:"not null" json:"nightly_price"`
	OwnerID      uint      `gorm:"not null" json:"owner_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
