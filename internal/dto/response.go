package dto

import (
	"time"

	"github.com/staybook/lodging-booking-service/internal/models"
)

type BookingResponse struct {
	ID                 uint                `json:"id"`
	LodgingName        string              `json:"lodging_name"`
	LodgingPhone       string              `json:"lodging_phone"`
	LodgingInformation string              `json:"lodging_information"`
	TouristFirstName   string              `json:"tourist_first_name"`
	TouristLastName    string              `json:"tourist_last_name"`
	CheckIn            time.Time           `json:"check_in"`
	CheckOut           time.Time           `json:"check_out"`
	TotalPrice         float64             `json:"total_price"`
	State              models.BookingState `json:"state"`
	HasPaid            bool                `json:"has_paid"`
	CreatedAt          time.Time           `json:"created_at"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	resp := BookingResponse{
		ID:         b.ID,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		TotalPrice: b.TotalPrice,
		State:      b.State,
		HasPaid:    b.HasPaid,
		CreatedAt:  b.CreatedAt,
	}
	if b.Lodging != nil {
		resp.LodgingName = b.Lodging.Name
		resp.LodgingPhone = b.Lodging.Phone
		resp.LodgingInformation = b.Lodging.Information
	}
	if b.Tourist != nil {
		resp.TouristFirstName = b.Tourist.FirstName
		resp.TouristLastName = b.Tourist.LastName
	}
	return resp
}
