package dto

import "time"

// CreateBookingRequest carries check_out in exclusive form (departure date);
// the service stores the last occupied night.
type CreateBookingRequest struct {
	TouristID uint      `json:"tourist_id" validate:"required"`
	LodgingID uint      `json:"lodging_id" validate:"required"`
	CheckIn   time.Time `json:"check_in" validate:"required"`
	CheckOut  time.Time `json:"check_out" validate:"required"`
	Adults    int       `json:"adults" validate:"gte=0"`
	Children  int       `json:"children" validate:"gte=0"`
	Babies    int       `json:"babies" validate:"gte=0"`
}

type UpdateBookingRequest struct {
	TouristID uint      `json:"tourist_id" validate:"required"`
	CheckIn   time.Time `json:"check_in" validate:"required"`
	CheckOut  time.Time `json:"check_out" validate:"required"`
	Adults    int       `json:"adults" validate:"gte=0"`
	Children  int       `json:"children" validate:"gte=0"`
	Babies    int       `json:"babies" validate:"gte=0"`
}

// ChangeStateRequest identifies the already-authenticated actor; the target
// state is fixed by the endpoint.
type ChangeStateRequest struct {
	ActorID uint `json:"actor_id" validate:"required"`
}
