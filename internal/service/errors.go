package service

import (
	"errors"
	"strings"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrTouristNotFound = errors.New("tourist not found")
	ErrLodgingNotFound = errors.New("lodging not found")

	ErrCheckInPast      = errors.New("check-in date must not be in the past")
	ErrInvalidDateRange = errors.New("check-out date must be after check-in date")
	ErrMissingAdult     = errors.New("at least one adult is required")
	ErrCapacityExceeded = errors.New("lodging capacity exceeded for the requested dates")

	ErrPricingStrategyNotFound = errors.New("no pricing strategy for tourist type")

	ErrActorNotLodgingOwner = errors.New("actor is not the lodging owner")
	ErrActorNotTourist      = errors.New("actor is not the booking's tourist")
	ErrIllegalTransition    = errors.New("illegal booking state transition")

	ErrBookingNotCreated = errors.New("booking could not be created")
)

// ValidationErrors accumulates every violation found while validating one
// request, so a client can fix all of them in a single round trip.
type ValidationErrors []error

func (v ValidationErrors) Error() string {
	msgs := v.Messages()
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) Messages() []string {
	msgs := make([]string, len(v))
	for i, err := range v {
		msgs[i] = err.Error()
	}
	return msgs
}

// Unwrap lets errors.Is match any accumulated violation.
func (v ValidationErrors) Unwrap() []error {
	return v
}

// AsValidationErrors unwraps err into a ValidationErrors list if it is one.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs, true
	}
	return nil, false
}
