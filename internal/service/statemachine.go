package service

import (
	"context"
	"fmt"

	"github.com/staybook/lodging-booking-service/internal/models"
	"gorm.io/gorm"
)

// StateMachine owns the legal transitions between booking states and the
// actor rules that gate each of them.
type StateMachine struct {
	capacity *CapacityValidator
}

func NewStateMachine(capacity *CapacityValidator) *StateMachine {
	return &StateMachine{capacity: capacity}
}

// AttemptTransition validates and applies a state change in memory. Role and
// target violations are accumulated together with the shared capacity and
// adult re-checks, so the caller sees every violation at once rather than one
// per attempt. On success the booking's state is set to target, and accepting
// also marks the booking as paid; persisting the change is the caller's job.
func (m *StateMachine) AttemptTransition(ctx context.Context, tx *gorm.DB, booking *models.Booking, target models.BookingState, actorID uint) error {
	var violations ValidationErrors

	switch booking.State {
	case models.StateCreated:
		if booking.Lodging == nil || booking.Lodging.OwnerID != actorID {
			violations = append(violations, ErrActorNotLodgingOwner)
		}
		if target != models.StatePending && target != models.StateRejected {
			violations = append(violations, ErrIllegalTransition)
		}
	case models.StatePending:
		if booking.TouristID != actorID {
			violations = append(violations, ErrActorNotTourist)
		}
		if target != models.StateAccepted {
			violations = append(violations, ErrIllegalTransition)
		}
	default:
		// accepted, rejected, expired: no actor or target restriction.
		// Kept permissive on purpose; see DESIGN.md before tightening.
	}

	if booking.Adults < 1 {
		violations = append(violations, ErrMissingAdult)
	}
	if booking.Lodging != nil {
		nights := nightsWithin(booking.CheckIn, booking.CheckOut)
		exceeded, err := m.capacity.ExceedsCapacity(ctx, tx, booking.Lodging, nights, booking.Occupants())
		if err != nil {
			return fmt.Errorf("re-check capacity: %w", err)
		}
		if exceeded {
			violations = append(violations, ErrCapacityExceeded)
		}
	}

	if len(violations) > 0 {
		return violations
	}

	booking.State = target
	if target == models.StateAccepted {
		// Payment and acceptance are modeled as one event.
		booking.HasPaid = true
	}
	return nil
}
