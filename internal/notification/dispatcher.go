package notification

import (
	"context"

	"github.com/staybook/lodging-booking-service/internal/models"
)

// Sink delivers a rendered message to a recipient over a channel. Sinks own
// their failure handling; a broken sink must not break a booking.
type Sink interface {
	Notify(ctx context.Context, recipient, message, channel string) error
}

// Observer renders and submits one stakeholder's view of a state change.
type Observer interface {
	OnTransition(ctx context.Context, booking *models.Booking, state models.BookingState)
}

// Dispatcher fans a transition out to a fixed list of observers. The list is
// built once at construction; there is no runtime registration step.
type Dispatcher struct {
	observers []Observer
}

func NewDispatcher(observers ...Observer) *Dispatcher {
	return &Dispatcher{observers: observers}
}

func (d *Dispatcher) Dispatch(ctx context.Context, booking *models.Booking, state models.BookingState) {
	for _, o := range d.observers {
		o.OnTransition(ctx, booking, state)
	}
}
