package notification

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/staybook/lodging-booking-service/internal/models"
)

const (
	ChannelOwner   = "owner"
	ChannelTourist = "tourist"
)

// OwnerObserver notifies the lodging owner about booking transitions.
type OwnerObserver struct {
	sinks []Sink
}

func NewOwnerObserver(sinks ...Sink) *OwnerObserver {
	return &OwnerObserver{sinks: sinks}
}

func (o *OwnerObserver) OnTransition(ctx context.Context, booking *models.Booking, state models.BookingState) {
	if booking.Lodging == nil {
		log.Printf("[Notification] skipping owner message for booking %d: lodging not loaded", booking.ID)
		return
	}

	var msg string
	stay := fmt.Sprintf("%s to %s", booking.CheckIn.Format("2006-01-02"), booking.CheckOut.Format("2006-01-02"))
	switch state {
	case models.StateCreated:
		msg = fmt.Sprintf("New booking request #%d for %s (%s, %d guests). Review it to mark it pending or reject it.",
			booking.ID, booking.Lodging.Name, stay, booking.Occupants())
	case models.StatePending:
		msg = fmt.Sprintf("Booking #%d for %s is pending tourist payment.", booking.ID, booking.Lodging.Name)
	case models.StateAccepted:
		msg = fmt.Sprintf("Booking #%d for %s has been paid and accepted (%.2f).", booking.ID, booking.Lodging.Name, booking.TotalPrice)
	case models.StateRejected:
		msg = fmt.Sprintf("Booking #%d for %s was rejected.", booking.ID, booking.Lodging.Name)
	case models.StateExpired:
		msg = fmt.Sprintf("Booking #%d for %s expired without confirmation.", booking.ID, booking.Lodging.Name)
	default:
		return
	}

	recipient := strconv.FormatUint(uint64(booking.Lodging.OwnerID), 10)
	deliver(ctx, o.sinks, recipient, msg, ChannelOwner)
}

// TouristObserver notifies the booking's tourist.
type TouristObserver struct {
	sinks []Sink
}

func NewTouristObserver(sinks ...Sink) *TouristObserver {
	return &TouristObserver{sinks: sinks}
}

func (o *TouristObserver) OnTransition(ctx context.Context, booking *models.Booking, state models.BookingState) {
	lodgingName := "the lodging"
	if booking.Lodging != nil {
		lodgingName = booking.Lodging.Name
	}

	var msg string
	switch state {
	case models.StateCreated:
		msg = fmt.Sprintf("Your booking #%d at %s was received and is waiting for the owner's review.", booking.ID, lodgingName)
	case models.StatePending:
		msg = fmt.Sprintf("Your booking #%d at %s was approved. Pay %.2f to confirm it.", booking.ID, lodgingName, booking.TotalPrice)
	case models.StateAccepted:
		msg = fmt.Sprintf("Your booking #%d at %s is confirmed. Enjoy your stay!", booking.ID, lodgingName)
	case models.StateRejected:
		msg = fmt.Sprintf("Your booking #%d at %s was rejected by the owner.", booking.ID, lodgingName)
	case models.StateExpired:
		msg = fmt.Sprintf("Your booking #%d at %s expired.", booking.ID, lodgingName)
	default:
		return
	}

	recipient := strconv.FormatUint(uint64(booking.TouristID), 10)
	deliver(ctx, o.sinks, recipient, msg, ChannelTourist)
}

// deliver hands the message to every sink, logging failures instead of
// propagating them.
func deliver(ctx context.Context, sinks []Sink, recipient, msg, channel string) {
	for _, s := range sinks {
		if err := s.Notify(ctx, recipient, msg, channel); err != nil {
			log.Printf("[Notification] %s sink failed for recipient %s: %v", channel, recipient, err)
		}
	}
}
