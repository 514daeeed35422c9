package service

import (
	"context"
	"fmt"
	"time"

	"github.com/staybook/lodging-booking-service/internal/models"
	"github.com/staybook/lodging-booking-service/internal/repository"
	"gorm.io/gorm"
)

// CapacityValidator checks a candidate occupant count against the accepted
// occupancy of a lodging, night by night.
type CapacityValidator struct {
	bookingRepo repository.BookingRepository
}

func NewCapacityValidator(bookingRepo repository.BookingRepository) *CapacityValidator {
	return &CapacityValidator{bookingRepo: bookingRepo}
}

// ExceedsCapacity reports whether adding occupants to the lodging would
// overbook any of the given nights. A single overbooked night rejects the
// whole range; there is no partial acceptance of a sub-range.
func (v *CapacityValidator) ExceedsCapacity(ctx context.Context, tx *gorm.DB, lodging *models.Lodging, nights []time.Time, occupants int) (bool, error) {
	for _, night := range nights {
		taken, err := v.bookingRepo.SumOccupantsOnNight(ctx, tx, lodging.ID, night)
		if err != nil {
			return false, fmt.Errorf("sum occupants on %s: %w", night.Format("2006-01-02"), err)
		}
		if lodging.Capacity-taken-occupants < 0 {
			return true, nil
		}
	}
	return false, nil
}
