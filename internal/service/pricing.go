package service

import (
	"fmt"
	"time"

	"github.com/staybook/lodging-booking-service/internal/models"
)

const (
	childFactor = 0.5
	babyFactor  = 0.25

	weekendSurcharge = 1.2
)

// PricingStrategy resolves the effective nightly rate for one night.
type PricingStrategy interface {
	NightlyRate(night time.Time, baseRate float64) float64
}

// standardPricing surcharges Friday, Saturday and Sunday nights.
type standardPricing struct{}

func (standardPricing) NightlyRate(night time.Time, baseRate float64) float64 {
	switch night.Weekday() {
	case time.Friday, time.Saturday, time.Sunday:
		return baseRate * weekendSurcharge
	default:
		return baseRate
	}
}

// premiumPricing never surcharges, regardless of day of week.
type premiumPricing struct{}

func (premiumPricing) NightlyRate(_ time.Time, baseRate float64) float64 {
	return baseRate
}

type PricingEngine struct {
	strategies map[models.TouristType]PricingStrategy
}

func NewPricingEngine() *PricingEngine {
	return &PricingEngine{
		strategies: map[models.TouristType]PricingStrategy{
			models.TouristStandard: standardPricing{},
			models.TouristPremium:  premiumPricing{},
		},
	}
}

// Price totals the stay over the given nights. A single-night slice yields the
// snapshot price stored per NightlyRate row. An unknown tourist type is a
// catalog defect, not a user error, and fails outright.
func (e *PricingEngine) Price(touristType models.TouristType, lodging *models.Lodging, nights []time.Time, adults, children, babies int) (float64, error) {
	strategy, ok := e.strategies[touristType]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrPricingStrategyNotFound, touristType)
	}

	var total float64
	for _, night := range nights {
		rate := strategy.NightlyRate(night, lodging.NightlyPrice)
		total += rate*float64(adults) +
			rate*float64(children)*childFactor +
			rate*float64(babies)*babyFactor
	}
	return total, nil
}
