package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/staybook/lodging-booking-service/internal/dto"
	"github.com/staybook/lodging-booking-service/internal/models"
	"github.com/staybook/lodging-booking-service/internal/repository"
	"gorm.io/gorm"
)

// TransitionDispatcher notifies stakeholders after an accepted mutation. It
// must never fail the triggering operation.
type TransitionDispatcher interface {
	Dispatch(ctx context.Context, booking *models.Booking, state models.BookingState)
}

type BookingService interface {
	Create(ctx context.Context, req *dto.CreateBookingRequest) (*models.Booking, error)
	Update(ctx context.Context, bookingID uint, req *dto.UpdateBookingRequest) (*models.Booking, error)
	ChangeState(ctx context.Context, bookingID uint, target models.BookingState, actorID uint) (*models.Booking, error)
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*models.Booking, error)
	List(ctx context.Context, limit, offset int) ([]models.Booking, error)
	ExpireStaleBookings(ctx context.Context) (int64, error)
}

type bookingService struct {
	bookingRepo  repository.BookingRepository
	rateRepo     repository.NightlyRateRepository
	lodgingRepo  repository.LodgingRepository
	touristRepo  repository.TouristRepository
	pricing      *PricingEngine
	capacity     *CapacityValidator
	stateMachine *StateMachine
	dispatcher   TransitionDispatcher
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	rateRepo repository.NightlyRateRepository,
	lodgingRepo repository.LodgingRepository,
	touristRepo repository.TouristRepository,
	pricing *PricingEngine,
	capacity *CapacityValidator,
	stateMachine *StateMachine,
	dispatcher TransitionDispatcher,
) BookingService {
	return &bookingService{
		bookingRepo:  bookingRepo,
		rateRepo:     rateRepo,
		lodgingRepo:  lodgingRepo,
		touristRepo:  touristRepo,
		pricing:      pricing,
		capacity:     capacity,
		stateMachine: stateMachine,
		dispatcher:   dispatcher,
	}
}

func (s *bookingService) Create(ctx context.Context, req *dto.CreateBookingRequest) (*models.Booking, error) {
	tourist, err := s.touristRepo.FindByID(ctx, req.TouristID)
	if err != nil {
		return nil, ErrTouristNotFound
	}

	var result *models.Booking

	err = s.bookingRepo.Transaction(ctx, func(tx *gorm.DB) error {
		// Lock the lodging row so the capacity check and the insert behave
		// as one unit under concurrent requests for the same lodging.
		lodging, err := s.lodgingRepo.FindByIDForUpdate(ctx, tx, req.LodgingID)
		if err != nil {
			return ErrLodgingNotFound
		}

		nights, violations, err := s.validate(ctx, tx, lodging, req.CheckIn, req.CheckOut, req.Adults, req.Children, req.Babies)
		if err != nil {
			return err
		}
		if len(violations) > 0 {
			return violations
		}

		total, err := s.pricing.Price(tourist.Type, lodging, nights, req.Adults, req.Children, req.Babies)
		if err != nil {
			return ValidationErrors{err}
		}

		booking := &models.Booking{
			CheckIn:    nights[0],
			CheckOut:   nights[len(nights)-1],
			TotalPrice: total,
			LodgingID:  lodging.ID,
			TouristID:  tourist.ID,
			State:      models.StateCreated,
			Adults:     req.Adults,
			Children:   req.Children,
			Babies:     req.Babies,
		}
		if err := s.bookingRepo.Create(ctx, tx, booking); err != nil {
			return errors.Join(ErrBookingNotCreated, err)
		}

		rates, err := s.buildNightlyRates(tourist.Type, lodging, nights, booking, req.Adults, req.Children, req.Babies)
		if err != nil {
			return errors.Join(ErrBookingNotCreated, err)
		}
		if err := s.rateRepo.CreateBatch(ctx, tx, rates); err != nil {
			return errors.Join(ErrBookingNotCreated, err)
		}

		booking.Lodging = lodging
		booking.Tourist = tourist
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.dispatcher.Dispatch(ctx, result, models.StateCreated)
	return result, nil
}

// Update treats the booking as a fresh proposal: state drops back to created,
// every nightly rate row is deleted and regenerated for the new dates, and
// the owner has to approve it again.
func (s *bookingService) Update(ctx context.Context, bookingID uint, req *dto.UpdateBookingRequest) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}
	tourist, err := s.touristRepo.FindByID(ctx, req.TouristID)
	if err != nil {
		return nil, ErrTouristNotFound
	}

	err = s.bookingRepo.Transaction(ctx, func(tx *gorm.DB) error {
		lodging, err := s.lodgingRepo.FindByIDForUpdate(ctx, tx, booking.LodgingID)
		if err != nil {
			return ErrLodgingNotFound
		}

		nights, violations, err := s.validate(ctx, tx, lodging, req.CheckIn, req.CheckOut, req.Adults, req.Children, req.Babies)
		if err != nil {
			return err
		}
		if len(violations) > 0 {
			return violations
		}

		total, err := s.pricing.Price(tourist.Type, lodging, nights, req.Adults, req.Children, req.Babies)
		if err != nil {
			return ValidationErrors{err}
		}

		if err := s.rateRepo.DeleteByBookingID(ctx, tx, booking.ID); err != nil {
			return fmt.Errorf("delete nightly rates: %w", err)
		}

		booking.CheckIn = nights[0]
		booking.CheckOut = nights[len(nights)-1]
		booking.Adults = req.Adults
		booking.Children = req.Children
		booking.Babies = req.Babies
		booking.TotalPrice = total
		booking.State = models.StateCreated
		booking.NightlyRates = nil

		if err := s.bookingRepo.Save(ctx, tx, booking); err != nil {
			return errors.Join(ErrBookingNotCreated, err)
		}

		rates, err := s.buildNightlyRates(tourist.Type, lodging, nights, booking, req.Adults, req.Children, req.Babies)
		if err != nil {
			return errors.Join(ErrBookingNotCreated, err)
		}
		if err := s.rateRepo.CreateBatch(ctx, tx, rates); err != nil {
			return errors.Join(ErrBookingNotCreated, err)
		}

		booking.Lodging = lodging
		booking.Tourist = tourist
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.dispatcher.Dispatch(ctx, booking, models.StateCreated)
	return booking, nil
}

func (s *bookingService) ChangeState(ctx context.Context, bookingID uint, target models.BookingState, actorID uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}

	err = s.bookingRepo.Transaction(ctx, func(tx *gorm.DB) error {
		lodging, err := s.lodgingRepo.FindByIDForUpdate(ctx, tx, booking.LodgingID)
		if err != nil {
			return ErrLodgingNotFound
		}
		booking.Lodging = lodging

		if err := s.stateMachine.AttemptTransition(ctx, tx, booking, target, actorID); err != nil {
			return err
		}

		// Stakeholders are notified of the requested state before the save is
		// attempted. A failed save therefore does not take the notification
		// back; callers must not assume the transition was durable.
		s.dispatcher.Dispatch(ctx, booking, target)

		if err := s.bookingRepo.Save(ctx, tx, booking); err != nil {
			return fmt.Errorf("persist state change: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) Delete(ctx context.Context, id uint) error {
	if _, err := s.bookingRepo.FindByID(ctx, id); err != nil {
		return ErrBookingNotFound
	}
	return s.bookingRepo.Delete(ctx, id)
}

func (s *bookingService) GetByID(ctx context.Context, id uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

func (s *bookingService) List(ctx context.Context, limit, offset int) ([]models.Booking, error) {
	return s.bookingRepo.FindAll(ctx, limit, offset)
}

// ExpireStaleBookings force-expires created/pending bookings whose check-in
// is before tomorrow. This is a privileged correction pass: it bypasses the
// state machine's role checks and does not notify anyone.
func (s *bookingService) ExpireStaleBookings(ctx context.Context) (int64, error) {
	tomorrow := toDay(time.Now()).AddDate(0, 0, 1)
	return s.bookingRepo.ExpireStale(ctx, tomorrow)
}

// validate accumulates every date, adult and capacity violation for one
// request so they are all reported in a single round trip. The returned error
// is reserved for gateway failures during the capacity scan.
func (s *bookingService) validate(ctx context.Context, tx *gorm.DB, lodging *models.Lodging, checkIn, checkOut time.Time, adults, children, babies int) ([]time.Time, ValidationErrors, error) {
	var violations ValidationErrors

	nights, err := ExpandDateRange(checkIn, checkOut)
	if err != nil {
		violations = append(violations, err)
	}
	if adults < 1 {
		violations = append(violations, ErrMissingAdult)
	}
	if len(nights) > 0 {
		exceeded, err := s.capacity.ExceedsCapacity(ctx, tx, lodging, nights, adults+children+babies)
		if err != nil {
			return nil, nil, fmt.Errorf("check capacity: %w", err)
		}
		if exceeded {
			violations = append(violations, ErrCapacityExceeded)
		}
	}
	return nights, violations, nil
}

func (s *bookingService) buildNightlyRates(touristType models.TouristType, lodging *models.Lodging, nights []time.Time, booking *models.Booking, adults, children, babies int) ([]models.NightlyRate, error) {
	rates := make([]models.NightlyRate, 0, len(nights))
	for _, night := range nights {
		price, err := s.pricing.Price(touristType, lodging, []time.Time{night}, adults, children, babies)
		if err != nil {
			return nil, err
		}
		rates = append(rates, models.NightlyRate{
			BookingID: booking.ID,
			Date:      night,
			Price:     price,
		})
	}
	return rates, nil
}
