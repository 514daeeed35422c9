package scheduler

import (
	"context"
	"log"
	"time"
)

type bookingExpirer interface {
	ExpireStaleBookings(ctx context.Context) (int64, error)
}

// Scheduler runs the expiration sweep on a fixed interval. Ticks run
// synchronously in one goroutine, so sweeps never overlap.
type Scheduler struct {
	svc      bookingExpirer
	interval time.Duration
}

func New(svc bookingExpirer, interval time.Duration) *Scheduler {
	return &Scheduler{svc: svc, interval: interval}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	log.Printf("[Scheduler] expiration sweep every %s", s.interval)

	for {
		select {
		case <-ctx.Done():
			log.Println("[Scheduler] stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	expired, err := s.svc.ExpireStaleBookings(ctx)
	if err != nil {
		log.Printf("[Scheduler] expiration sweep failed: %v", err)
		return
	}
	if expired > 0 {
		log.Printf("[Scheduler] expired %d stale bookings", expired)
	}
}
