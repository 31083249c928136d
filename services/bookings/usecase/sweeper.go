package usecase

import (
	"context"
	"time"

	"github.com/twende/twende/internal/pkg/logger"
	"github.com/twende/twende/internal/pkg/models"
	"github.com/twende/twende/services/bookings"
)

// ExpirySweeper periodically cancels pending bookings that outlived
// their payment window.
type ExpirySweeper struct {
	cfg       *models.Config
	bookingUC bookings.BookingUC
	stopCh    chan struct{}
	doneCh    chan struct{}
}

// NewExpirySweeper creates a sweeper bound to the booking use case
func NewExpirySweeper(cfg *models.Config, bookingUC bookings.BookingUC) *ExpirySweeper {
	return &ExpirySweeper{
		cfg:       cfg,
		bookingUC: bookingUC,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start runs the sweep loop until Stop is called or ctx is cancelled
func (s *ExpirySweeper) Start(ctx context.Context) {
	interval := time.Duration(s.cfg.Bookings.SweepIntervalSeconds) * time.Second
	if interval <= 0 {
		interval = time.Minute
	}

	go func() {
		defer close(s.doneCh)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		logger.Info("Booking expiry sweeper started",
			logger.Duration("interval", interval),
			logger.Int("ttl_minutes", s.cfg.Bookings.PendingTTLMinutes))

		for {
			select {
			case <-ticker.C:
				s.sweep(ctx)
			case <-s.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops the sweep loop and waits for the current sweep to finish
func (s *ExpirySweeper) Stop() {
	close(s.stopCh)
	<-s.doneCh
	logger.Info("Booking expiry sweeper stopped")
}

func (s *ExpirySweeper) sweep(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := s.bookingUC.ExpireStale(sweepCtx); err != nil {
		logger.Error("Booking expiry sweep failed", logger.Err(err))
	}
}
