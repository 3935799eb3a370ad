package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/CarBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type reservationActivator interface {
	ActivateDue(ctx context.Context, now time.Time) ([]*domain.Reservation, error)
}

type maintenanceReleaser interface {
	ReleaseMaintained(ctx context.Context, now time.Time) ([]*domain.Car, error)
}

type Scheduler struct {
	rentalService reservationActivator
	carService    maintenanceReleaser
	interval      time.Duration
	logger        logger.Logger
}

func New(
	rentalService reservationActivator,
	carService maintenanceReleaser,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		rentalService: rentalService,
		carService:    carService,
		interval:      interval,
		logger:        logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	now := time.Now()

	activated, err := s.rentalService.ActivateDue(ctx, now)
	if err != nil {
		s.logger.Error("failed to activate due reservations",
			logger.String("error", err.Error()),
		)
	} else {
		for _, r := range activated {
			s.logger.Info("reservation activated",
				logger.String("reservation_id", r.ID),
				logger.String("car_id", r.CarID),
				logger.String("customer_id", r.CustomerID),
			)
		}
	}

	released, err := s.carService.ReleaseMaintained(ctx, now)
	if err != nil {
		s.logger.Error("failed to release maintained cars",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, car := range released {
		s.logger.Info("car released from maintenance",
			logger.String("car_id", car.ID),
		)
	}
}
