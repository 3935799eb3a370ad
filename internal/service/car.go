package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CarBooker/internal/domain"
	"github.com/stpnv0/CarBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type CarService struct {
	repo      ports.CarRepo
	publisher ports.EventPublisher
	logger    logger.Logger
}

func NewCarService(repo ports.CarRepo, publisher ports.EventPublisher, logger logger.Logger) *CarService {
	return &CarService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *CarService) Create(ctx context.Context, input domain.CreateCarInput) (*domain.Car, error) {
	if input.Type == "" {
		return nil, fmt.Errorf("%w: type is required", domain.ErrValidation)
	}
	if input.Model == "" {
		return nil, fmt.Errorf("%w: model is required", domain.ErrValidation)
	}
	if input.DailyRate <= 0 {
		return nil, fmt.Errorf("%w: daily_rate must be positive", domain.ErrValidation)
	}

	now := time.Now().UTC()
	car := &domain.Car{
		ID:        uuid.New().String(),
		Type:      input.Type,
		Model:     input.Model,
		DailyRate: input.DailyRate,
		Status:    domain.CarStatusAvailable,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, car); err != nil {
		return nil, fmt.Errorf("create car: %w", err)
	}

	return car, nil
}

func (s *CarService) GetByID(ctx context.Context, id string) (*domain.Car, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CarService) List(ctx context.Context) ([]*domain.Car, error) {
	return s.repo.List(ctx)
}

// ScheduleMaintenance добавляет машине окно обслуживания. Если окно уже
// началось, машина сразу уходит в in_maintenance.
func (s *CarService) ScheduleMaintenance(ctx context.Context, carID string, start time.Time, durationDays int) (domain.Interval, error) {
	car, err := s.repo.GetByID(ctx, carID)
	if err != nil {
		return domain.Interval{}, fmt.Errorf("get car: %w", err)
	}

	window, err := car.ScheduleMaintenance(start, durationDays)
	if err != nil {
		return domain.Interval{}, err
	}

	if err = s.repo.AddMaintenanceWindow(ctx, carID, window); err != nil {
		return domain.Interval{}, fmt.Errorf("add maintenance window: %w", err)
	}

	today := domain.DateOf(time.Now())
	if !window.Start.After(today) && car.Status == domain.CarStatusAvailable {
		if err = car.MarkInMaintenance(); err != nil {
			return domain.Interval{}, err
		}
		if err = s.repo.Update(ctx, car); err != nil {
			return domain.Interval{}, fmt.Errorf("update car: %w", err)
		}
	}

	s.logger.Info("maintenance scheduled",
		logger.String("car_id", carID),
		logger.Int("duration_days", durationDays),
	)

	return window, nil
}

// ReleaseMaintained возвращает в available машины, у которых все окна
// обслуживания закончились к now. Вызывается планировщиком.
func (s *CarService) ReleaseMaintained(ctx context.Context, now time.Time) ([]*domain.Car, error) {
	cars, err := s.repo.ListInMaintenance(ctx)
	if err != nil {
		return nil, fmt.Errorf("list in maintenance: %w", err)
	}

	var released []*domain.Car
	for _, car := range cars {
		if !car.MaintenanceEndedBy(now) {
			continue
		}

		car.MarkAvailable()
		if err := s.repo.Update(ctx, car); err != nil {
			s.logger.Error("failed to release maintained car",
				logger.String("car_id", car.ID),
				logger.String("error", err.Error()),
			)
			continue
		}

		s.publisher.Publish(ctx, car.PullEvents()...)
		released = append(released, car)
	}

	return released, nil
}
