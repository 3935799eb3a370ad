package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/stpnv0/CarBooker/internal/domain"
	"github.com/stpnv0/CarBooker/internal/service/ports"
)

// AvailabilityService решает, свободна ли машина в запрошенном интервале.
// Правила проверяются по отдельности, от самой дешёвой к самой дорогой:
// статус машины → окна обслуживания → пересечения броней → межарендный день.
type AvailabilityService struct {
	carRepo         ports.CarRepo
	reservationRepo ports.ReservationRepo
}

func NewAvailabilityService(carRepo ports.CarRepo, reservationRepo ports.ReservationRepo) *AvailabilityService {
	return &AvailabilityService{
		carRepo:         carRepo,
		reservationRepo: reservationRepo,
	}
}

// IsAvailable проверяет машину по id. Несуществующая машина считается занятой.
func (s *AvailabilityService) IsAvailable(ctx context.Context, carID string, interval domain.Interval, exclude *domain.Reservation) (bool, error) {
	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		if errors.Is(err, domain.ErrCarNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("load car: %w", err)
	}

	return s.IsCarAvailable(ctx, car, interval, exclude)
}

// IsCarAvailable проверяет уже загруженную машину.
// exclude — бронь, которую переносим: её собственные интервалы не конфликт.
func (s *AvailabilityService) IsCarAvailable(ctx context.Context, car *domain.Car, interval domain.Interval, exclude *domain.Reservation) (bool, error) {
	if !s.statusAllows(car, exclude) {
		return false, nil
	}

	if car.IsInMaintenanceDuring(interval) {
		return false, nil
	}

	excludeID := ""
	if exclude != nil {
		excludeID = exclude.ID
	}

	overlapping, err := s.reservationRepo.FindOverlapping(ctx, car.ID, interval, excludeID)
	if err != nil {
		return false, fmt.Errorf("find overlapping: %w", err)
	}
	if len(overlapping) > 0 {
		return false, nil
	}

	// Межарендный день: машина недоступна в календарный день сразу после
	// окончания чужой брони (уборка и осмотр).
	turnaround := interval.Start.AddDate(0, 0, -1)
	ending, err := s.reservationRepo.FindEndingOn(ctx, car.ID, turnaround)
	if err != nil {
		return false, fmt.Errorf("find ending on: %w", err)
	}
	for _, r := range ending {
		if r.ID != excludeID {
			return false, nil
		}
	}

	return true, nil
}

// ListAvailable возвращает машины, свободные в interval целиком.
func (s *AvailabilityService) ListAvailable(ctx context.Context, interval domain.Interval, typeFilter, modelFilter string) ([]*domain.Car, error) {
	candidates, err := s.carRepo.ListAvailableCandidates(ctx, typeFilter, modelFilter)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}

	available := make([]*domain.Car, 0, len(candidates))
	for _, car := range candidates {
		ok, err := s.IsCarAvailable(ctx, car, interval, nil)
		if err != nil {
			return nil, err
		}
		if ok {
			available = append(available, car)
		}
	}

	return available, nil
}

// statusAllows — грубый фильтр по статусу. Машина в аренде проходит его
// только когда занята именно переносимой бронью.
func (s *AvailabilityService) statusAllows(car *domain.Car, exclude *domain.Reservation) bool {
	if car.Status == domain.CarStatusAvailable {
		return true
	}
	if car.Status == domain.CarStatusRented && exclude != nil && exclude.CarID == car.ID {
		return true
	}
	return false
}
