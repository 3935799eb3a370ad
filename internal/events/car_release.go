package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/stpnv0/CarBooker/internal/domain"
	"github.com/stpnv0/CarBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// CarReleaseHandler освобождает машину после отмены или завершения брони.
// Идемпотентен: MarkAvailable на свободной машине — no-op. Исчезнувшая
// машина тоже не ошибка — агрегаты живут независимо.
type CarReleaseHandler struct {
	carRepo ports.CarRepo
	logger  logger.Logger
}

func NewCarReleaseHandler(carRepo ports.CarRepo, logger logger.Logger) *CarReleaseHandler {
	return &CarReleaseHandler{
		carRepo: carRepo,
		logger:  logger,
	}
}

func (h *CarReleaseHandler) EventNames() []string {
	return []string{domain.EventReservationCancelled, domain.EventReservationCompleted}
}

func (h *CarReleaseHandler) Handle(ctx context.Context, event domain.Event) error {
	var carID string
	switch e := event.(type) {
	case domain.ReservationCancelled:
		carID = e.CarID
	case domain.ReservationCompleted:
		carID = e.CarID
	default:
		return nil
	}

	car, err := h.carRepo.GetByID(ctx, carID)
	if err != nil {
		if errors.Is(err, domain.ErrCarNotFound) {
			h.logger.Warn("car to release no longer exists",
				logger.String("car_id", carID),
			)
			return nil
		}
		return fmt.Errorf("load car: %w", err)
	}

	car.MarkAvailable()
	if err = h.carRepo.Update(ctx, car); err != nil {
		return fmt.Errorf("release car: %w", err)
	}

	h.logger.Info("car released",
		logger.String("car_id", carID),
		logger.String("trigger", event.EventName()),
	)

	return nil
}
