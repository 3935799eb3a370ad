package events

import (
	"context"
	"fmt"

	"github.com/stpnv0/CarBooker/internal/domain"
	"github.com/stpnv0/CarBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// NotificationHandler рассылает клиентам уведомления о событиях брони.
// Доставка — best effort, в отдельной горутине.
type NotificationHandler struct {
	customerRepo ports.CustomerRepo
	notifier     ports.RentalNotifier
	logger       logger.Logger
}

func NewNotificationHandler(customerRepo ports.CustomerRepo, notifier ports.RentalNotifier, logger logger.Logger) *NotificationHandler {
	return &NotificationHandler{
		customerRepo: customerRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

func (h *NotificationHandler) EventNames() []string {
	return []string{
		domain.EventReservationCreated,
		domain.EventReservationCancelled,
		domain.EventReservationCompleted,
	}
}

func (h *NotificationHandler) Handle(ctx context.Context, event domain.Event) error {
	switch e := event.(type) {
	case domain.ReservationCreated:
		customer, err := h.loadCustomer(ctx, e.CustomerID)
		if err != nil {
			return err
		}
		go h.notifier.NotifyReservationCreated(context.WithoutCancel(ctx), customer, e)

	case domain.ReservationCancelled:
		customer, err := h.loadCustomer(ctx, e.CustomerID)
		if err != nil {
			return err
		}
		go h.notifier.NotifyReservationCancelled(context.WithoutCancel(ctx), customer, e)

	case domain.ReservationCompleted:
		customer, err := h.loadCustomer(ctx, e.CustomerID)
		if err != nil {
			return err
		}
		go h.notifier.NotifyReservationCompleted(context.WithoutCancel(ctx), customer, e)
	}

	return nil
}

func (h *NotificationHandler) loadCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	customer, err := h.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("load customer %s: %w", customerID, err)
	}
	return customer, nil
}
