package ports

import (
	"context"

	"github.com/stpnv0/CarBooker/internal/domain"
)

type RentalNotifier interface {
	NotifyReservationCreated(ctx context.Context, customer *domain.Customer, e domain.ReservationCreated)
	NotifyReservationCancelled(ctx context.Context, customer *domain.Customer, e domain.ReservationCancelled)
	NotifyReservationCompleted(ctx context.Context, customer *domain.Customer, e domain.ReservationCompleted)
}
