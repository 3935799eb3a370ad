package ports

import (
	"context"

	"github.com/stpnv0/CarBooker/internal/domain"
)

// CarStore — пишущая сторона хранилища машин внутри транзакции.
type CarStore interface {
	Update(ctx context.Context, car *domain.Car) error
}

// ReservationStore — пишущая сторона хранилища броней внутри транзакции.
// Create и Update защищены условной записью: при гонке за машину
// возвращается domain.ErrConcurrencyConflict.
type ReservationStore interface {
	Create(ctx context.Context, r *domain.Reservation) error
	Update(ctx context.Context, r *domain.Reservation) error
}

// UnitOfWork объединяет записи по нескольким агрегатам в одну транзакцию:
// бронь и статус машины либо фиксируются вместе, либо не фиксируются вовсе.
type UnitOfWork interface {
	Cars() CarStore
	Reservations() ReservationStore
	Commit() error
	Rollback() error
}

type TxManager interface {
	Begin(ctx context.Context) (UnitOfWork, error)
}
