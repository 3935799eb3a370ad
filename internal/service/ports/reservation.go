package ports

import (
	"context"
	"time"

	"github.com/stpnv0/CarBooker/internal/domain"
)

// ReservationRepo — читающая сторона хранилища броней.
// Записи идут только через UnitOfWork: бронь и статус машины
// фиксируются одной транзакцией.
type ReservationRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	// FindOverlapping возвращает неотменённые брони машины, пересекающие
	// interval. excludeID исключает собственную бронь при переносе дат.
	FindOverlapping(ctx context.Context, carID string, interval domain.Interval, excludeID string) ([]*domain.Reservation, error)
	// FindEndingOn возвращает неотменённые брони машины с датой окончания date.
	FindEndingOn(ctx context.Context, carID string, date time.Time) ([]*domain.Reservation, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Reservation, error)
	// ListDue возвращает ожидающие брони, чья дата начала наступила.
	ListDue(ctx context.Context, asOf time.Time) ([]*domain.Reservation, error)
}
