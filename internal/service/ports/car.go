package ports

import (
	"context"

	"github.com/stpnv0/CarBooker/internal/domain"
)

type CarRepo interface {
	Create(ctx context.Context, car *domain.Car) error
	GetByID(ctx context.Context, id string) (*domain.Car, error)
	// ListAvailableCandidates возвращает машины со статусом available,
	// отфильтрованные по типу/модели. Пустой фильтр — без ограничения.
	ListAvailableCandidates(ctx context.Context, typeFilter, modelFilter string) ([]*domain.Car, error)
	List(ctx context.Context) ([]*domain.Car, error)
	Update(ctx context.Context, car *domain.Car) error
	AddMaintenanceWindow(ctx context.Context, carID string, window domain.Interval) error
	// ListInMaintenance возвращает машины в статусе in_maintenance.
	ListInMaintenance(ctx context.Context) ([]*domain.Car, error)
}
