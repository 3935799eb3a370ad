package ports

import (
	"context"

	"github.com/stpnv0/CarBooker/internal/domain"
)

type CustomerRepo interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
}
