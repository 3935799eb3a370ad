package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CarBooker/internal/domain"
	"github.com/stpnv0/CarBooker/internal/service/ports"
)

type CustomerService struct {
	repo ports.CustomerRepo
}

func NewCustomerService(repo ports.CustomerRepo) *CustomerService {
	return &CustomerService{repo: repo}
}

func (s *CustomerService) Create(ctx context.Context, input domain.CreateCustomerInput) (*domain.Customer, error) {
	if input.FullName == "" {
		return nil, fmt.Errorf("%w: full_name is required", domain.ErrValidation)
	}

	customer := &domain.Customer{
		ID:             uuid.New().String(),
		FullName:       input.FullName,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	return customer, nil
}

func (s *CustomerService) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CustomerService) List(ctx context.Context) ([]*domain.Customer, error) {
	return s.repo.List(ctx)
}
