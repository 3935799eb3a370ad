package service

import (
	"context"
	"testing"

	"github.com/stpnv0/CarBooker/internal/domain"
	"github.com/stpnv0/CarBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCustomerService_Create(t *testing.T) {
	repo := mocks.NewMockCustomerRepo(t)
	svc := NewCustomerService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	chatID := int64(123)
	customer, err := svc.Create(context.Background(), domain.CreateCustomerInput{
		FullName:       "Ivan Petrov",
		TelegramChatID: &chatID,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, customer.ID)
	assert.Equal(t, "Ivan Petrov", customer.FullName)
	require.NotNil(t, customer.TelegramChatID)
	assert.Equal(t, chatID, *customer.TelegramChatID)
}

func TestCustomerService_Create_EmptyName(t *testing.T) {
	repo := mocks.NewMockCustomerRepo(t)
	svc := NewCustomerService(repo)

	_, err := svc.Create(context.Background(), domain.CreateCustomerInput{})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCustomerService_GetByID_NotFound(t *testing.T) {
	repo := mocks.NewMockCustomerRepo(t)
	svc := NewCustomerService(repo)

	repo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.ErrCustomerNotFound)

	_, err := svc.GetByID(context.Background(), "ghost")

	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestCustomerService_List(t *testing.T) {
	repo := mocks.NewMockCustomerRepo(t)
	svc := NewCustomerService(repo)

	repo.EXPECT().List(mock.Anything).Return([]*domain.Customer{
		{ID: "u1", FullName: "Ivan Petrov"},
		{ID: "u2", FullName: "Anna Sidorova"},
	}, nil)

	customers, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, customers, 2)
}
