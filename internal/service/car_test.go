package service

import (
	"context"
	"testing"
	"time"

	"github.com/stpnv0/CarBooker/internal/domain"
	"github.com/stpnv0/CarBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCarService_Create(t *testing.T) {
	repo := mocks.NewMockCarRepo(t)
	publisher := mocks.NewMockEventPublisher(t)
	svc := NewCarService(repo, publisher, newTestLogger(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	car, err := svc.Create(context.Background(), domain.CreateCarInput{
		Type:      "sedan",
		Model:     "Camry",
		DailyRate: 50,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, car.ID)
	assert.Equal(t, domain.CarStatusAvailable, car.Status)
}

func TestCarService_Create_Invalid(t *testing.T) {
	repo := mocks.NewMockCarRepo(t)
	publisher := mocks.NewMockEventPublisher(t)
	svc := NewCarService(repo, publisher, newTestLogger(t))

	cases := []struct {
		name  string
		input domain.CreateCarInput
	}{
		{"empty type", domain.CreateCarInput{Model: "Camry", DailyRate: 50}},
		{"empty model", domain.CreateCarInput{Type: "sedan", DailyRate: 50}},
		{"zero rate", domain.CreateCarInput{Type: "sedan", Model: "Camry"}},
		{"negative rate", domain.CreateCarInput{Type: "sedan", Model: "Camry", DailyRate: -1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestCarService_ScheduleMaintenance_FutureWindow(t *testing.T) {
	repo := mocks.NewMockCarRepo(t)
	publisher := mocks.NewMockEventPublisher(t)
	svc := NewCarService(repo, publisher, newTestLogger(t))

	car := availableCar("c1")
	start := day(2030, time.June, 10)

	repo.EXPECT().GetByID(mock.Anything, "c1").Return(car, nil)
	repo.EXPECT().AddMaintenanceWindow(mock.Anything, "c1", mock.Anything).Return(nil)

	window, err := svc.ScheduleMaintenance(context.Background(), "c1", start, 3)

	require.NoError(t, err)
	assert.Equal(t, start, window.Start)
	assert.Equal(t, day(2030, time.June, 13), window.End)
	// будущее окно статус не меняет
	assert.Equal(t, domain.CarStatusAvailable, car.Status)
}

func TestCarService_ScheduleMaintenance_StartedWindow(t *testing.T) {
	repo := mocks.NewMockCarRepo(t)
	publisher := mocks.NewMockEventPublisher(t)
	svc := NewCarService(repo, publisher, newTestLogger(t))

	car := availableCar("c1")
	start := domain.DateOf(time.Now())

	repo.EXPECT().GetByID(mock.Anything, "c1").Return(car, nil)
	repo.EXPECT().AddMaintenanceWindow(mock.Anything, "c1", mock.Anything).Return(nil)
	repo.EXPECT().Update(mock.Anything, car).Return(nil)

	_, err := svc.ScheduleMaintenance(context.Background(), "c1", start, 3)

	require.NoError(t, err)
	assert.Equal(t, domain.CarStatusInMaintenance, car.Status)
}

func TestCarService_ScheduleMaintenance_OverlappingWindow(t *testing.T) {
	repo := mocks.NewMockCarRepo(t)
	publisher := mocks.NewMockEventPublisher(t)
	svc := NewCarService(repo, publisher, newTestLogger(t))

	car := availableCar("c1")
	car.MaintenanceWindows = []domain.Interval{
		mustInterval(t, day(2030, time.June, 11), day(2030, time.June, 14)),
	}

	repo.EXPECT().GetByID(mock.Anything, "c1").Return(car, nil)

	_, err := svc.ScheduleMaintenance(context.Background(), "c1", day(2030, time.June, 10), 3)

	assert.ErrorIs(t, err, domain.ErrOverlappingMaintenance)
}

func TestCarService_ScheduleMaintenance_RentedCar(t *testing.T) {
	repo := mocks.NewMockCarRepo(t)
	publisher := mocks.NewMockEventPublisher(t)
	svc := NewCarService(repo, publisher, newTestLogger(t))

	car := availableCar("c1")
	car.Status = domain.CarStatusRented

	repo.EXPECT().GetByID(mock.Anything, "c1").Return(car, nil)

	_, err := svc.ScheduleMaintenance(context.Background(), "c1", day(2030, time.June, 10), 3)

	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
}

func TestCarService_ReleaseMaintained(t *testing.T) {
	repo := mocks.NewMockCarRepo(t)
	publisher := mocks.NewMockEventPublisher(t)
	svc := NewCarService(repo, publisher, newTestLogger(t))

	done := availableCar("c1")
	done.Status = domain.CarStatusInMaintenance
	done.MaintenanceWindows = []domain.Interval{
		mustInterval(t, day(2026, time.September, 1), day(2026, time.September, 5)),
	}

	ongoing := availableCar("c2")
	ongoing.Status = domain.CarStatusInMaintenance
	ongoing.MaintenanceWindows = []domain.Interval{
		mustInterval(t, day(2026, time.September, 1), day(2026, time.September, 20)),
	}

	repo.EXPECT().ListInMaintenance(mock.Anything).Return([]*domain.Car{done, ongoing}, nil)
	repo.EXPECT().Update(mock.Anything, done).Return(nil)
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return()

	released, err := svc.ReleaseMaintained(context.Background(), day(2026, time.September, 10))

	require.NoError(t, err)
	require.Len(t, released, 1)
	assert.Equal(t, "c1", released[0].ID)
	assert.Equal(t, domain.CarStatusAvailable, done.Status)
	assert.Equal(t, domain.CarStatusInMaintenance, ongoing.Status)
}
