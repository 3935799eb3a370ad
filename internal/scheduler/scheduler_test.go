package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/CarBooker/internal/domain"
	"github.com/stpnv0/CarBooker/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_ActivatesAndReleases(t *testing.T) {
	activator := mocks.NewMockReservationActivator(t)
	releaser := mocks.NewMockMaintenanceReleaser(t)
	log := newTestLogger(t)

	s := New(activator, releaser, 50*time.Millisecond, log)

	activated := []*domain.Reservation{
		{ID: "r1", CarID: "c1", CustomerID: "u1"},
	}
	released := []*domain.Car{
		{ID: "c2"},
	}
	activator.EXPECT().ActivateDue(mock.Anything, mock.Anything).Return(activated, nil)
	releaser.EXPECT().ReleaseMaintained(mock.Anything, mock.Anything).Return(released, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(activator.Calls), 1)
	assert.GreaterOrEqual(t, len(releaser.Calls), 1)
}

func TestScheduler_Tick_ActivationErrorDoesNotSkipRelease(t *testing.T) {
	activator := mocks.NewMockReservationActivator(t)
	releaser := mocks.NewMockMaintenanceReleaser(t)
	log := newTestLogger(t)

	s := New(activator, releaser, 50*time.Millisecond, log)

	activator.EXPECT().ActivateDue(mock.Anything, mock.Anything).Return(nil, errors.New("db error"))
	releaser.EXPECT().ReleaseMaintained(mock.Anything, mock.Anything).Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(releaser.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	activator := mocks.NewMockReservationActivator(t)
	releaser := mocks.NewMockMaintenanceReleaser(t)
	log := newTestLogger(t)

	s := New(activator, releaser, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	activator := mocks.NewMockReservationActivator(t)
	releaser := mocks.NewMockMaintenanceReleaser(t)
	log := newTestLogger(t)

	s := New(activator, releaser, 30*time.Millisecond, log)

	activator.EXPECT().ActivateDue(mock.Anything, mock.Anything).Return(nil, nil).Times(3)
	releaser.EXPECT().ReleaseMaintained(mock.Anything, mock.Anything).Return(nil, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(activator.Calls), 3)
}
