package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCar(status CarStatus) *Car {
	return &Car{
		ID:        "c1",
		Type:      "sedan",
		Model:     "Toyota Corolla",
		DailyRate: 50,
		Status:    status,
	}
}

func TestCar_MarkRented_FromAvailable(t *testing.T) {
	car := testCar(CarStatusAvailable)

	err := car.MarkRented()

	require.NoError(t, err)
	assert.Equal(t, CarStatusRented, car.Status)
}

func TestCar_MarkRented_FromRented(t *testing.T) {
	car := testCar(CarStatusRented)

	err := car.MarkRented()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStateTransition)
	assert.Equal(t, CarStatusRented, car.Status)
}

func TestCar_MarkRented_FromMaintenance(t *testing.T) {
	car := testCar(CarStatusInMaintenance)

	err := car.MarkRented()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStateTransition)
}

func TestCar_MarkAvailable_ReleasesRented(t *testing.T) {
	car := testCar(CarStatusRented)

	car.MarkAvailable()

	assert.Equal(t, CarStatusAvailable, car.Status)

	events := car.PullEvents()
	require.Len(t, events, 1)
	assert.Equal(t, EventCarReleased, events[0].EventName())
	assert.Equal(t, "c1", events[0].AggregateID())
}

func TestCar_MarkAvailable_Idempotent(t *testing.T) {
	car := testCar(CarStatusAvailable)

	car.MarkAvailable()

	assert.Equal(t, CarStatusAvailable, car.Status)
	assert.Empty(t, car.PullEvents())
}

func TestCar_MarkInMaintenance_FromRented(t *testing.T) {
	car := testCar(CarStatusRented)

	err := car.MarkInMaintenance()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStateTransition)
	assert.Equal(t, CarStatusRented, car.Status)
}

func TestCar_MarkInMaintenance_FromAvailable(t *testing.T) {
	car := testCar(CarStatusAvailable)

	err := car.MarkInMaintenance()

	require.NoError(t, err)
	assert.Equal(t, CarStatusInMaintenance, car.Status)
}

func TestCar_MarkInactive_FromRented(t *testing.T) {
	car := testCar(CarStatusRented)

	err := car.MarkInactive()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStateTransition)
}

func TestCar_ScheduleMaintenance_Success(t *testing.T) {
	car := testCar(CarStatusAvailable)

	window, err := car.ScheduleMaintenance(day(2024, 2, 1), 3)

	require.NoError(t, err)
	assert.Equal(t, day(2024, 2, 1), window.Start)
	assert.Equal(t, day(2024, 2, 4), window.End)
	assert.Len(t, car.MaintenanceWindows, 1)
}

func TestCar_ScheduleMaintenance_Overlapping(t *testing.T) {
	car := testCar(CarStatusAvailable)

	_, err := car.ScheduleMaintenance(day(2024, 2, 1), 5)
	require.NoError(t, err)

	_, err = car.ScheduleMaintenance(day(2024, 2, 3), 2)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOverlappingMaintenance)
	assert.Len(t, car.MaintenanceWindows, 1)
}

func TestCar_ScheduleMaintenance_AdjacentAllowed(t *testing.T) {
	car := testCar(CarStatusAvailable)

	_, err := car.ScheduleMaintenance(day(2024, 2, 1), 3)
	require.NoError(t, err)

	_, err = car.ScheduleMaintenance(day(2024, 2, 4), 2)

	require.NoError(t, err)
	assert.Len(t, car.MaintenanceWindows, 2)
}

func TestCar_ScheduleMaintenance_WhileRented(t *testing.T) {
	car := testCar(CarStatusRented)

	_, err := car.ScheduleMaintenance(day(2024, 2, 1), 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStateTransition)
}

func TestCar_IsInMaintenanceDuring(t *testing.T) {
	car := testCar(CarStatusAvailable)
	_, err := car.ScheduleMaintenance(day(2024, 2, 1), 3)
	require.NoError(t, err)

	assert.True(t, car.IsInMaintenanceDuring(mustInterval(t, day(2024, 2, 2), day(2024, 2, 5))))
	assert.False(t, car.IsInMaintenanceDuring(mustInterval(t, day(2024, 2, 4), day(2024, 2, 6))))
}

func TestCar_MaintenanceEndedBy(t *testing.T) {
	car := testCar(CarStatusInMaintenance)
	_, err := car.ScheduleMaintenance(day(2024, 2, 1), 3)
	require.NoError(t, err)

	assert.False(t, car.MaintenanceEndedBy(day(2024, 2, 3)))
	assert.True(t, car.MaintenanceEndedBy(day(2024, 2, 4)))
	assert.True(t, car.MaintenanceEndedBy(time.Date(2024, 2, 5, 10, 0, 0, 0, time.UTC)))
}
