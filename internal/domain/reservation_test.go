package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReservation(t *testing.T, status ReservationStatus) *Reservation {
	t.Helper()
	r := NewReservation("r1", "cust1", "c1", mustInterval(t, day(2024, 1, 1), day(2024, 1, 5)), 50)
	r.Status = status
	r.PullEvents() // сбрасываем событие создания
	return r
}

func TestNewReservation_CapturesRateAndCost(t *testing.T) {
	r := NewReservation("r1", "cust1", "c1", mustInterval(t, day(2024, 1, 1), day(2024, 1, 5)), 50)

	assert.Equal(t, ReservationStatusReserved, r.Status)
	assert.Equal(t, 50.0, r.DailyRate)
	assert.Equal(t, 200.0, r.TotalCost) // 4 дня * 50

	events := r.PullEvents()
	require.Len(t, events, 1)
	assert.Equal(t, EventReservationCreated, events[0].EventName())
}

func TestReservation_PullEvents_DrainsOnce(t *testing.T) {
	r := NewReservation("r1", "cust1", "c1", mustInterval(t, day(2024, 1, 1), day(2024, 1, 5)), 50)

	assert.Len(t, r.PullEvents(), 1)
	assert.Empty(t, r.PullEvents())
}

func TestReservation_Activate(t *testing.T) {
	for _, status := range []ReservationStatus{
		ReservationStatusPending, ReservationStatusReserved, ReservationStatusConfirmed,
	} {
		r := testReservation(t, status)

		err := r.Activate()

		require.NoError(t, err)
		assert.Equal(t, ReservationStatusActive, r.Status)
	}
}

func TestReservation_Activate_FromTerminal(t *testing.T) {
	for _, status := range []ReservationStatus{
		ReservationStatusCompleted, ReservationStatusCancelled, ReservationStatusActive,
	} {
		r := testReservation(t, status)

		err := r.Activate()

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidStateTransition)
	}
}

func TestReservation_UpdateDates_RecomputesCost(t *testing.T) {
	r := testReservation(t, ReservationStatusActive)

	err := r.UpdateDates(mustInterval(t, day(2024, 1, 1), day(2024, 1, 10)))

	require.NoError(t, err)
	assert.Equal(t, 450.0, r.TotalCost) // 9 дней по замороженной ставке

	events := r.PullEvents()
	require.Len(t, events, 1)
	assert.Equal(t, EventReservationPeriodChanged, events[0].EventName())
}

func TestReservation_UpdateDates_NotActive(t *testing.T) {
	r := testReservation(t, ReservationStatusCompleted)

	err := r.UpdateDates(mustInterval(t, day(2024, 1, 1), day(2024, 1, 10)))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReservationNotActive)
	assert.Empty(t, r.PullEvents())
}

func TestReservation_ChangeCar(t *testing.T) {
	r := testReservation(t, ReservationStatusActive)

	err := r.ChangeCar("c2", 80)

	require.NoError(t, err)
	assert.Equal(t, "c2", r.CarID)
	assert.Equal(t, 80.0, r.DailyRate)
	assert.Equal(t, 320.0, r.TotalCost) // 4 дня по новой ставке

	events := r.PullEvents()
	require.Len(t, events, 1)
	changed, ok := events[0].(ReservationCarChanged)
	require.True(t, ok)
	assert.Equal(t, "c1", changed.OldCarID)
	assert.Equal(t, "c2", changed.NewCarID)
}

func TestReservation_ChangeCar_NotActive(t *testing.T) {
	r := testReservation(t, ReservationStatusCancelled)

	err := r.ChangeCar("c2", 80)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReservationNotActive)
	assert.Equal(t, "c1", r.CarID)
}

func TestReservation_PriceFreeze(t *testing.T) {
	r := testReservation(t, ReservationStatusActive)
	costBefore := r.TotalCost

	// тариф машины меняется вне агрегата — бронь не пересчитывается
	assert.Equal(t, costBefore, r.TotalCost)

	require.NoError(t, r.UpdateDates(mustInterval(t, day(2024, 1, 1), day(2024, 1, 7))))
	assert.Equal(t, 300.0, r.TotalCost) // старая ставка 50, новые 6 дней
}

func TestReservation_Cancel(t *testing.T) {
	r := testReservation(t, ReservationStatusActive)

	err := r.Cancel()

	require.NoError(t, err)
	assert.Equal(t, ReservationStatusCancelled, r.Status)
	assert.True(t, r.IsTerminal())

	events := r.PullEvents()
	require.Len(t, events, 1)
	cancelled, ok := events[0].(ReservationCancelled)
	require.True(t, ok)
	assert.Equal(t, "c1", cancelled.CarID)
	assert.Equal(t, "cust1", cancelled.CustomerID)
}

func TestReservation_Cancel_NotActive(t *testing.T) {
	for _, status := range []ReservationStatus{
		ReservationStatusReserved, ReservationStatusCompleted, ReservationStatusCancelled,
	} {
		r := testReservation(t, status)

		err := r.Cancel()

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrReservationNotActive)
	}
}

func TestReservation_Complete_WithReturnDate(t *testing.T) {
	r := testReservation(t, ReservationStatusActive)

	err := r.Complete(day(2024, 1, 4))

	require.NoError(t, err)
	assert.Equal(t, ReservationStatusCompleted, r.Status)
	require.NotNil(t, r.ActualReturnDate)
	assert.Equal(t, day(2024, 1, 4), *r.ActualReturnDate)

	events := r.PullEvents()
	require.Len(t, events, 1)
	completed, ok := events[0].(ReservationCompleted)
	require.True(t, ok)
	assert.Equal(t, day(2024, 1, 4), completed.ActualReturnDate)
}

func TestReservation_Complete_DefaultsToToday(t *testing.T) {
	r := testReservation(t, ReservationStatusActive)

	err := r.Complete(time.Time{})

	require.NoError(t, err)
	require.NotNil(t, r.ActualReturnDate)
	assert.Equal(t, DateOf(time.Now()), *r.ActualReturnDate)
}

func TestReservation_Complete_NotActive(t *testing.T) {
	r := testReservation(t, ReservationStatusCancelled)

	err := r.Complete(day(2024, 1, 4))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReservationNotActive)
	assert.Equal(t, ReservationStatusCancelled, r.Status)
}

func TestReservation_TerminalRejectsAllMutation(t *testing.T) {
	r := testReservation(t, ReservationStatusActive)
	require.NoError(t, r.Complete(day(2024, 1, 4)))
	r.PullEvents()

	assert.ErrorIs(t, r.Cancel(), ErrReservationNotActive)
	assert.ErrorIs(t, r.UpdateDates(mustInterval(t, day(2024, 1, 1), day(2024, 1, 3))), ErrReservationNotActive)
	assert.ErrorIs(t, r.ChangeCar("c9", 10), ErrReservationNotActive)
	assert.Empty(t, r.PullEvents())
}
