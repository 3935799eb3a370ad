package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stpnv0/CarBooker/internal/domain"
)

func newTxStore(t *testing.T) (*reservationTxStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mock.ExpectBegin()
	tx, err := db.Begin()
	require.NoError(t, err)

	return &reservationTxStore{tx: tx}, mock
}

func txReservation(t *testing.T) *domain.Reservation {
	t.Helper()
	now := time.Now()
	return &domain.Reservation{
		ID:         "res-1",
		CustomerID: "cust-1",
		CarID:      "car-1",
		Period:     testInterval(t),
		DailyRate:  50,
		TotalCost:  150,
		Status:     domain.ReservationStatusReserved,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func expectCarLock(mock sqlmock.Sqlmock, carID string) {
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM cars WHERE id = $1 FOR UPDATE`)).
		WithArgs(carID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(carID))
}

// вставка проходит только через условный INSERT, проверяющий и пересечение,
// и бронь, закончившуюся накануне
const insertGuard = `INSERT INTO reservations[\s\S]*OR end_date = \$4::date - 1`

func TestReservationTxStore_Create_GuardedInsert(t *testing.T) {
	store, mock := newTxStore(t)
	res := txReservation(t)

	expectCarLock(mock, res.CarID)
	mock.ExpectExec(insertGuard).WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Create(context.Background(), res))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationTxStore_Create_Conflict(t *testing.T) {
	store, mock := newTxStore(t)
	res := txReservation(t)

	expectCarLock(mock, res.CarID)
	mock.ExpectExec(insertGuard).WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.Create(context.Background(), res)
	assert.ErrorIs(t, err, domain.ErrConcurrencyConflict)
}

func TestReservationTxStore_Create_UnknownCar(t *testing.T) {
	store, mock := newTxStore(t)
	res := txReservation(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM cars WHERE id = $1 FOR UPDATE`)).
		WithArgs(res.CarID).
		WillReturnError(sql.ErrNoRows)

	err := store.Create(context.Background(), res)
	assert.ErrorIs(t, err, domain.ErrCarNotFound)
}

func TestReservationTxStore_Update_GuardedAgainstRaces(t *testing.T) {
	store, mock := newTxStore(t)
	res := txReservation(t)

	expectCarLock(mock, res.CarID)
	mock.ExpectExec(`UPDATE reservations[\s\S]*OR end_date = \$4::date - 1`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.Update(context.Background(), res)
	assert.ErrorIs(t, err, domain.ErrConcurrencyConflict)
}

func TestReservationTxStore_Update_TerminalSkipsGuard(t *testing.T) {
	store, mock := newTxStore(t)
	res := txReservation(t)
	res.Status = domain.ReservationStatusCancelled

	// терминальный статус освобождает интервал: без блокировки машины
	// и без проверки пересечений
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE reservations`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Update(context.Background(), res))
	assert.NoError(t, mock.ExpectationsWereMet())
}
