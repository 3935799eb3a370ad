package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/stpnv0/CarBooker/internal/domain"
	"github.com/stpnv0/CarBooker/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
)

// TxManager открывает единицы работы поверх одной транзакции postgres.
type TxManager struct {
	db *dbpg.DB
}

func NewTxManager(db *dbpg.DB) *TxManager {
	return &TxManager{db: db}
}

func (m *TxManager) Begin(ctx context.Context) (ports.UnitOfWork, error) {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	return &unitOfWork{tx: tx}, nil
}

type unitOfWork struct {
	tx *sql.Tx
}

func (u *unitOfWork) Cars() ports.CarStore {
	return &carTxStore{tx: u.tx}
}

func (u *unitOfWork) Reservations() ports.ReservationStore {
	return &reservationTxStore{tx: u.tx}
}

func (u *unitOfWork) Commit() error {
	return u.tx.Commit()
}

// Rollback после успешного Commit — no-op, чтобы defer был безопасен.
func (u *unitOfWork) Rollback() error {
	if err := u.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}
	return nil
}

type carTxStore struct {
	tx *sql.Tx
}

func (s *carTxStore) Update(ctx context.Context, car *domain.Car) error {
	query := `UPDATE cars
			  SET status = $2, daily_rate = $3, updated_at = now()
			  WHERE id = $1`
	res, err := s.tx.ExecContext(ctx, query, car.ID, car.Status, car.DailyRate)
	if err != nil {
		return fmt.Errorf("update car: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("car rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrCarNotFound
	}

	return nil
}

type reservationTxStore struct {
	tx *sql.Tx
}

// Create вставляет бронь при условии, что по машине нет ни пересекающейся
// брони, ни брони, заканчивающейся накануне (день на подготовку машины).
// Строка машины блокируется до конца транзакции: параллельный Create
// по той же машине дождётся коммита и увидит новую бронь.
func (s *reservationTxStore) Create(ctx context.Context, r *domain.Reservation) error {
	if err := s.lockCar(ctx, r.CarID); err != nil {
		return err
	}

	query := `INSERT INTO reservations
				(id, customer_id, car_id, start_date, end_date,
				 daily_rate, total_cost, status, actual_return_date, created_at, updated_at)
			  SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
			  WHERE NOT EXISTS (
			      SELECT 1 FROM reservations
			      WHERE car_id = $3
			        AND status = ANY($12)
			        AND (start_date < $5 AND end_date > $4
			             OR end_date = $4::date - 1)
			  )`
	res, err := s.tx.ExecContext(
		ctx, query,
		r.ID, r.CustomerID, r.CarID, r.Period.Start, r.Period.End,
		r.DailyRate, r.TotalCost, r.Status, r.ActualReturnDate, r.CreatedAt, r.UpdatedAt,
		pq.Array(domain.BlockingStatuses),
	)
	if err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reservation rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrConcurrencyConflict
	}

	return nil
}

func (s *reservationTxStore) Update(ctx context.Context, r *domain.Reservation) error {
	// терминальные переходы (cancel/complete) интервал не занимают,
	// им проверка пересечений не нужна
	if r.IsTerminal() {
		return s.plainUpdate(ctx, r)
	}

	if err := s.lockCar(ctx, r.CarID); err != nil {
		return err
	}

	query := `UPDATE reservations
			  SET customer_id = $2, car_id = $3, start_date = $4, end_date = $5,
			      daily_rate = $6, total_cost = $7, status = $8,
			      actual_return_date = $9, updated_at = $10
			  WHERE id = $1
			    AND NOT EXISTS (
			        SELECT 1 FROM reservations
			        WHERE car_id = $3
			          AND id <> $1
			          AND status = ANY($11)
			          AND (start_date < $5 AND end_date > $4
			               OR end_date = $4::date - 1)
			    )`
	res, err := s.tx.ExecContext(
		ctx, query,
		r.ID, r.CustomerID, r.CarID, r.Period.Start, r.Period.End,
		r.DailyRate, r.TotalCost, r.Status, r.ActualReturnDate, r.UpdatedAt,
		pq.Array(domain.BlockingStatuses),
	)
	if err != nil {
		return fmt.Errorf("update reservation: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reservation rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrConcurrencyConflict
	}

	return nil
}

func (s *reservationTxStore) plainUpdate(ctx context.Context, r *domain.Reservation) error {
	query := `UPDATE reservations
			  SET status = $2, actual_return_date = $3, updated_at = $4
			  WHERE id = $1`
	res, err := s.tx.ExecContext(ctx, query, r.ID, r.Status, r.ActualReturnDate, r.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update reservation: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reservation rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrReservationNotFound
	}

	return nil
}

func (s *reservationTxStore) lockCar(ctx context.Context, carID string) error {
	var id string
	err := s.tx.QueryRowContext(ctx, `SELECT id FROM cars WHERE id = $1 FOR UPDATE`, carID).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrCarNotFound
		}
		return fmt.Errorf("lock car: %w", err)
	}
	return nil
}
