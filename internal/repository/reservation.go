package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/CarBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const reservationColumns = `id, customer_id, car_id, start_date, end_date,
		daily_rate, total_cost, status, actual_return_date, created_at, updated_at`

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	res, err := scanReservation(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	return res, nil
}

func (r *ReservationRepository) FindOverlapping(ctx context.Context, carID string, interval domain.Interval, excludeID string) ([]*domain.Reservation, error) {
	query, args := findOverlappingQuery(carID, interval, excludeID)
	return r.queryReservations(ctx, query, args...)
}

// findOverlappingQuery собирает запрос пересечений. Исключение собственной
// брони добавляется отдельным условием: колонка id имеет тип uuid, и
// параметр должен сравниваться только с ней, без сравнения со строкой.
func findOverlappingQuery(carID string, interval domain.Interval, excludeID string) (string, []any) {
	// полуоткрытые интервалы: [s1,e1) и [s2,e2) пересекаются при s1<e2 и e1>s2
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE car_id = $1
			    AND status = ANY($2)
			    AND start_date < $4
			    AND end_date > $3`
	args := []any{carID, pq.Array(domain.BlockingStatuses), interval.Start, interval.End}

	if excludeID != "" {
		query += `
			    AND id <> $5`
		args = append(args, excludeID)
	}

	query += `
			  ORDER BY start_date`

	return query, args
}

func (r *ReservationRepository) FindEndingOn(ctx context.Context, carID string, date time.Time) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE car_id = $1
			    AND status = ANY($2)
			    AND end_date = $3`

	return r.queryReservations(ctx, query, carID, pq.Array(domain.BlockingStatuses), date)
}

func (r *ReservationRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE customer_id = $1
			  ORDER BY created_at DESC`

	return r.queryReservations(ctx, query, customerID)
}

func (r *ReservationRepository) ListDue(ctx context.Context, asOf time.Time) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE status = ANY($1)
			    AND start_date <= $2
			  ORDER BY start_date`

	return r.queryReservations(ctx, query, pq.Array(domain.PendingStatuses), asOf)
}

func (r *ReservationRepository) queryReservations(ctx context.Context, query string, args ...any) ([]*domain.Reservation, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query reservations: %w", err)
	}
	defer rows.Close()

	var res []*domain.Reservation
	for rows.Next() {
		item, err := scanReservation(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, item)
	}

	return res, rows.Err()
}

func scanReservation(scan func(dest ...any) error) (*domain.Reservation, error) {
	var res domain.Reservation
	err := scan(
		&res.ID, &res.CustomerID, &res.CarID,
		&res.Period.Start, &res.Period.End,
		&res.DailyRate, &res.TotalCost, &res.Status,
		&res.ActualReturnDate, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
