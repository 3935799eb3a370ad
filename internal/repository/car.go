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

type CarRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCarRepo(db *dbpg.DB) *CarRepository {
	return &CarRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CarRepository) Create(ctx context.Context, car *domain.Car) error {
	query := `INSERT INTO cars (id, type, model, daily_rate, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		car.ID, car.Type, car.Model, car.DailyRate, car.Status, car.CreatedAt, car.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert car: %w", err)
	}

	return nil
}

func (r *CarRepository) GetByID(ctx context.Context, id string) (*domain.Car, error) {
	query := `SELECT id, type, model, daily_rate, status, created_at, updated_at
			  FROM cars
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get car: %w", err)
	}

	var car domain.Car
	if err = row.Scan(
		&car.ID, &car.Type, &car.Model, &car.DailyRate,
		&car.Status, &car.CreatedAt, &car.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCarNotFound
		}
		return nil, fmt.Errorf("scan car: %w", err)
	}

	windows, err := r.loadWindows(ctx, []string{car.ID})
	if err != nil {
		return nil, err
	}
	car.MaintenanceWindows = windows[car.ID]

	return &car, nil
}

func (r *CarRepository) ListAvailableCandidates(ctx context.Context, typeFilter, modelFilter string) ([]*domain.Car, error) {
	query := `SELECT id, type, model, daily_rate, status, created_at, updated_at
			  FROM cars
			  WHERE status = $1
			    AND ($2 = '' OR type = $2)
			    AND ($3 = '' OR model = $3)
			  ORDER BY daily_rate`

	return r.queryCars(ctx, query, domain.CarStatusAvailable, typeFilter, modelFilter)
}

func (r *CarRepository) List(ctx context.Context) ([]*domain.Car, error) {
	query := `SELECT id, type, model, daily_rate, status, created_at, updated_at
			  FROM cars
			  ORDER BY created_at DESC`

	return r.queryCars(ctx, query)
}

func (r *CarRepository) ListInMaintenance(ctx context.Context) ([]*domain.Car, error) {
	query := `SELECT id, type, model, daily_rate, status, created_at, updated_at
			  FROM cars
			  WHERE status = $1`

	return r.queryCars(ctx, query, domain.CarStatusInMaintenance)
}

func (r *CarRepository) Update(ctx context.Context, car *domain.Car) error {
	query := `UPDATE cars
			  SET status = $2, daily_rate = $3, updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, car.ID, car.Status, car.DailyRate)
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

func (r *CarRepository) AddMaintenanceWindow(ctx context.Context, carID string, window domain.Interval) error {
	query := `INSERT INTO maintenance_windows (car_id, start_date, end_date)
			  VALUES ($1, $2, $3)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, carID, window.Start, window.End)
	if err != nil {
		return fmt.Errorf("insert maintenance window: %w", err)
	}

	return nil
}

func (r *CarRepository) queryCars(ctx context.Context, query string, args ...any) ([]*domain.Car, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query cars: %w", err)
	}
	defer rows.Close()

	var res []*domain.Car
	var ids []string
	for rows.Next() {
		var car domain.Car
		if err = rows.Scan(
			&car.ID, &car.Type, &car.Model, &car.DailyRate,
			&car.Status, &car.CreatedAt, &car.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan car: %w", err)
		}
		res = append(res, &car)
		ids = append(ids, car.ID)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return res, nil
	}

	windows, err := r.loadWindows(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, car := range res {
		car.MaintenanceWindows = windows[car.ID]
	}

	return res, nil
}

func (r *CarRepository) loadWindows(ctx context.Context, carIDs []string) (map[string][]domain.Interval, error) {
	query := `SELECT car_id, start_date, end_date
			  FROM maintenance_windows
			  WHERE car_id = ANY($1)
			  ORDER BY start_date`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(carIDs))
	if err != nil {
		return nil, fmt.Errorf("query maintenance windows: %w", err)
	}
	defer rows.Close()

	windows := make(map[string][]domain.Interval)
	for rows.Next() {
		var carID string
		var w domain.Interval
		if err = rows.Scan(&carID, &w.Start, &w.End); err != nil {
			return nil, fmt.Errorf("scan maintenance window: %w", err)
		}
		windows[carID] = append(windows[carID], w)
	}

	return windows, rows.Err()
}
