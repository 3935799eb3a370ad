package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/CarBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type CustomerRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCustomerRepo(db *dbpg.DB) *CustomerRepository {
	return &CustomerRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO customers (id, full_name, telegram_chat_id, created_at)
			  VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, c.ID, c.FullName, c.TelegramChatID, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}

	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	query := `SELECT id, full_name, telegram_chat_id, created_at
			  FROM customers
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}

	var c domain.Customer
	if err = row.Scan(&c.ID, &c.FullName, &c.TelegramChatID, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("scan customer: %w", err)
	}

	return &c, nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]*domain.Customer, error) {
	query := `SELECT id, full_name, telegram_chat_id, created_at
			  FROM customers
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var res []*domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err = rows.Scan(&c.ID, &c.FullName, &c.TelegramChatID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}
