package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"oficina/internal/domain/finance"
)

type TransactionRepository struct {
	pool *pgxpool.Pool
}

func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

func (r *TransactionRepository) Save(ctx context.Context, tx *finance.Transaction) error {
	if tx == nil {
		return fmt.Errorf("transaction is nil")
	}

	const query = `
		INSERT INTO transactions (id, type, category, description, amount, work_order_id, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE
		SET type = EXCLUDED.type,
			category = EXCLUDED.category,
			description = EXCLUDED.description,
			amount = EXCLUDED.amount,
			work_order_id = EXCLUDED.work_order_id,
			date = EXCLUDED.date;
	`

	if err := r.ensureTable(ctx); err != nil {
		return err
	}

	_, err := r.pool.Exec(ctx, query,
		tx.ID,
		tx.Type,
		tx.Category,
		tx.Description,
		tx.Amount,
		tx.WorkOrderID,
		tx.Date,
		tx.CreatedAt,
	)
	return err
}

// ListByPeriod returns transactions with from <= date < to.
func (r *TransactionRepository) ListByPeriod(ctx context.Context, from, to time.Time) ([]*finance.Transaction, error) {
	const query = `
		SELECT id, type, category, description, amount, work_order_id, date, created_at
		FROM transactions
		WHERE date >= $1 AND date < $2
		ORDER BY date;
	`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	txs := make([]*finance.Transaction, 0)
	for rows.Next() {
		var tx finance.Transaction
		if err := rows.Scan(&tx.ID, &tx.Type, &tx.Category, &tx.Description, &tx.Amount, &tx.WorkOrderID, &tx.Date, &tx.CreatedAt); err != nil {
			return nil, err
		}
		txs = append(txs, &tx)
	}
	return txs, rows.Err()
}

func (r *TransactionRepository) ensureTable(ctx context.Context) error {
	const stmt = `
		CREATE TABLE IF NOT EXISTS transactions (
			id TEXT PRIMARY KEY,
			type TEXT NOT NULL,
			category TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			amount NUMERIC NOT NULL,
			work_order_id TEXT NOT NULL DEFAULT '',
			date TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);
	`
	_, err := r.pool.Exec(ctx, stmt)
	return err
}
