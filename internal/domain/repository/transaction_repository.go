package repository

import (
	"context"
	"time"

	"oficina/internal/domain/finance"
)

type TransactionRepository interface {
	Save(ctx context.Context, tx *finance.Transaction) error
	// ListByPeriod returns entries with from <= Date < to.
	ListByPeriod(ctx context.Context, from, to time.Time) ([]*finance.Transaction, error)
}
