package memory

import (
	"context"
	"time"

	"oficina/internal/domain/finance"
)

type TransactionRepo struct {
	s *Store
}

func (r *TransactionRepo) Save(ctx context.Context, tx *finance.Transaction) error {
	if tx == nil {
		return ErrNilEntity
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.txs = append(r.s.txs, *tx)
	return nil
}

func (r *TransactionRepo) ListByPeriod(ctx context.Context, from, to time.Time) ([]*finance.Transaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*finance.Transaction, 0)
	for i := range r.s.txs {
		tx := r.s.txs[i]
		if tx.Date.Before(from) || !tx.Date.Before(to) {
			continue
		}
		cp := tx
		out = append(out, &cp)
	}
	return out, nil
}
