package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	domain "oficina/internal/domain/finance"
	"oficina/internal/domain/repository"
)

type Service struct {
	txs repository.TransactionRepository
}

func NewService(txs repository.TransactionRepository) *Service {
	return &Service{txs: txs}
}

type RegisterTransactionCommand struct {
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	WorkOrderID string    `json:"work_order_id"`
	Date        time.Time `json:"date"`
}

func (s *Service) Register(ctx context.Context, cmd RegisterTransactionCommand) (*domain.Transaction, error) {
	tx, err := domain.NewTransaction(uuid.NewString(), domain.TransactionType(cmd.Type), cmd.Category, cmd.Description, cmd.Amount, cmd.Date)
	if err != nil {
		return nil, err
	}
	tx.WorkOrderID = cmd.WorkOrderID
	if err := s.txs.Save(ctx, tx); err != nil {
		return nil, fmt.Errorf("save transaction: %w", err)
	}
	return tx, nil
}

func (s *Service) ListPeriod(ctx context.Context, from, to time.Time) ([]*domain.Transaction, error) {
	return s.txs.ListByPeriod(ctx, from, to)
}

// MonthlySummary aggregates the ledger for the month containing ref.
func (s *Service) MonthlySummary(ctx context.Context, ref time.Time) (domain.Summary, error) {
	from := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	txs, err := s.txs.ListByPeriod(ctx, from, to)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("list transactions: %w", err)
	}
	return domain.Summarize(txs), nil
}
