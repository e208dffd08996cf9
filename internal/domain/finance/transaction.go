package finance

import (
	"errors"
	"time"
)

var (
	ErrMissingField  = errors.New("required field is missing")
	ErrInvalidType   = errors.New("transaction type must be income or expense")
	ErrInvalidAmount = errors.New("amount must be greater than zero")
)

type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Transaction is one ledger entry, optionally tied to a work order
// (a completed order generates an income entry).
type Transaction struct {
	ID          string
	Type        TransactionType
	Category    string
	Description string
	Amount      float64
	WorkOrderID string
	Date        time.Time
	CreatedAt   time.Time
}

func NewTransaction(id string, typ TransactionType, category, description string, amount float64, date time.Time) (*Transaction, error) {
	if id == "" || category == "" {
		return nil, ErrMissingField
	}
	if typ != TypeIncome && typ != TypeExpense {
		return nil, ErrInvalidType
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if date.IsZero() {
		date = time.Now().UTC()
	}
	return &Transaction{
		ID:          id,
		Type:        typ,
		Category:    category,
		Description: description,
		Amount:      amount,
		Date:        date,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// Summary aggregates the ledger for one period.
type Summary struct {
	Income     float64
	Expense    float64
	Net        float64
	ByCategory map[string]float64
}

// Summarize folds transactions into period totals. Expenses count negative
// in the per-category map so a category nets out across both types.
func Summarize(txs []*Transaction) Summary {
	s := Summary{ByCategory: make(map[string]float64)}
	for _, tx := range txs {
		switch tx.Type {
		case TypeIncome:
			s.Income += tx.Amount
			s.ByCategory[tx.Category] += tx.Amount
		case TypeExpense:
			s.Expense += tx.Amount
			s.ByCategory[tx.Category] -= tx.Amount
		}
	}
	s.Net = s.Income - s.Expense
	return s
}
