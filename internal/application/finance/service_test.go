package finance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "oficina/internal/domain/finance"
	"oficina/internal/infrastructure/persistence/memory"
)

func TestService_Register_Invalid(t *testing.T) {
	svc := NewService(memory.NewStore().Transactions())

	_, err := svc.Register(context.Background(), RegisterTransactionCommand{
		Type: "transfer", Category: "Servicos", Amount: 10,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidType)
}

func TestService_MonthlySummary(t *testing.T) {
	svc := NewService(memory.NewStore().Transactions())
	ctx := context.Background()
	jan := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	entries := []RegisterTransactionCommand{
		{Type: "income", Category: "Serviços", Amount: 850, Date: jan},
		{Type: "income", Category: "Peças", Amount: 200, Date: jan.AddDate(0, 0, 3)},
		{Type: "expense", Category: "Peças", Amount: 120, Date: jan.AddDate(0, 0, 5)},
		// outside the month, must be ignored
		{Type: "income", Category: "Serviços", Amount: 999, Date: jan.AddDate(0, 1, 0)},
	}
	for _, cmd := range entries {
		_, err := svc.Register(ctx, cmd)
		require.NoError(t, err)
	}

	summary, err := svc.MonthlySummary(ctx, jan)
	require.NoError(t, err)

	assert.Equal(t, 1050.0, summary.Income)
	assert.Equal(t, 120.0, summary.Expense)
	assert.Equal(t, 930.0, summary.Net)
	assert.Equal(t, 850.0, summary.ByCategory["Serviços"])
	assert.Equal(t, 80.0, summary.ByCategory["Peças"])
}
