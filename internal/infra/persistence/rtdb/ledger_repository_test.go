package rtdb

import (
	"context"
	"testing"

	"dukasync/internal/domain/entity"
	"dukasync/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSetter struct {
	path  string
	value any
	err   error
}

func (s *recordingSetter) Set(_ context.Context, refPath string, value any) error {
	s.path = refPath
	s.value = value

	return s.err
}

func TestLedgerRepository_Seed(t *testing.T) {
	setter := &recordingSetter{}
	repo := &ledgerRepository{setter: setter}

	require.NoError(t, repo.Seed(context.Background(), entity.NewFinancialLedgerSeed("uid-1")))

	assert.Equal(t, "wholesalers/uid-1/financials", setter.path)
	doc := setter.value.(*ledgerDocument)
	assert.Len(t, doc.ChartOfAccounts, 5)
	assert.Equal(t, "uid-1", doc.Meta.CreatedBy)
	assert.Equal(t, map[string]string{".sv": "timestamp"}, doc.Meta.CreatedAt)
}

func TestLedgerRepository_SeedErrors(t *testing.T) {
	repo := &ledgerRepository{setter: &recordingSetter{err: assert.AnError}}

	err := repo.Seed(context.Background(), entity.NewFinancialLedgerSeed("uid-1"))
	assert.ErrorIs(t, err, assert.AnError)

	err = repo.Seed(context.Background(), &entity.FinancialLedgerSeed{})
	assert.Error(t, err)
}

func TestLedgerRepository_NotConfigured(t *testing.T) {
	repo := NewLedgerRepository(nil)

	err := repo.Seed(context.Background(), entity.NewFinancialLedgerSeed("uid-1"))

	assert.ErrorIs(t, err, repository.ErrStoreNotConfigured)
}
