package repository

import (
	"context"

	"dukasync/internal/domain/entity"
)

// LedgerRepository writes the financial ledger seed to the real-time store.
type LedgerRepository interface {
	// Seed sets the value at wholesalers/{ownerID}/financials.
	Seed(ctx context.Context, seed *entity.FinancialLedgerSeed) error
}
