// Package rtdb implements repositories on the Firebase Realtime Database.
package rtdb

import (
	"context"
	"path"

	"dukasync/internal/domain/constants"
	"dukasync/internal/domain/entity"
	"dukasync/internal/domain/repository"
	"dukasync/internal/errors"

	"firebase.google.com/go/v4/db"
	"go.uber.org/fx"
)

// serverTimestamp is the Realtime Database placeholder resolved to the server's clock on write.
//
//nolint:gochecknoglobals
var serverTimestamp = map[string]string{".sv": "timestamp"}

// refSetter writes a value at a database path.
type refSetter interface {
	Set(ctx context.Context, refPath string, value any) error
}

type dbSetter struct {
	client *db.Client
}

func (s *dbSetter) Set(ctx context.Context, refPath string, value any) error {
	if s.client == nil {
		return errors.WithStack(repository.ErrStoreNotConfigured)
	}

	return errors.WithStack(s.client.NewRef(refPath).Set(ctx, value))
}

type ledgerMetaDocument struct {
	CreatedAt any    `json:"createdAt"`
	CreatedBy string `json:"createdBy"`
}

type ledgerDocument struct {
	ChartOfAccounts map[string]entity.LedgerAccount `json:"chartOfAccounts"`
	Meta            ledgerMetaDocument              `json:"meta"`
}

// ledgerRepository implements repository.LedgerRepository.
type ledgerRepository struct {
	setter refSetter
}

// NewLedgerRepository is the constructor for ledgerRepository.
func NewLedgerRepository(client *db.Client) repository.LedgerRepository {
	return &ledgerRepository{setter: &dbSetter{client: client}}
}

// Seed sets wholesalers/{ownerID}/financials.
func (repo *ledgerRepository) Seed(ctx context.Context, seed *entity.FinancialLedgerSeed) error {
	if seed.OwnerID == "" {
		return errors.New("ledger seed has no owner")
	}

	doc := &ledgerDocument{
		ChartOfAccounts: seed.ChartOfAccounts,
		Meta: ledgerMetaDocument{
			CreatedAt: serverTimestamp,
			CreatedBy: seed.Meta.CreatedBy,
		},
	}

	if err := repo.setter.Set(ctx, ledgerPath(seed.OwnerID), doc); err != nil {
		return errors.Wrap(err, "failed to seed financial ledger")
	}

	return nil
}

func ledgerPath(ownerID string) string {
	return path.Join(constants.CollectionWholesalers, ownerID, "financials")
}

// Module provides the Realtime Database repositories
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewLedgerRepository),
)
