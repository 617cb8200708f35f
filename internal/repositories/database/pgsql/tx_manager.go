package pgsql

import (
	"context"

	portsrepo "github.com/SscSPs/workshop_manager_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTransactionManager runs owner-scoped units of work in one pgx transaction.
type PgxTransactionManager struct {
	BaseRepository
	services *PgxServiceRecordRepository
	expenses *PgxExpenseRepository
	periods  *PgxClosedPeriodRepository
}

func newPgxTransactionManager(pool *pgxpool.Pool, services *PgxServiceRecordRepository, expenses *PgxExpenseRepository, periods *PgxClosedPeriodRepository) *PgxTransactionManager {
	return &PgxTransactionManager{
		BaseRepository: BaseRepository{Pool: pool},
		services:       services,
		expenses:       expenses,
		periods:        periods,
	}
}

var _ portsrepo.TransactionManager = (*PgxTransactionManager)(nil)

// WithinOwnerTx holds a transaction-scoped advisory lock on the owner for the whole unit of work.
func (m *PgxTransactionManager) WithinOwnerTx(ctx context.Context, ownerID string, fn func(ctx context.Context, repos portsrepo.TxRepositories) error) error {
	tx, err := m.Begin(ctx)
	if err != nil {
		return err
	}
	defer m.Rollback(ctx, tx) // no-op once committed

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1));`, ownerID); err != nil {
		return storageError("failed to lock owner "+ownerID, err)
	}

	repos := portsrepo.TxRepositories{
		Services:      m.services.withTx(tx),
		Expenses:      m.expenses.withTx(tx),
		ClosedPeriods: m.periods.withTx(tx),
	}
	if err := fn(ctx, repos); err != nil {
		return err
	}

	return m.Commit(ctx, tx)
}
