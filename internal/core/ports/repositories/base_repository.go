package repositories

import "context"

// TxRepositories are repositories bound to a single open transaction.
type TxRepositories struct {
	Services      ServiceRecordRepositoryFacade
	Expenses      ExpenseRepositoryFacade
	ClosedPeriods ClosedPeriodRepositoryFacade
}

// TransactionManager runs a unit of work atomically for one owner.
type TransactionManager interface {
	// WithinOwnerTx begins a transaction, takes the backend's per-owner write lock
	// and calls fn with transaction-bound repositories. fn returning an error rolls back.
	WithinOwnerTx(ctx context.Context, ownerID string, fn func(ctx context.Context, repos TxRepositories) error) error
}
