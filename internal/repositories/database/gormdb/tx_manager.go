package gormdb

import (
	"context"

	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	portsrepo "github.com/SscSPs/workshop_manager_app/internal/core/ports/repositories"
	"github.com/SscSPs/workshop_manager_app/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTransactionManager runs owner-scoped units of work inside db.Transaction.
type GormTransactionManager struct {
	BaseRepository
}

func newGormTransactionManager(db *gorm.DB) *GormTransactionManager {
	return &GormTransactionManager{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.TransactionManager = (*GormTransactionManager)(nil)

// WithinOwnerTx locks the owner's active service rows on MySQL. SQLite serialises writers on its own.
func (m *GormTransactionManager) WithinOwnerTx(ctx context.Context, ownerID string, fn func(ctx context.Context, repos portsrepo.TxRepositories) error) error {
	err := m.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if tx.Dialector.Name() == "mysql" {
			var ids []string
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Model(&models.ServiceRecord{}).
				Scopes(ownedBy(ownerID)).
				Where("status = ?", string(domain.ServiceActive)).
				Pluck("id", &ids).Error
			if err != nil {
				return storageError("failed to lock owner "+ownerID, err)
			}
		}

		return fn(ctx, portsrepo.TxRepositories{
			Services:      newGormServiceRecordRepository(tx),
			Expenses:      newGormExpenseRepository(tx),
			ClosedPeriods: newGormClosedPeriodRepository(tx),
		})
	})
	return err
}
