package gormdb

import (
	"context"
	"errors"
	"net/http"

	"github.com/SscSPs/workshop_manager_app/internal/apperrors"
	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	"github.com/SscSPs/workshop_manager_app/internal/models"
	"gorm.io/gorm"
)

// BaseRepository provides common functionality for gorm-backed repositories.
// DB may be the root handle or a transaction handle.
type BaseRepository struct {
	DB *gorm.DB
}

func (r *BaseRepository) conn(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx)
}

func storageError(message string, err error) error {
	return apperrors.NewAppError(http.StatusInternalServerError, message, err)
}

func notFoundOr(err error, entity, id, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NewNotFoundError(entity, id)
	}
	return storageError(message, err)
}

// ownedBy restricts a query to one tenant.
func ownedBy(ownerID string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("owner_id = ?", ownerID)
	}
}

// expenseStatusIs filters expenses by status. Legacy rows without a status count as active.
func expenseStatusIs(status domain.ExpenseStatus) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if status == domain.ExpenseActive {
			return db.Where("(status IS NULL OR status = ?)", string(status))
		}
		return db.Where("status = ?", string(status))
	}
}

// AutoMigrate creates or updates every table used by the gorm backends.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.ServiceRecord{},
		&models.Expense{},
		&models.Appointment{},
		&models.Withdrawal{},
		&models.ClosedPeriod{},
		&models.Setting{},
	)
}
