package pgsql

import (
	"context"
	"strconv"

	"github.com/SscSPs/workshop_manager_app/internal/apperrors"
	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	portsrepo "github.com/SscSPs/workshop_manager_app/internal/core/ports/repositories"
	"github.com/SscSPs/workshop_manager_app/internal/models"
	"github.com/SscSPs/workshop_manager_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const expenseColumns = `id, owner_id, description, amount, to_char(date, 'YYYY-MM-DD'), status, created_at`

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(pool *pgxpool.Pool) *PgxExpenseRepository {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

func (r *PgxExpenseRepository) withTx(tx pgx.Tx) *PgxExpenseRepository {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: r.Pool, tx: tx}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

// expenseStatusClause filters on status at placeholder $pos. Active also matches legacy NULL rows.
func expenseStatusClause(status domain.ExpenseStatus, pos int) string {
	p := "$" + strconv.Itoa(pos)
	if status == domain.ExpenseActive {
		return ` AND (status IS NULL OR status = ` + p + `)`
	}
	return ` AND status = ` + p
}

func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, ownerID string, status *domain.ExpenseStatus) ([]domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE owner_id = $1`
	args := []any{ownerID}
	if status != nil {
		query += expenseStatusClause(*status, 2)
		args = append(args, string(*status))
	}
	query += ` ORDER BY date DESC, created_at DESC;`

	rows, err := r.db().Query(ctx, query, args...)
	if err != nil {
		return nil, storageError("failed to query expenses", err)
	}
	defer rows.Close()

	modelExpenses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Expense, error) {
		var m models.Expense
		err := row.Scan(&m.ID, &m.OwnerID, &m.Description, &m.Amount, &m.Date, &m.Status, &m.CreatedAt)
		return m, err
	})
	if err != nil {
		return nil, storageError("failed to scan expenses", err)
	}
	return mapping.ToDomainExpenseSlice(modelExpenses), nil
}

func (r *PgxExpenseRepository) SumExpenses(ctx context.Context, ownerID string, status *domain.ExpenseStatus) (domain.Totals, error) {
	query := `SELECT COUNT(*), COALESCE(SUM(amount), 0) FROM expenses WHERE owner_id = $1`
	args := []any{ownerID}
	if status != nil {
		query += expenseStatusClause(*status, 2)
		args = append(args, string(*status))
	}

	var totals domain.Totals
	if err := r.db().QueryRow(ctx, query, args...).Scan(&totals.Count, &totals.Sum); err != nil {
		return domain.Totals{}, storageError("failed to sum expenses", err)
	}
	return totals, nil
}

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `
		INSERT INTO expenses (id, owner_id, description, amount, date, status, created_at)
		VALUES ($1, $2, $3, $4, $5::date, $6, $7);
	`
	_, err := r.db().Exec(ctx, query, m.ID, m.OwnerID, m.Description, m.Amount, m.Date, m.Status, m.CreatedAt)
	if err != nil {
		return storageError("failed to insert expense "+m.ID, err)
	}
	return nil
}

func (r *PgxExpenseRepository) DeleteActiveExpense(ctx context.Context, ownerID, expenseID string) error {
	query := `DELETE FROM expenses WHERE owner_id = $1 AND id = $2` + expenseStatusClause(domain.ExpenseActive, 3) + `;`
	tag, err := r.db().Exec(ctx, query, ownerID, expenseID, string(domain.ExpenseActive))
	if err != nil {
		return storageError("failed to delete expense "+expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("active expense", expenseID)
	}
	return nil
}

func (r *PgxExpenseRepository) BulkUpdateExpenseStatus(ctx context.Context, ownerID string, from, to domain.ExpenseStatus) (int64, error) {
	query := `UPDATE expenses SET status = $2 WHERE owner_id = $1` + expenseStatusClause(from, 3) + `;`
	tag, err := r.db().Exec(ctx, query, ownerID, string(to), string(from))
	if err != nil {
		return 0, storageError("failed to bulk update expenses", err)
	}
	return tag.RowsAffected(), nil
}
