package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/SscSPs/workshop_manager_app/internal/apperrors"
	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	portsrepo "github.com/SscSPs/workshop_manager_app/internal/core/ports/repositories"
	"github.com/SscSPs/workshop_manager_app/internal/models"
	"github.com/SscSPs/workshop_manager_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const closedPeriodColumns = `id, owner_id, total_services, total_value, total_expenses, net_total,
	to_char(period_start, 'YYYY-MM-DD'), to_char(period_end, 'YYYY-MM-DD'), created_at`

type PgxClosedPeriodRepository struct {
	BaseRepository
}

func newPgxClosedPeriodRepository(pool *pgxpool.Pool) *PgxClosedPeriodRepository {
	return &PgxClosedPeriodRepository{BaseRepository: BaseRepository{Pool: pool}}
}

func (r *PgxClosedPeriodRepository) withTx(tx pgx.Tx) *PgxClosedPeriodRepository {
	return &PgxClosedPeriodRepository{BaseRepository: BaseRepository{Pool: r.Pool, tx: tx}}
}

var _ portsrepo.ClosedPeriodRepositoryFacade = (*PgxClosedPeriodRepository)(nil)

func scanClosedPeriod(row pgx.Row) (models.ClosedPeriod, error) {
	var m models.ClosedPeriod
	err := row.Scan(&m.ID, &m.OwnerID, &m.TotalServices, &m.TotalValue, &m.TotalExpenses, &m.NetTotal,
		&m.PeriodStart, &m.PeriodEnd, &m.CreatedAt)
	return m, err
}

func (r *PgxClosedPeriodRepository) SaveClosedPeriod(ctx context.Context, period domain.ClosedPeriod) error {
	m := mapping.ToModelClosedPeriod(period)
	query := `
		INSERT INTO closed_periods (id, owner_id, total_services, total_value, total_expenses, net_total, period_start, period_end, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7::date, $8::date, $9);
	`
	_, err := r.db().Exec(ctx, query, m.ID, m.OwnerID, m.TotalServices, m.TotalValue, m.TotalExpenses, m.NetTotal,
		m.PeriodStart, m.PeriodEnd, m.CreatedAt)
	if err != nil {
		return storageError("failed to insert closed period "+m.ID, err)
	}
	return nil
}

func (r *PgxClosedPeriodRepository) FindClosedPeriodByID(ctx context.Context, ownerID, periodID string) (*domain.ClosedPeriod, error) {
	query := `SELECT ` + closedPeriodColumns + ` FROM closed_periods WHERE owner_id = $1 AND id = $2;`
	m, err := scanClosedPeriod(r.db().QueryRow(ctx, query, ownerID, periodID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("closed period", periodID)
		}
		return nil, storageError("failed to find closed period "+periodID, err)
	}
	period := mapping.ToDomainClosedPeriod(m)
	return &period, nil
}

func (r *PgxClosedPeriodRepository) ListClosedPeriods(ctx context.Context, ownerID string, limit int, cursor *domain.PageCursor) ([]domain.ClosedPeriod, error) {
	query := `SELECT ` + closedPeriodColumns + ` FROM closed_periods WHERE owner_id = $1`
	args := []any{ownerID}
	if cursor != nil {
		query += ` AND (created_at, id) < ($2, $3)`
		args = append(args, cursor.CreatedAt, cursor.ID)
	}
	query += ` ORDER BY created_at DESC, id DESC`
	if limit > 0 {
		args = append(args, limit)
		query += ` LIMIT $` + strconv.Itoa(len(args))
	}

	rows, err := r.db().Query(ctx, query+";", args...)
	if err != nil {
		return nil, storageError("failed to query closed periods", err)
	}
	defer rows.Close()

	modelPeriods, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ClosedPeriod, error) {
		return scanClosedPeriod(row)
	})
	if err != nil {
		return nil, storageError("failed to scan closed periods", err)
	}
	return mapping.ToDomainClosedPeriodSlice(modelPeriods), nil
}
