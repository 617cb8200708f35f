package pgsql

import (
	"context"

	"github.com/SscSPs/workshop_manager_app/internal/apperrors"
	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	portsrepo "github.com/SscSPs/workshop_manager_app/internal/core/ports/repositories"
	"github.com/SscSPs/workshop_manager_app/internal/models"
	"github.com/SscSPs/workshop_manager_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxWithdrawalRepository struct {
	BaseRepository
}

func newPgxWithdrawalRepository(pool *pgxpool.Pool) *PgxWithdrawalRepository {
	return &PgxWithdrawalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.WithdrawalRepositoryFacade = (*PgxWithdrawalRepository)(nil)

func (r *PgxWithdrawalRepository) SaveWithdrawal(ctx context.Context, withdrawal domain.Withdrawal) error {
	m := mapping.ToModelWithdrawal(withdrawal)
	query := `
		INSERT INTO withdrawals (id, owner_id, amount, party, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	if _, err := r.db().Exec(ctx, query, m.ID, m.OwnerID, m.Amount, m.Party, m.Description, m.CreatedAt); err != nil {
		return storageError("failed to insert withdrawal "+m.ID, err)
	}
	return nil
}

func (r *PgxWithdrawalRepository) ListWithdrawals(ctx context.Context, ownerID string) ([]domain.Withdrawal, error) {
	query := `
		SELECT id, owner_id, amount, party, description, created_at
		FROM withdrawals WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC;
	`
	rows, err := r.db().Query(ctx, query, ownerID)
	if err != nil {
		return nil, storageError("failed to query withdrawals", err)
	}
	defer rows.Close()

	modelWithdrawals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Withdrawal, error) {
		var m models.Withdrawal
		err := row.Scan(&m.ID, &m.OwnerID, &m.Amount, &m.Party, &m.Description, &m.CreatedAt)
		return m, err
	})
	if err != nil {
		return nil, storageError("failed to scan withdrawals", err)
	}
	return mapping.ToDomainWithdrawalSlice(modelWithdrawals), nil
}

func (r *PgxWithdrawalRepository) SumWithdrawalsByParty(ctx context.Context, ownerID string) (domain.PartyTotals, error) {
	query := `SELECT party, COALESCE(SUM(amount), 0) FROM withdrawals WHERE owner_id = $1 GROUP BY party;`
	rows, err := r.db().Query(ctx, query, ownerID)
	if err != nil {
		return domain.PartyTotals{}, storageError("failed to sum withdrawals", err)
	}
	defer rows.Close()

	var totals domain.PartyTotals
	for rows.Next() {
		var party string
		var sum decimal.Decimal
		if err := rows.Scan(&party, &sum); err != nil {
			return domain.PartyTotals{}, storageError("failed to scan withdrawal totals", err)
		}
		totals.Add(domain.Party(party), sum)
	}
	if err := rows.Err(); err != nil {
		return domain.PartyTotals{}, storageError("failed to iterate withdrawal totals", err)
	}
	return totals, nil
}

func (r *PgxWithdrawalRepository) DeleteWithdrawal(ctx context.Context, ownerID, withdrawalID string) error {
	tag, err := r.db().Exec(ctx, `DELETE FROM withdrawals WHERE owner_id = $1 AND id = $2;`, ownerID, withdrawalID)
	if err != nil {
		return storageError("failed to delete withdrawal "+withdrawalID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("withdrawal", withdrawalID)
	}
	return nil
}
