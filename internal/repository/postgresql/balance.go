package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/leaveplan/leaveplan-backend-go/internal/domain/balance"
	"github.com/leaveplan/leaveplan-backend-go/internal/pkg/database"
)

// The ledger is a single row; id is fixed at 1 and enforced by the schema.
const balanceRowID = 1

type balanceRepositoryImpl struct {
	db *database.DB
}

func NewBalanceRepository(db *database.DB) balance.BalanceRepository {
	return &balanceRepositoryImpl{db: db}
}

func (r *balanceRepositoryImpl) Get(ctx context.Context) (balance.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT earned, sick, casual, updated_at
		FROM leave_balances
		WHERE id = $1
	`

	var b balance.Balance
	err := q.QueryRow(ctx, query, balanceRowID).Scan(
		&b.Earned,
		&b.Sick,
		&b.Casual,
		&b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return balance.Balance{}, balance.ErrBalanceNotFound
		}
		return balance.Balance{}, err
	}

	return b, nil
}

func (r *balanceRepositoryImpl) Save(ctx context.Context, b balance.Balance) (balance.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_balances (id, earned, sick, casual, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (id) DO UPDATE
		SET earned = EXCLUDED.earned,
		    sick = EXCLUDED.sick,
		    casual = EXCLUDED.casual,
		    updated_at = NOW()
		RETURNING earned, sick, casual, updated_at
	`

	var saved balance.Balance
	err := q.QueryRow(ctx, query, balanceRowID, b.Earned, b.Sick, b.Casual).Scan(
		&saved.Earned,
		&saved.Sick,
		&saved.Casual,
		&saved.UpdatedAt,
	)
	if err != nil {
		return balance.Balance{}, err
	}

	return saved, nil
}
