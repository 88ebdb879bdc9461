package repository

import (
	"context"
	"errors"

	"lookup-service/internal/domain/billing"
	"lookup-service/internal/infra"
	"lookup-service/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// BalanceRepository implements the balance provider contract against the
// billing schema. It is authoritative; the ledger's session copy is only an
// optimistic mirror.
type BalanceRepository struct {
	db db.DBTX
}

func NewBalanceRepository(db db.DBTX) *BalanceRepository {
	return &BalanceRepository{db: db}
}

const fetchBalancesSQL = `
SELECT plan_balance::text, wallet_balance::text
FROM user_balances
WHERE user_id = $1`

func (r *BalanceRepository) FetchBalances(ctx context.Context, userID uuid.UUID) (billing.Balance, error) {
	var planRaw, walletRaw string
	err := r.db.QueryRow(ctx, fetchBalancesSQL, userID).Scan(&planRaw, &walletRaw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return billing.Balance{}, infra.WrapRepoErr("user balance not found", err, infra.KindNotFound)
		}
		return billing.Balance{}, infra.WrapRepoErr("failed to fetch user balances", err)
	}

	plan, err := decimal.NewFromString(planRaw)
	if err != nil {
		return billing.Balance{}, infra.WrapRepoErr("invalid plan balance value", err)
	}
	wallet, err := decimal.NewFromString(walletRaw)
	if err != nil {
		return billing.Balance{}, infra.WrapRepoErr("invalid wallet balance value", err)
	}

	balance, err := billing.NewBalance(plan, wallet)
	if err != nil {
		return billing.Balance{}, infra.WrapRepoErr("stored balances violate invariants", err)
	}
	return balance, nil
}

const applyDebitSQL = `
UPDATE user_balances
SET plan_balance = $2, wallet_balance = $3, updated_at = now()
WHERE user_id = $1
  AND plan_balance >= $2 AND wallet_balance >= $3`

// ApplyDebit persists the post-debit totals. The guard clauses keep a
// concurrent writer from resurrecting already-spent credit.
func (r *BalanceRepository) ApplyDebit(ctx context.Context, userID uuid.UUID, _ decimal.Decimal, result billing.DebitResult) error {
	tag, err := r.db.Exec(ctx, applyDebitSQL,
		userID,
		result.NewPlan.StringFixed(2),
		result.NewWallet.StringFixed(2),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to persist debit", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("debit rejected by balance provider", nil, infra.KindUpstreamRejected)
	}
	return nil
}
