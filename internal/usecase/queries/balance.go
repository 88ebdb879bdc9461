package queries

import (
	"context"

	"lookup-service/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BalanceView struct {
	PlanBalance   decimal.Decimal `json:"plan_balance"`
	WalletBalance decimal.Decimal `json:"wallet_balance"`
	Total         decimal.Decimal `json:"total"`
}

type BalanceQueries interface {
	GetByUser(ctx context.Context, userID uuid.UUID) (*BalanceView, error)
}

type balanceQueriesImpl struct {
	ledger *shared.Ledger
}

func NewBalanceQueries(ledger *shared.Ledger) BalanceQueries {
	return &balanceQueriesImpl{ledger: ledger}
}

func (q *balanceQueriesImpl) GetByUser(ctx context.Context, userID uuid.UUID) (*BalanceView, error) {
	balance, err := q.ledger.Balances(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &BalanceView{
		PlanBalance:   balance.Plan,
		WalletBalance: balance.Wallet,
		Total:         balance.Total(),
	}, nil
}
