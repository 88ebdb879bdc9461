package billing

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInsufficientFunds = errors.New("combined balance below requested amount")
	ErrNegativeAmount    = errors.New("debit amount must be positive")
	ErrNegativeBalance   = errors.New("balance pools must not be negative")
)

// BalancePool identifies which credit pool covered a charge.
type BalancePool string

const (
	PoolPlan   BalancePool = "plan"
	PoolWallet BalancePool = "wallet"
	PoolMixed  BalancePool = "mixed"
	// PoolNone marks audit records that carried no charge.
	PoolNone BalancePool = "none"
)

// Balance holds the two prepaid pools of one user. Plan credit is a
// use-it-or-lose-it subscription allotment and is always consumed before
// wallet credit, which the user purchased directly.
type Balance struct {
	Plan   decimal.Decimal
	Wallet decimal.Decimal
}

func NewBalance(plan, wallet decimal.Decimal) (Balance, error) {
	if plan.IsNegative() || wallet.IsNegative() {
		return Balance{}, ErrNegativeBalance
	}
	return Balance{Plan: plan, Wallet: wallet}, nil
}

func (b Balance) Total() decimal.Decimal {
	return b.Plan.Add(b.Wallet)
}

func (b Balance) CanAfford(amount decimal.Decimal) bool {
	return b.Total().GreaterThanOrEqual(amount)
}

type DebitResult struct {
	Pool      BalancePool
	NewPlan   decimal.Decimal
	NewWallet decimal.Decimal
}

// Debit consumes amount following the strict plan-first order. A single debit
// may span both pools, but neither pool ever goes below zero.
func (b Balance) Debit(amount decimal.Decimal) (DebitResult, error) {
	if !amount.IsPositive() {
		return DebitResult{}, ErrNegativeAmount
	}
	if !b.CanAfford(amount) {
		return DebitResult{}, ErrInsufficientFunds
	}

	switch {
	case b.Plan.GreaterThanOrEqual(amount):
		return DebitResult{
			Pool:      PoolPlan,
			NewPlan:   b.Plan.Sub(amount),
			NewWallet: b.Wallet,
		}, nil
	case b.Plan.IsPositive():
		return DebitResult{
			Pool:      PoolMixed,
			NewPlan:   decimal.Zero,
			NewWallet: b.Wallet.Sub(amount.Sub(b.Plan)),
		}, nil
	default:
		return DebitResult{
			Pool:      PoolWallet,
			NewPlan:   b.Plan,
			NewWallet: b.Wallet.Sub(amount),
		}, nil
	}
}
