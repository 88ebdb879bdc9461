package shared

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"lookup-service/internal/domain/billing"
	"lookup-service/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BalanceProvider is the external balance service contract: one read per
// session plus a reconciliation re-fetch after every debit, and a write that
// persists the post-debit totals.
type BalanceProvider interface {
	FetchBalances(ctx context.Context, userID uuid.UUID) (billing.Balance, error)
	ApplyDebit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, result billing.DebitResult) error
}

// InsufficientFundsError carries the per-pool breakdown so the caller can
// direct the user to a top-up flow with concrete numbers.
type InsufficientFundsError struct {
	Required decimal.Decimal
	Plan     decimal.Decimal
	Wallet   decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: required %s, plan %s, wallet %s",
		e.Required.StringFixed(2), e.Plan.StringFixed(2), e.Wallet.StringFixed(2))
}

// Ledger keeps a per-user in-memory copy of the two balance pools, loaded once
// per session and updated optimistically after each debit. The provider stays
// authoritative; Reconcile drops the local copy and re-fetches.
type Ledger struct {
	provider BalanceProvider

	mu       sync.RWMutex
	sessions map[uuid.UUID]billing.Balance
}

func NewLedger(provider BalanceProvider) *Ledger {
	return &Ledger{
		provider: provider,
		sessions: make(map[uuid.UUID]billing.Balance),
	}
}

// Load fetches both pools from the provider and caches them for the session.
func (l *Ledger) Load(ctx context.Context, userID uuid.UUID) (billing.Balance, error) {
	balance, err := l.provider.FetchBalances(ctx, userID)
	if err != nil {
		return billing.Balance{}, errs.Wrap(err, "failed to fetch balances")
	}

	l.mu.Lock()
	l.sessions[userID] = balance
	l.mu.Unlock()

	return balance, nil
}

// Balances returns the session totals, loading them on first use.
func (l *Ledger) Balances(ctx context.Context, userID uuid.UUID) (billing.Balance, error) {
	l.mu.RLock()
	balance, ok := l.sessions[userID]
	l.mu.RUnlock()
	if ok {
		return balance, nil
	}
	return l.Load(ctx, userID)
}

// CanAfford reports whether plan+wallet covers amount. On a shortfall the
// returned error carries the pool breakdown.
func (l *Ledger) CanAfford(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) error {
	balance, err := l.Balances(ctx, userID)
	if err != nil {
		return err
	}
	if !balance.CanAfford(amount) {
		return errs.Mark(&InsufficientFundsError{
			Required: amount,
			Plan:     balance.Plan,
			Wallet:   balance.Wallet,
		}, errs.ErrInsufficientFunds)
	}
	return nil
}

// Debit consumes amount plan-first, persists the new totals through the
// provider and only then updates the session copy, so a failed remote write
// never leaves the optimistic value ahead of the authoritative one.
func (l *Ledger) Debit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (billing.DebitResult, error) {
	balance, err := l.Balances(ctx, userID)
	if err != nil {
		return billing.DebitResult{}, err
	}

	// A fully discounted charge settles without touching either pool.
	if amount.IsZero() {
		return billing.DebitResult{
			Pool:      billing.PoolNone,
			NewPlan:   balance.Plan,
			NewWallet: balance.Wallet,
		}, nil
	}

	result, err := balance.Debit(amount)
	if err != nil {
		if errors.Is(err, billing.ErrInsufficientFunds) {
			// Defensive second check; the orchestrator verifies affordability first.
			return billing.DebitResult{}, errs.Mark(&InsufficientFundsError{
				Required: amount,
				Plan:     balance.Plan,
				Wallet:   balance.Wallet,
			}, errs.ErrInsufficientFunds)
		}
		return billing.DebitResult{}, errs.Wrap(err, "rejected debit amount")
	}

	if err := l.provider.ApplyDebit(ctx, userID, amount, result); err != nil {
		return billing.DebitResult{}, errs.Wrap(err, "failed to persist debit")
	}

	l.mu.Lock()
	l.sessions[userID] = billing.Balance{Plan: result.NewPlan, Wallet: result.NewWallet}
	l.mu.Unlock()

	return result, nil
}

// Reconcile discards the optimistic session copy and re-fetches from the
// provider, which is treated as authoritative when the two disagree.
func (l *Ledger) Reconcile(ctx context.Context, userID uuid.UUID) (billing.Balance, error) {
	l.mu.Lock()
	delete(l.sessions, userID)
	l.mu.Unlock()

	return l.Load(ctx, userID)
}
