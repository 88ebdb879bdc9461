//go:build unit

package shared_test

import (
	"context"
	"errors"
	"testing"

	"lookup-service/internal/domain/billing"
	"lookup-service/internal/pkg/errs"
	"lookup-service/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type stubProvider struct {
	plan, wallet decimal.Decimal
	fetchCalls   int
	fetchErr     error
	debitCalls   int
	debitErr     error
	lastDebit    billing.DebitResult
}

func (p *stubProvider) FetchBalances(_ context.Context, _ uuid.UUID) (billing.Balance, error) {
	p.fetchCalls++
	if p.fetchErr != nil {
		return billing.Balance{}, p.fetchErr
	}
	return billing.NewBalance(p.plan, p.wallet)
}

func (p *stubProvider) ApplyDebit(_ context.Context, _ uuid.UUID, _ decimal.Decimal, result billing.DebitResult) error {
	p.debitCalls++
	if p.debitErr != nil {
		return p.debitErr
	}
	p.lastDebit = result
	p.plan = result.NewPlan
	p.wallet = result.NewWallet
	return nil
}

func TestLedger_BalancesCachesPerSession(t *testing.T) {
	provider := &stubProvider{plan: d("3.00"), wallet: d("10.00")}
	ledger := shared.NewLedger(provider)
	userID := uuid.New()

	first, err := ledger.Balances(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, first.Plan.Equal(d("3.00")))

	// Second read must hit the session copy, not the provider.
	_, err = ledger.Balances(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 1, provider.fetchCalls)
}

func TestLedger_CanAfford(t *testing.T) {
	provider := &stubProvider{plan: d("3.00"), wallet: d("1.50")}
	ledger := shared.NewLedger(provider)
	userID := uuid.New()

	require.NoError(t, ledger.CanAfford(context.Background(), userID, d("4.50")))

	err := ledger.CanAfford(context.Background(), userID, d("4.51"))
	require.ErrorIs(t, err, errs.ErrInsufficientFunds)

	var fundsErr *shared.InsufficientFundsError
	require.True(t, errors.As(err, &fundsErr))
	assert.True(t, fundsErr.Required.Equal(d("4.51")))
	assert.True(t, fundsErr.Plan.Equal(d("3.00")))
	assert.True(t, fundsErr.Wallet.Equal(d("1.50")))
}

func TestLedger_DebitPersistsThenUpdatesSession(t *testing.T) {
	provider := &stubProvider{plan: d("3.00"), wallet: d("10.00")}
	ledger := shared.NewLedger(provider)
	userID := uuid.New()

	result, err := ledger.Debit(context.Background(), userID, d("5.00"))
	require.NoError(t, err)

	assert.Equal(t, billing.PoolMixed, result.Pool)
	assert.True(t, result.NewPlan.IsZero())
	assert.True(t, result.NewWallet.Equal(d("8.00")))
	assert.Equal(t, 1, provider.debitCalls)

	// Session copy reflects the debit without another fetch.
	balance, err := ledger.Balances(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, balance.Wallet.Equal(d("8.00")))
	assert.Equal(t, 1, provider.fetchCalls)
}

func TestLedger_DebitFailedWriteKeepsSessionIntact(t *testing.T) {
	provider := &stubProvider{plan: d("3.00"), wallet: d("10.00")}
	ledger := shared.NewLedger(provider)
	userID := uuid.New()

	_, err := ledger.Balances(context.Background(), userID)
	require.NoError(t, err)

	provider.debitErr = errors.New("balance service unavailable")
	_, err = ledger.Debit(context.Background(), userID, d("5.00"))
	require.Error(t, err)

	// The optimistic copy must not run ahead of the authoritative value.
	balance, err := ledger.Balances(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, balance.Plan.Equal(d("3.00")))
	assert.True(t, balance.Wallet.Equal(d("10.00")))
}

func TestLedger_DebitZeroAmountSkipsProvider(t *testing.T) {
	provider := &stubProvider{plan: d("3.00"), wallet: d("10.00")}
	ledger := shared.NewLedger(provider)

	result, err := ledger.Debit(context.Background(), uuid.New(), decimal.Zero)
	require.NoError(t, err)

	// A fully discounted charge is a no-op settlement, not a shortfall.
	assert.Equal(t, billing.PoolNone, result.Pool)
	assert.True(t, result.NewPlan.Equal(d("3.00")))
	assert.True(t, result.NewWallet.Equal(d("10.00")))
	assert.Equal(t, 0, provider.debitCalls)
}

func TestLedger_DebitNegativeAmountIsNotAShortfall(t *testing.T) {
	provider := &stubProvider{plan: d("3.00"), wallet: d("10.00")}
	ledger := shared.NewLedger(provider)

	_, err := ledger.Debit(context.Background(), uuid.New(), d("-1.00"))
	require.Error(t, err)
	assert.ErrorIs(t, err, billing.ErrNegativeAmount)
	assert.NotErrorIs(t, err, errs.ErrInsufficientFunds)
	assert.Equal(t, 0, provider.debitCalls)
}

func TestLedger_DebitInsufficientIsDefensive(t *testing.T) {
	provider := &stubProvider{plan: d("1.00"), wallet: d("1.00")}
	ledger := shared.NewLedger(provider)

	_, err := ledger.Debit(context.Background(), uuid.New(), d("5.00"))
	require.ErrorIs(t, err, errs.ErrInsufficientFunds)
	assert.Equal(t, 0, provider.debitCalls)
}

func TestLedger_ReconcileRefetchesAuthoritativeValue(t *testing.T) {
	provider := &stubProvider{plan: d("3.00"), wallet: d("10.00")}
	ledger := shared.NewLedger(provider)
	userID := uuid.New()

	_, err := ledger.Balances(context.Background(), userID)
	require.NoError(t, err)

	// Authoritative balances drift behind our back.
	provider.plan = d("0.50")
	provider.wallet = d("7.25")

	balance, err := ledger.Reconcile(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, balance.Plan.Equal(d("0.50")))
	assert.True(t, balance.Wallet.Equal(d("7.25")))
	assert.Equal(t, 2, provider.fetchCalls)
}
