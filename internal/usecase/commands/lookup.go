package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"lookup-service/internal/domain/billing"
	"lookup-service/internal/domain/document"
	"lookup-service/internal/domain/lookup"
	"lookup-service/internal/domain/pricing"
	"lookup-service/internal/infra"
	"lookup-service/internal/pkg/clock"
	"lookup-service/internal/pkg/config"
	"lookup-service/internal/pkg/errs"
	"lookup-service/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Error categories for transport failures, derived from message heuristics.
// They never carry a charge; classification only drives user messaging.
var (
	ErrConnectivity  = errs.New("connectivity failure")
	ErrAuthorization = errs.New("authorization failure")
	ErrUnexpected    = errs.New("unexpected failure")
)

const (
	consultationCompleted = "completed"
	consultationFailed    = "failed"
)

// LookupResult is the terminal outcome of one settled attempt. NotFoundFinal
// is a resolvable outcome, not an error: the absence was confirmed after the
// full poll schedule and no charge was applied.
type LookupResult struct {
	Status           lookup.Status
	ConsultationID   uuid.UUID
	Identifier       string
	Record           json.RawMessage
	Quote            *pricing.Quote
	PoolUsed         billing.BalancePool
	PlanBalance      decimal.Decimal
	WalletBalance    decimal.Decimal
	PollAttemptsUsed int
	// NeedsReconciliation marks a found record whose debit failed; the result
	// is still delivered and the audit row flags the unconfirmed payment.
	NeedsReconciliation bool
}

type LookupCommands interface {
	AttemptLookup(ctx context.Context, rawIdentifier, operationType string, userID uuid.UUID) (*LookupResult, error)
}

type lookupUseCaseImpl struct {
	recordRepo       RecordRepository
	consultationRepo ConsultationRepository
	dispatcher       EnrichmentDispatcher
	inflightRepo     InflightRepository
	pricingEngine    PricingEngine
	ledger           *shared.Ledger
	clock            clock.Clock
	sleeper          clock.Sleeper
	cfg              config.LookupConfig
}

func NewLookupCommands(
	recordRepo RecordRepository,
	consultationRepo ConsultationRepository,
	dispatcher EnrichmentDispatcher,
	inflightRepo InflightRepository,
	pricingEngine PricingEngine,
	ledger *shared.Ledger,
	clock clock.Clock,
	sleeper clock.Sleeper,
	cfg config.LookupConfig,
) LookupCommands {
	return &lookupUseCaseImpl{
		recordRepo:       recordRepo,
		consultationRepo: consultationRepo,
		dispatcher:       dispatcher,
		inflightRepo:     inflightRepo,
		pricingEngine:    pricingEngine,
		ledger:           ledger,
		clock:            clock,
		sleeper:          sleeper,
		cfg:              cfg,
	}
}

// AttemptLookup runs the settlement flow end to end: validate, price, check
// affordability, local lookup, dispatch + bounded polling on a miss, debit
// exactly once on a hit, persist the audit record. Per invocation it performs
// at most one dispatch, two poll checks, one debit and one record write.
func (u *lookupUseCaseImpl) AttemptLookup(
	ctx context.Context,
	rawIdentifier, operationType string,
	userID uuid.UUID,
) (*LookupResult, error) {
	identifier, err := document.Parse(rawIdentifier)
	if err != nil {
		// No balance or network activity for malformed input.
		return nil, errs.Mark(err, errs.ErrInvalidIdentifier)
	}

	attempt := lookup.NewAttempt(identifier, operationType, u.clock.Now())

	if err := u.acquireInflight(ctx, userID, identifier); err != nil {
		return nil, err
	}
	defer u.releaseInflight(userID, identifier)

	quote, err := u.pricingEngine.Resolve(ctx, operationType, userID)
	if err != nil {
		return nil, err
	}
	attempt.Advance(lookup.StatePricingResolved)

	if err := u.ledger.CanAfford(ctx, userID, quote.FinalPrice); err != nil {
		// Terminates before any lookup or dispatch: an attempt the user
		// cannot afford must trigger no external side effects.
		return nil, err
	}
	attempt.Advance(lookup.StateBalanceChecked)

	record, err := u.resolveRecord(ctx, attempt, identifier)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return u.settleNotFound(ctx, attempt, userID)
	}

	return u.settleFound(ctx, attempt, userID, quote, record)
}

// resolveRecord runs the local fast path and, on a miss, the dispatch + poll
// slow path. A nil record with nil error means confirmed absence after the
// full schedule.
func (u *lookupUseCaseImpl) resolveRecord(
	ctx context.Context,
	attempt *lookup.Attempt,
	identifier document.Number,
) (*RecordSnapshot, error) {
	attempt.Advance(lookup.StateLocalLookup)
	record, err := u.findRecord(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if record != nil {
		return record, nil
	}

	attempt.Advance(lookup.StateDispatched)
	if err := u.dispatcher.Submit(ctx, identifier); err != nil {
		// Nothing to poll for when the dispatcher rejects the identifier.
		return nil, errs.Mark(err, errs.ErrDispatchFailed)
	}

	waits := []struct {
		wait       time.Duration
		waitState  lookup.State
		checkState lookup.State
	}{
		{u.cfg.FirstPollWait, lookup.StatePollWait1, lookup.StatePollCheck1},
		{u.cfg.SecondPollWait, lookup.StatePollWait2, lookup.StatePollCheck2},
	}

	for _, p := range waits {
		attempt.Advance(p.waitState)
		if err := u.sleeper.Sleep(ctx, p.wait); err != nil {
			return nil, errs.Mark(errs.Wrap(err, "poll wait aborted"), ErrUnexpected)
		}

		attempt.Advance(p.checkState)
		attempt.RecordPoll()
		record, err = u.findRecord(ctx, identifier)
		if err != nil {
			return nil, err
		}
		if record != nil {
			return record, nil
		}
	}

	return nil, nil
}

func (u *lookupUseCaseImpl) findRecord(ctx context.Context, identifier document.Number) (*RecordSnapshot, error) {
	record, err := u.recordRepo.FindByIdentifier(ctx, identifier)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, classifyTransport(err)
	}
	return record, nil
}

// settleFound debits before writing the audit record. A debit failure after a
// successful find is non-fatal: the user still gets the record, the audit row
// is flagged for backend reconciliation.
func (u *lookupUseCaseImpl) settleFound(
	ctx context.Context,
	attempt *lookup.Attempt,
	userID uuid.UUID,
	quote *pricing.Quote,
	record *RecordSnapshot,
) (*LookupResult, error) {
	attempt.Finish(u.clock.Now())

	result := &LookupResult{
		Status:           lookup.StatusFound,
		Identifier:       record.Identifier,
		Record:           record.Payload,
		Quote:            quote,
		PoolUsed:         billing.PoolNone,
		PollAttemptsUsed: attempt.PollAttemptsUsed,
	}

	debit, err := u.ledger.Debit(ctx, userID, quote.FinalPrice)
	if err != nil {
		slog.Error("debit failed after successful find, flagging for reconciliation",
			"user_id", userID, "identifier", attempt.Identifier.Masked(), "error", err.Error())
		result.NeedsReconciliation = true
	} else {
		result.PoolUsed = debit.Pool
		result.PlanBalance = debit.NewPlan
		result.WalletBalance = debit.NewWallet
	}

	consultationID, err := u.consultationRepo.Create(ctx, NewConsultation{
		UserID:              userID,
		Identifier:          string(attempt.Identifier),
		OperationType:       attempt.OperationType,
		Cost:                quote.FinalPrice,
		Status:              consultationCompleted,
		ResultPayload:       record.Payload,
		PoolUsed:            result.PoolUsed,
		PollAttempts:        attempt.PollAttemptsUsed,
		NeedsReconciliation: result.NeedsReconciliation,
		CreatedAt:           u.clock.Now(),
	})
	if err != nil {
		// Denying a found record over an audit write hiccup would be worse
		// than a missing row; the debit already went through.
		slog.Error("failed to persist consultation record",
			"user_id", userID, "identifier", attempt.Identifier.Masked(), "error", err.Error())
	} else {
		result.ConsultationID = consultationID
	}

	u.reconcile(ctx, userID, result)

	return result, nil
}

// settleNotFound writes a cost-zero audit row for visibility; no balance is
// ever consumed for a confirmed miss.
func (u *lookupUseCaseImpl) settleNotFound(
	ctx context.Context,
	attempt *lookup.Attempt,
	userID uuid.UUID,
) (*LookupResult, error) {
	attempt.Finish(u.clock.Now())

	result := &LookupResult{
		Status:           lookup.StatusNotFoundFinal,
		Identifier:       string(attempt.Identifier),
		PoolUsed:         billing.PoolNone,
		PollAttemptsUsed: attempt.PollAttemptsUsed,
	}

	consultationID, err := u.consultationRepo.Create(ctx, NewConsultation{
		UserID:        userID,
		Identifier:    string(attempt.Identifier),
		OperationType: attempt.OperationType,
		Cost:          decimal.Zero,
		Status:        consultationFailed,
		PoolUsed:      billing.PoolNone,
		PollAttempts:  attempt.PollAttemptsUsed,
		CreatedAt:     u.clock.Now(),
	})
	if err != nil {
		slog.Warn("failed to persist not-found consultation record",
			"user_id", userID, "identifier", attempt.Identifier.Masked(), "error", err.Error())
	} else {
		result.ConsultationID = consultationID
	}

	return result, nil
}

// reconcile re-fetches the authoritative balances after a debit. Best effort:
// the optimistic session value already reflects the charge.
func (u *lookupUseCaseImpl) reconcile(ctx context.Context, userID uuid.UUID, result *LookupResult) {
	if result.NeedsReconciliation {
		return
	}
	balance, err := u.ledger.Reconcile(ctx, userID)
	if err != nil {
		slog.Warn("balance reconciliation fetch failed", "user_id", userID, "error", err.Error())
		return
	}
	result.PlanBalance = balance.Plan
	result.WalletBalance = balance.Wallet
}

func (u *lookupUseCaseImpl) acquireInflight(ctx context.Context, userID uuid.UUID, identifier document.Number) error {
	expiresAt := u.clock.Now().Add(u.cfg.InflightTTL)
	if err := u.inflightRepo.TryAcquire(ctx, userID, identifier, expiresAt); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return errs.Mark(err, errs.ErrLookupInProgress)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *lookupUseCaseImpl) releaseInflight(userID uuid.UUID, identifier document.Number) {
	// Release must survive caller cancellation mid-poll.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := u.inflightRepo.Release(ctx, userID, identifier); err != nil {
		slog.Warn("failed to release in-flight lookup guard",
			"user_id", userID, "identifier", identifier.Masked(), "error", err.Error())
	}
}

// classifyTransport sorts an unexpected failure into connectivity,
// authorization or generic buckets for user messaging. The attempt always
// terminates without charging.
func classifyTransport(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "connection refused"),
		strings.Contains(msg, "no such host"),
		strings.Contains(msg, "timeout"),
		strings.Contains(msg, "network"):
		return errs.Mark(err, ErrConnectivity)
	case strings.Contains(msg, "unauthorized"),
		strings.Contains(msg, "forbidden"),
		strings.Contains(msg, "invalid token"):
		return errs.Mark(err, ErrAuthorization)
	default:
		return errs.Mark(err, ErrUnexpected)
	}
}
