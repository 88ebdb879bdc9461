package lookup

import (
	"time"

	"lookup-service/internal/domain/document"
)

// State is one step of the settlement flow. Transitions run strictly in order;
// every network boundary is a separate state so failures map to a single step.
type State string

const (
	StateIdle            State = "idle"
	StateValidating      State = "validating"
	StatePricingResolved State = "pricing_resolved"
	StateBalanceChecked  State = "balance_checked"
	StateLocalLookup     State = "local_lookup"
	StateDispatched      State = "dispatched"
	StatePollWait1       State = "poll_wait_1"
	StatePollCheck1      State = "poll_check_1"
	StatePollWait2       State = "poll_wait_2"
	StatePollCheck2      State = "poll_check_2"
)

// Status is a terminal outcome of one attempt.
type Status string

const (
	StatusFound               Status = "found"
	StatusNotFoundFinal       Status = "not_found_final"
	StatusInvalidIdentifier   Status = "invalid_identifier"
	StatusInsufficientBalance Status = "insufficient_balance"
	StatusDispatchFailed      Status = "dispatch_failed"
	StatusUnexpectedError     Status = "unexpected_error"
)

// MaxPollChecks bounds the retry schedule after an enrichment dispatch. The
// external process has no completion callback, so the UI must not block past
// two timed re-checks.
const MaxPollChecks = 2

// Attempt tracks one in-flight settlement. It is never persisted on its own;
// a terminal attempt folds into the consultation record.
type Attempt struct {
	Identifier       document.Number
	OperationType    string
	State            State
	StartedAt        time.Time
	FinishedAt       time.Time
	PollAttemptsUsed int
}

func NewAttempt(identifier document.Number, operationType string, startedAt time.Time) *Attempt {
	return &Attempt{
		Identifier:    identifier,
		OperationType: operationType,
		State:         StateValidating,
		StartedAt:     startedAt,
	}
}

func (a *Attempt) Advance(s State) {
	a.State = s
}

func (a *Attempt) RecordPoll() {
	a.PollAttemptsUsed++
}

func (a *Attempt) Finish(at time.Time) {
	a.FinishedAt = at
}
