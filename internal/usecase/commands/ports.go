package commands

import (
	"context"
	"encoding/json"
	"time"

	"lookup-service/internal/domain/billing"
	"lookup-service/internal/domain/document"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Write-side snapshots prevent dependency on read-side query types (CQRS separation)

// RecordSnapshot is a cached document record as served by the record store.
type RecordSnapshot struct {
	Identifier string
	Payload    json.RawMessage
	FetchedAt  time.Time
}

type PricingSnapshot struct {
	OperationType string
	BasePrice     decimal.Decimal
}

type SubscriptionSnapshot struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	DiscountPercent int
	ExpiresAt       *time.Time
}

// NewConsultation is the immutable audit entry for one terminal attempt.
type NewConsultation struct {
	UserID              uuid.UUID
	Identifier          string
	OperationType       string
	Cost                decimal.Decimal
	Status              string
	ResultPayload       json.RawMessage
	PoolUsed            billing.BalancePool
	PollAttempts        int
	NeedsReconciliation bool
	CreatedAt           time.Time
}

// RecordRepository is the narrow record-store contract: lookup by identifier
// on the fast path and after each poll check.
type RecordRepository interface {
	FindByIdentifier(ctx context.Context, identifier document.Number) (*RecordSnapshot, error)
}

type ConsultationRepository interface {
	Create(ctx context.Context, c NewConsultation) (uuid.UUID, error)
}

// EnrichmentDispatcher submits an identifier for asynchronous third-party
// enrichment. There is no synchronous result; eventual availability is
// observed only by re-querying the record store.
type EnrichmentDispatcher interface {
	Submit(ctx context.Context, identifier document.Number) error
}

// InflightRepository guards against a re-submit of the same identifier while a
// previous attempt is still polling, preventing a double charge.
type InflightRepository interface {
	TryAcquire(ctx context.Context, userID uuid.UUID, identifier document.Number, expiresAt time.Time) error
	Release(ctx context.Context, userID uuid.UUID, identifier document.Number) error
}

type PricingRepository interface {
	FindByOperationType(ctx context.Context, operationType string) (*PricingSnapshot, error)
}

type SubscriptionRepository interface {
	FindActiveByUserID(ctx context.Context, userID uuid.UUID, at time.Time) (*SubscriptionSnapshot, error)
}
