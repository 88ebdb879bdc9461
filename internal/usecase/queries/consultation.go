package queries

import (
	"context"
	"encoding/json"
	"time"

	"lookup-service/internal/infra"
	"lookup-service/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)
type ConsultationView struct {
	ID                  uuid.UUID       `json:"id"`
	UserID              uuid.UUID       `json:"user_id"`
	Identifier          string          `json:"identifier"`
	OperationType       string          `json:"operation_type"`
	Cost                decimal.Decimal `json:"cost"`
	Status              string          `json:"status"`
	ResultPayload       json.RawMessage `json:"result_payload,omitempty"`
	PoolUsed            string          `json:"balance_pool_used"`
	PollAttempts        int32           `json:"poll_attempts"`
	NeedsReconciliation bool            `json:"needs_reconciliation"`
	CreatedAt           time.Time       `json:"created_at"`
}

type ConsultationListItem struct {
	ID            uuid.UUID       `json:"id"`
	Identifier    string          `json:"identifier"`
	OperationType string          `json:"operation_type"`
	Cost          decimal.Decimal `json:"cost"`
	Status        string          `json:"status"`
	PoolUsed      string          `json:"balance_pool_used"`
	CreatedAt     time.Time       `json:"created_at"`
}

type ConsultationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ConsultationView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int32) ([]*ConsultationListItem, error)
}

type ConsultationQueries interface {
	GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*ConsultationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*ConsultationListItem, error)
}

type consultationQueriesImpl struct {
	store ConsultationReadStore
}

func NewConsultationQueries(store ConsultationReadStore) ConsultationQueries {
	return &consultationQueriesImpl{store: store}
}

func (q *consultationQueriesImpl) GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*ConsultationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrConsultationNotFound)
		}
		return nil, errs.Wrap(err, "failed to find consultation")
	}

	// History is private to its owner.
	if view.UserID != actor {
		return nil, errs.ErrConsultationDenied
	}

	return view, nil
}

func (q *consultationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*ConsultationListItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	items, err := q.store.FindByUserID(ctx, userID, int32(limit), int32(offset))
	if err != nil {
		return nil, errs.Wrap(err, "failed to list consultations")
	}
	return items, nil
}
