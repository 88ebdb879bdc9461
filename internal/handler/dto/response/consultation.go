package response

import (
	"encoding/json"
	"time"

	"lookup-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type ConsultationResponse struct {
	ID                  uuid.UUID       `json:"id"`
	Identifier          string          `json:"identifier"`
	OperationType       string          `json:"operation_type"`
	Cost                string          `json:"cost"`
	Status              string          `json:"status"`
	ResultPayload       json.RawMessage `json:"result_payload,omitempty"`
	BalancePoolUsed     string          `json:"balance_pool_used"`
	PollAttempts        int32           `json:"poll_attempts"`
	NeedsReconciliation bool            `json:"needs_reconciliation,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
}

func FromConsultationView(view *queries.ConsultationView) *ConsultationResponse {
	return &ConsultationResponse{
		ID:                  view.ID,
		Identifier:          view.Identifier,
		OperationType:       view.OperationType,
		Cost:                view.Cost.StringFixed(2),
		Status:              view.Status,
		ResultPayload:       view.ResultPayload,
		BalancePoolUsed:     view.PoolUsed,
		PollAttempts:        view.PollAttempts,
		NeedsReconciliation: view.NeedsReconciliation,
		CreatedAt:           view.CreatedAt,
	}
}

type ConsultationListResponse struct {
	ID              uuid.UUID `json:"id"`
	Identifier      string    `json:"identifier"`
	OperationType   string    `json:"operation_type"`
	Cost            string    `json:"cost"`
	Status          string    `json:"status"`
	BalancePoolUsed string    `json:"balance_pool_used"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromConsultationListItem(item *queries.ConsultationListItem) *ConsultationListResponse {
	return &ConsultationListResponse{
		ID:              item.ID,
		Identifier:      item.Identifier,
		OperationType:   item.OperationType,
		Cost:            item.Cost.StringFixed(2),
		Status:          item.Status,
		BalancePoolUsed: item.PoolUsed,
		CreatedAt:       item.CreatedAt,
	}
}
