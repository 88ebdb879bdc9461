package response

import (
	"encoding/json"

	"lookup-service/internal/usecase/commands"

	"github.com/google/uuid"
)

type LookupResponse struct {
	Status              string          `json:"status"`
	ConsultationID      *uuid.UUID      `json:"consultation_id,omitempty"`
	Identifier          string          `json:"identifier"`
	Record              json.RawMessage `json:"record,omitempty"`
	BasePrice           string          `json:"base_price,omitempty"`
	DiscountPercent     int             `json:"discount_percent"`
	FinalPrice          string          `json:"final_price,omitempty"`
	BalancePoolUsed     string          `json:"balance_pool_used"`
	PlanBalance         string          `json:"plan_balance,omitempty"`
	WalletBalance       string          `json:"wallet_balance,omitempty"`
	PollAttemptsUsed    int             `json:"poll_attempts_used"`
	NeedsReconciliation bool            `json:"needs_reconciliation,omitempty"`
}

func FromLookupResult(result *commands.LookupResult) *LookupResponse {
	resp := &LookupResponse{
		Status:           string(result.Status),
		Identifier:       result.Identifier,
		Record:           result.Record,
		BalancePoolUsed:  string(result.PoolUsed),
		PollAttemptsUsed: result.PollAttemptsUsed,
	}

	if result.ConsultationID != uuid.Nil {
		id := result.ConsultationID
		resp.ConsultationID = &id
	}
	if result.Quote != nil {
		resp.BasePrice = result.Quote.BasePrice.StringFixed(2)
		resp.DiscountPercent = result.Quote.DiscountPercent
		resp.FinalPrice = result.Quote.FinalPrice.StringFixed(2)
		resp.PlanBalance = result.PlanBalance.StringFixed(2)
		resp.WalletBalance = result.WalletBalance.StringFixed(2)
		resp.NeedsReconciliation = result.NeedsReconciliation
	}

	return resp
}
