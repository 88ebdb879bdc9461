package response

import (
	"lookup-service/internal/usecase/queries"
)

type BalanceResponse struct {
	PlanBalance   string `json:"plan_balance"`
	WalletBalance string `json:"wallet_balance"`
	Total         string `json:"total"`
}

func FromBalanceView(view *queries.BalanceView) *BalanceResponse {
	return &BalanceResponse{
		PlanBalance:   view.PlanBalance.StringFixed(2),
		WalletBalance: view.WalletBalance.StringFixed(2),
		Total:         view.Total.StringFixed(2),
	}
}
