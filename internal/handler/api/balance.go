package api

import (
	"net/http"

	resdto "lookup-service/internal/handler/dto/response"
	"lookup-service/internal/handler/httperr"
	"lookup-service/internal/handler/middleware"
	"lookup-service/internal/pkg/errs"
	"lookup-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BalanceHandler struct {
	balanceQueries queries.BalanceQueries
}

func NewBalanceHandler(balanceQueries queries.BalanceQueries) *BalanceHandler {
	return &BalanceHandler{
		balanceQueries: balanceQueries,
	}
}

// @Summary Get current balances
// @Description Current plan and wallet balances for the authenticated user
// @Tags balance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BalanceResponse
// @Failure 401 {object} httperr.Response
// @Router /balance [get]
func (h *BalanceHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errs.New("user id missing from context"), "Internal server error", nil)
		return
	}

	view, err := h.balanceQueries.GetByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBalanceView(view))
}
