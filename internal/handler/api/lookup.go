package api

import (
	"errors"
	"net/http"

	"lookup-service/internal/domain/lookup"
	reqdto "lookup-service/internal/handler/dto/request"
	resdto "lookup-service/internal/handler/dto/response"
	"lookup-service/internal/handler/httperr"
	"lookup-service/internal/handler/middleware"
	"lookup-service/internal/pkg/errs"
	"lookup-service/internal/usecase/commands"
	"lookup-service/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type LookupHandler struct {
	lookupCommands commands.LookupCommands
}

func NewLookupHandler(lookupCommands commands.LookupCommands) *LookupHandler {
	return &LookupHandler{
		lookupCommands: lookupCommands,
	}
}

// @Summary Attempt document lookup
// @Description Price, settle and resolve a document identifier; dispatches to enrichment on a local miss
// @Tags lookups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.LookupRequest true "Lookup request"
// @Success 200 {object} resdto.LookupResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 404 {object} resdto.LookupResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /lookups [post]
func (h *LookupHandler) AttemptLookup(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errs.New("user id missing from context"), "Internal server error", nil)
		return
	}

	var req reqdto.LookupRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	result, err := h.lookupCommands.AttemptLookup(c.Request.Context(), req.Identifier, req.OperationType, userID)
	if err != nil {
		h.respondLookupError(c, err)
		return
	}

	response := resdto.FromLookupResult(result)
	if result.Status == lookup.StatusNotFoundFinal {
		// Confirmed absence after the full poll schedule; no charge applied.
		c.JSON(http.StatusNotFound, response)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *LookupHandler) respondLookupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidIdentifier):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err,
			"Invalid document identifier", nil)
	case errors.Is(err, errs.ErrInsufficientFunds):
		var detail any
		var shortfall *shared.InsufficientFundsError
		if errors.As(err, &shortfall) {
			detail = gin.H{
				"required":       shortfall.Required.StringFixed(2),
				"plan_balance":   shortfall.Plan.StringFixed(2),
				"wallet_balance": shortfall.Wallet.StringFixed(2),
			}
		}
		httperr.AbortWithError(c, http.StatusPaymentRequired, err,
			"Insufficient balance for this operation", detail)
	case errors.Is(err, errs.ErrPricingUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err,
			"Pricing temporarily unavailable, please retry", nil)
	case errors.Is(err, errs.ErrDispatchFailed):
		httperr.AbortWithError(c, http.StatusBadGateway, err,
			"Enrichment service rejected the request, no charge applied", nil)
	case errors.Is(err, errs.ErrLookupInProgress):
		httperr.AbortWithError(c, http.StatusConflict, err,
			"A lookup for this identifier is already in progress", nil)
	case errors.Is(err, commands.ErrConnectivity):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err,
			"Connectivity failure, please retry", nil)
	case errors.Is(err, commands.ErrAuthorization):
		httperr.AbortWithError(c, http.StatusUnauthorized, err,
			"Authorization failure against upstream service", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			"Internal server error", nil)
	}
}
