package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "lookup-service/internal/handler/dto/response"
	"lookup-service/internal/handler/httperr"
	"lookup-service/internal/handler/middleware"
	"lookup-service/internal/pkg/errs"
	"lookup-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ConsultationHandler struct {
	consultationQueries queries.ConsultationQueries
}

func NewConsultationHandler(consultationQueries queries.ConsultationQueries) *ConsultationHandler {
	return &ConsultationHandler{
		consultationQueries: consultationQueries,
	}
}

// @Summary Get consultation history
// @Description List past consultations for the current user, newest first
// @Tags consultations
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {array} resdto.ConsultationListResponse
// @Failure 401 {object} httperr.Response
// @Router /consultations [get]
func (h *ConsultationHandler) ListByUser(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errs.New("user id missing from context"), "Internal server error", nil)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	items, err := h.consultationQueries.ListByUser(c.Request.Context(), userID, limit, offset)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.ConsultationListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromConsultationListItem(item)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get consultation
// @Description Get one consultation record by ID (owner only)
// @Tags consultations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Consultation ID"
// @Success 200 {object} resdto.ConsultationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /consultations/{id} [get]
func (h *ConsultationHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errs.New("user id missing from context"), "Internal server error", nil)
		return
	}

	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid consultation ID format", nil)
		return
	}

	view, err := h.consultationQueries.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrConsultationNotFound),
			errors.Is(err, errs.ErrConsultationDenied):
			// Not revealing whether the record exists for another user.
			httperr.AbortWithError(c, http.StatusNotFound, err, "Consultation not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromConsultationView(view))
}
