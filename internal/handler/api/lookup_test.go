//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"lookup-service/internal/domain/billing"
	"lookup-service/internal/domain/lookup"
	"lookup-service/internal/domain/pricing"
	"lookup-service/internal/handler/api"
	resdto "lookup-service/internal/handler/dto/response"
	"lookup-service/internal/pkg/errs"
	"lookup-service/internal/usecase/commands"
	"lookup-service/internal/usecase/shared"
	"lookup-service/tests/common/httptest"
	commandsmock "lookup-service/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LookupHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockLookupCommands
	handler      *api.LookupHandler
	userID       uuid.UUID
}

func (s *LookupHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockLookupCommands(s.mockCtrl)
	s.handler = api.NewLookupHandler(s.mockCommands)
	s.userID = uuid.New()

	s.router.POST("/lookups", func(c *gin.Context) {
		// Mock auth middleware behavior
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
		}
		s.handler.AttemptLookup(c)
	})
}

func (s *LookupHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLookupHandlerSuite(t *testing.T) {
	suite.Run(t, new(LookupHandlerTestSuite))
}

func (s *LookupHandlerTestSuite) quote() *pricing.Quote {
	q, err := pricing.NewQuote("document_lookup", decimal.RequireFromString("2.50"), 20)
	s.Require().NoError(err)
	return q
}

func (s *LookupHandlerTestSuite) TestAttemptLookup() {
	url := "/lookups"
	reqBody := map[string]any{
		"identifier":     "529.982.247-25",
		"operation_type": "document_lookup",
	}

	s.Run("success: returns 200 OK with settled result", func() {
		consultationID := uuid.New()
		s.mockCommands.EXPECT().
			AttemptLookup(gomock.Any(), "529.982.247-25", "document_lookup", s.userID).
			Return(&commands.LookupResult{
				Status:         lookup.StatusFound,
				ConsultationID: consultationID,
				Identifier:     "52998224725",
				Record:         json.RawMessage(`{"name":"Ana"}`),
				Quote:          s.quote(),
				PoolUsed:       billing.PoolMixed,
				PlanBalance:    decimal.Zero,
				WalletBalance:  decimal.RequireFromString("8.00"),
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.LookupResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("found", response.Status)
		s.Equal("2.00", response.FinalPrice)
		s.Equal("mixed", response.BalancePoolUsed)
		s.Equal("8.00", response.WalletBalance)
		s.Require().NotNil(response.ConsultationID)
		s.Equal(consultationID, *response.ConsultationID)
	})

	s.Run("success: confirmed absence maps to 404 with body", func() {
		s.mockCommands.EXPECT().
			AttemptLookup(gomock.Any(), gomock.Any(), gomock.Any(), s.userID).
			Return(&commands.LookupResult{
				Status:           lookup.StatusNotFoundFinal,
				Identifier:       "52998224725",
				PoolUsed:         billing.PoolNone,
				PollAttemptsUsed: 2,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		s.Equal(http.StatusNotFound, rec.Code)
		var response resdto.LookupResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Equal("not_found_final", response.Status)
		s.Equal(2, response.PollAttemptsUsed)
		s.Equal("none", response.BalancePoolUsed)
	})

	s.Run("error: 400 Bad Request on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"identifier": ""}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 500 when user_id missing in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})

	s.Run("error: 402 carries the pool breakdown", func() {
		s.mockCommands.EXPECT().
			AttemptLookup(gomock.Any(), gomock.Any(), gomock.Any(), s.userID).
			Return(nil, errs.Mark(&shared.InsufficientFundsError{
				Required: decimal.RequireFromString("2.50"),
				Plan:     decimal.RequireFromString("1.00"),
				Wallet:   decimal.RequireFromString("0.25"),
			}, errs.ErrInsufficientFunds)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusPaymentRequired, rec.Code)

		var body struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
			Detail map[string]string `json:"detail"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Contains(body.Error.Message, "Insufficient balance")
		s.Equal("2.50", body.Detail["required"])
		s.Equal("1.00", body.Detail["plan_balance"])
		s.Equal("0.25", body.Detail["wallet_balance"])
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid identifier",
				commandsError:  errs.Mark(errors.New("checksum failed"), errs.ErrInvalidIdentifier),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Invalid document identifier",
			},
			{
				name:           "pricing unavailable",
				commandsError:  errs.Mark(errors.New("no active price"), errs.ErrPricingUnavailable),
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "Pricing temporarily unavailable",
			},
			{
				name:           "dispatch failed",
				commandsError:  errs.Mark(errors.New("rejected"), errs.ErrDispatchFailed),
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "no charge applied",
			},
			{
				name:           "lookup already in progress",
				commandsError:  errs.Mark(errors.New("in flight"), errs.ErrLookupInProgress),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already in progress",
			},
			{
				name:           "connectivity failure",
				commandsError:  errs.Mark(errors.New("connection refused"), commands.ErrConnectivity),
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "Connectivity failure",
			},
			{
				name:           "upstream authorization failure",
				commandsError:  errs.Mark(errors.New("unauthorized"), commands.ErrAuthorization),
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Authorization failure",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					AttemptLookup(gomock.Any(), gomock.Any(), gomock.Any(), s.userID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
