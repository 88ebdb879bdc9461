//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"lookup-service/internal/handler/middleware"
	"lookup-service/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubTokenValidator struct {
	userID uuid.UUID
	err    error
}

func (s *stubTokenValidator) ValidateToken(_ string) (uuid.UUID, error) {
	return s.userID, s.err
}

func newAuthRouter(validator *stubTokenValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.NewAuthMiddleware(validator).RequireAuth())
	engine.GET("/protected", func(c *gin.Context) {
		userID, _ := middleware.GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID.String()})
	})
	return engine
}

func TestRequireAuth(t *testing.T) {
	t.Run("有効なトークンはuser_idをコンテキストへ", func(t *testing.T) {
		userID := uuid.New()
		router := newAuthRouter(&stubTokenValidator{userID: userID})

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, "valid-token")

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, userID.String(), body["user_id"])
	})

	t.Run("トークンなしは401", func(t *testing.T) {
		router := newAuthRouter(&stubTokenValidator{})

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("無効なトークンは401", func(t *testing.T) {
		router := newAuthRouter(&stubTokenValidator{err: errors.New("token expired")})

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, "stale-token")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}
