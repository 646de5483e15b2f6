package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gdugdh24/healthlog-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/healthlog-backend/internal/delivery/http/middleware"
	"github.com/gdugdh24/healthlog-backend/internal/domain"
	"github.com/gin-gonic/gin"
)

type rejectingVerifier struct{}

func (rejectingVerifier) VerifyToken(context.Context, string) (int, error) {
	return 0, domain.ErrInvalidToken
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(
		handler.NewAuthHandler(nil),
		handler.NewProfileHandler(nil),
		handler.NewHealthLogHandler(nil),
		handler.NewDashboardHandler(nil),
		handler.NewReportHandler(nil),
		handler.NewCoachHandler(nil),
		middleware.NewAuthMiddleware(rejectingVerifier{}),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	).Setup()
}

func TestRouter_HealthCheck(t *testing.T) {
	router := newTestRouter()

	for _, method := range []string{http.MethodGet, http.MethodHead} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(method, "/api/v1/health", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s /health: expected 200, got %d", method, rec.Code)
		}
	}
}

func TestRouter_ProtectedRoutesRequireAuth(t *testing.T) {
	router := newTestRouter()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/auth/me"},
		{http.MethodPost, "/api/v1/auth/logout"},
		{http.MethodPost, "/api/v1/auth/change-password"},
		{http.MethodDelete, "/api/v1/account"},
		{http.MethodGet, "/api/v1/profile/me"},
		{http.MethodPut, "/api/v1/profile/me"},
		{http.MethodGet, "/api/v1/dashboard"},
		{http.MethodPost, "/api/v1/logs"},
		{http.MethodGet, "/api/v1/logs"},
		{http.MethodGet, "/api/v1/logs/1"},
		{http.MethodPut, "/api/v1/logs/1"},
		{http.MethodDelete, "/api/v1/logs/1"},
		{http.MethodGet, "/api/v1/report/pdf"},
		{http.MethodGet, "/api/v1/report/csv"},
		{http.MethodGet, "/api/v1/coach"},
		{http.MethodGet, "/api/v1/tips"},
	}

	for _, route := range routes {
		req := httptest.NewRequest(route.method, route.path, nil)
		req.Header.Set("Authorization", "Bearer whatever")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", route.method, route.path, rec.Code)
		}
	}
}
