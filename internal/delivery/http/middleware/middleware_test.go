package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gdugdh24/healthlog-backend/internal/domain"
	"github.com/gin-gonic/gin"
)

type stubVerifier struct {
	tokens map[string]int
}

func (v stubVerifier) VerifyToken(_ context.Context, token string) (int, error) {
	userID, ok := v.tokens[token]
	if !ok {
		return 0, domain.ErrSessionNotFound
	}
	return userID, nil
}

func newProtectedEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	auth := NewAuthMiddleware(stubVerifier{tokens: map[string]int{"good-token": 42}})
	engine.GET("/private", auth.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetInt("user_id")})
	})
	return engine
}

func TestRequireAuth(t *testing.T) {
	testCases := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic good-token", wantStatus: http.StatusUnauthorized},
		{name: "unknown token", header: "Bearer revoked", wantStatus: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer good-token", wantStatus: http.StatusOK},
	}

	engine := newProtectedEngine()
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if testCase.header != "" {
				req.Header.Set("Authorization", testCase.header)
			}
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)

			if rec.Code != testCase.wantStatus {
				t.Fatalf("expected %d, got %d", testCase.wantStatus, rec.Code)
			}
			if testCase.wantStatus == http.StatusOK && !strings.Contains(rec.Body.String(), `"user_id":42`) {
				t.Fatalf("expected user id in context, got %s", rec.Body.String())
			}
		})
	}
}

func TestRequestIDAndLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	engine := gin.New()
	engine.Use(RequestID(), RequestLogger(logger))
	engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	generated := rec.Header().Get(RequestIDHeader)
	if generated == "" {
		t.Fatal("expected generated request id")
	}
	if !strings.Contains(logs.String(), generated) || !strings.Contains(logs.String(), `"status":204`) {
		t.Fatalf("expected request line with id and status, got %s", logs.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "caller-id")
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	if got := rec.Header().Get(RequestIDHeader); got != "caller-id" {
		t.Fatalf("expected caller request id to be kept, got %q", got)
	}
}
