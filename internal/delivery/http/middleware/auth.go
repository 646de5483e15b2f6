package middleware

import (
	"context"
	"net/http"

	"github.com/gdugdh24/healthlog-backend/internal/delivery/http/handler"
	"github.com/gin-gonic/gin"
)

// TokenVerifier resolves a bearer token to a user id.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (int, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
}

func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// RequireAuth rejects requests without a live session and stores the user id
// under "user_id".
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := handler.BearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, handler.ErrorResponse{
				Error: "missing authorization token",
			})
			return
		}

		userID, err := m.verifier.VerifyToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, handler.ErrorResponse{
				Error: "invalid or expired token",
			})
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
