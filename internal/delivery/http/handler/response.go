package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gdugdh24/healthlog-backend/internal/domain"
	"github.com/gin-gonic/gin"
)

// ErrorResponse represents error response
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// SuccessResponse represents success response
type SuccessResponse struct {
	Message string `json:"message"`
}

const userIDKey = "user_id"

// currentUserID reads the id stored by the auth middleware.
func currentUserID(c *gin.Context) (int, bool) {
	value, exists := c.Get(userIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return 0, false
	}
	userID, ok := value.(int)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return 0, false
	}
	return userID, true
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(c *gin.Context) string {
	token := c.GetHeader("Authorization")
	if len(token) > 7 && strings.EqualFold(token[:7], "Bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return ""
}

// respondError maps domain errors to status codes; anything unknown is a 500
// with the given fallback message.
func respondError(c *gin.Context, err error, fallback string) {
	status, message := http.StatusInternalServerError, fallback

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		status, message = http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrProfileNotFound):
		status, message = http.StatusNotFound, "profile not found"
	case errors.Is(err, domain.ErrHealthLogNotFound):
		status, message = http.StatusNotFound, "health log not found"
	case errors.Is(err, domain.ErrUsernameTaken):
		status, message = http.StatusConflict, "username already taken"
	case errors.Is(err, domain.ErrEmailTaken):
		status, message = http.StatusConflict, "email already taken"
	case errors.Is(err, domain.ErrInvalidCredentials):
		status, message = http.StatusUnauthorized, "invalid username or password"
	case errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrSessionExpired):
		status, message = http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, domain.ErrWeakPassword):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:  "validation failed",
			Fields: map[string]string{"password": "Password must be at least 8 characters and contain a letter."},
		})
		return
	case errors.Is(err, domain.ErrPasswordTooLong):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:  "validation failed",
			Fields: map[string]string{"password": "Password must be at most 72 bytes long."},
		})
		return
	case errors.Is(err, domain.ErrPasswordMismatch):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:  "validation failed",
			Fields: map[string]string{"password_confirm": "The two password fields didn't match."},
		})
		return
	case errors.Is(err, domain.ErrInvalidInput):
		status, message = http.StatusBadRequest, "invalid input"
	}

	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, ErrorResponse{Error: message})
}
