package handler

import (
	"context"
	"net/http"

	"github.com/gdugdh24/healthlog-backend/internal/usecase/auth"
	"github.com/gin-gonic/gin"
)

// AuthService is the account lifecycle used by AuthHandler.
type AuthService interface {
	Register(ctx context.Context, req *auth.RegisterRequest, client auth.ClientInfo) (*auth.AuthResponse, error)
	Login(ctx context.Context, req *auth.LoginRequest, client auth.ClientInfo) (*auth.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	ChangePassword(ctx context.Context, userID int, currentToken string, req *auth.ChangePasswordRequest) error
	DeleteAccount(ctx context.Context, userID int, password string) error
}

type AuthHandler struct {
	authService AuthService
}

func NewAuthHandler(authService AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// AuthResponse is the response structure
type AuthResponse struct {
	Token     string      `json:"token"`
	ExpiresAt int64       `json:"expires_at"`
	User      interface{} `json:"user"`
	IsNewUser bool        `json:"is_new_user"`
}

// DeleteAccountRequest confirms account removal with the current password
type DeleteAccountRequest struct {
	Password string `json:"password" binding:"required"`
}

func clientInfo(c *gin.Context) auth.ClientInfo {
	return auth.ClientInfo{
		DeviceInfo: c.GetHeader("User-Agent"),
		IPAddress:  c.ClientIP(),
	}
}

func toAuthResponse(result *auth.AuthResponse) AuthResponse {
	return AuthResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt.Unix(),
		User:      result.User,
		IsNewUser: result.IsNewUser,
	}
}

// Register handles account creation
// @Summary Register
// @Description Create an account with a default profile and open a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body auth.RegisterRequest true "Account data"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req auth.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authService.Register(c.Request.Context(), &req, clientInfo(c))
	if err != nil {
		respondError(c, err, "registration failed")
		return
	}

	c.JSON(http.StatusCreated, toAuthResponse(result))
}

// Login handles username/password authentication
// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body auth.LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &req, clientInfo(c))
	if err != nil {
		respondError(c, err, "authentication failed")
		return
	}

	c.JSON(http.StatusOK, toAuthResponse(result))
}

// Logout handles user logout
// @Summary Logout
// @Description Logout user and invalidate session
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token := BearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "missing authorization token",
		})
		return
	}

	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		respondError(c, err, "logout failed")
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "logged out successfully",
	})
}

// ChangePassword handles password change; other sessions are revoked
// @Summary Change password
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body auth.ChangePasswordRequest true "Passwords"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/change-password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req auth.ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), userID, BearerToken(c), &req); err != nil {
		respondError(c, err, "failed to change password")
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "password changed",
	})
}

// Me returns current user info
// @Summary Get current user
// @Description Get authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]int
// @Failure 401 {object} ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id": userID,
	})
}

// DeleteAccount removes the current user with all health data
// @Summary Delete account
// @Tags account
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body DeleteAccountRequest true "Password confirmation"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /account [delete]
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req DeleteAccountRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.authService.DeleteAccount(c.Request.Context(), userID, req.Password); err != nil {
		respondError(c, err, "failed to delete account")
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "account deleted",
	})
}
