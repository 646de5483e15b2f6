package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gdugdh24/healthlog-backend/internal/domain"
	"github.com/gdugdh24/healthlog-backend/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	jwtSecret   []byte
	tokenTTL    time.Duration
	hashCost    int
	logger      *slog.Logger
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	jwtSecret string,
	tokenTTL time.Duration,
	logger *slog.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		jwtSecret:   []byte(jwtSecret),
		tokenTTL:    tokenTTL,
		hashCost:    bcrypt.DefaultCost,
		logger:      logger,
	}
}

// RegisterRequest represents account registration
type RegisterRequest struct {
	Username        string `json:"username" binding:"required,min=3,max=150"`
	Email           string `json:"email" binding:"omitempty,email,max=254"`
	FirstName       string `json:"first_name" binding:"omitempty,max=150"`
	LastName        string `json:"last_name" binding:"omitempty,max=150"`
	Password        string `json:"password" binding:"required,max=72"`
	PasswordConfirm string `json:"password_confirm" binding:"required"`
}

// LoginRequest represents username/password login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest represents a password change of the current user
type ChangePasswordRequest struct {
	OldPassword        string `json:"old_password" binding:"required"`
	NewPassword        string `json:"new_password" binding:"required,max=72"`
	NewPasswordConfirm string `json:"new_password_confirm" binding:"required"`
}

// ClientInfo describes where a session was opened from.
type ClientInfo struct {
	DeviceInfo string
	IPAddress  string
}

// AuthResponse represents the authentication response
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *domain.User `json:"user"`
	IsNewUser bool         `json:"is_new_user"`
}

// Register creates the account with its default profile and opens a session.
func (uc *AuthUseCase) Register(ctx context.Context, req *RegisterRequest, client ClientInfo) (*AuthResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, domain.ErrInvalidInput
	}
	if req.Password != req.PasswordConfirm {
		return nil, domain.ErrPasswordMismatch
	}
	if err := ValidatePasswordStrength(req.Password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), uc.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		Email:        domain.NormalizeEmail(req.Email),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		PasswordHash: string(hash),
	}
	if err := uc.userRepo.CreateWithProfile(ctx, user, domain.NewDefaultProfile(0)); err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) || errors.Is(err, domain.ErrEmailTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	uc.logger.Info("user registered", "user_id", user.ID)

	token, expiresAt, err := uc.createSession(ctx, user.ID, client)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
		IsNewUser: true,
	}, nil
}

// Login checks credentials and opens a new session.
func (uc *AuthUseCase) Login(ctx context.Context, req *LoginRequest, client ClientInfo) (*AuthResponse, error) {
	user, err := uc.userRepo.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := uc.createSession(ctx, user.ID, client)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if removed, err := uc.sessionRepo.DeleteExpired(ctx); err != nil {
		uc.logger.Warn("failed to prune expired sessions", "error", err)
	} else if removed > 0 {
		uc.logger.Debug("pruned expired sessions", "count", removed)
	}

	return &AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

// createSession creates a new session and returns JWT token
func (uc *AuthUseCase) createSession(ctx context.Context, userID int, client ClientInfo) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(uc.tokenTTL)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"jti":     uuid.NewString(),
		"exp":     expiresAt.Unix(),
		"iat":     now.Unix(),
	})

	tokenString, err := token.SignedString(uc.jwtSecret)
	if err != nil {
		return "", time.Time{}, err
	}

	session := &domain.Session{
		UserID:     userID,
		Token:      hashToken(tokenString),
		DeviceInfo: optionalString(client.DeviceInfo),
		IPAddress:  optionalString(client.IPAddress),
		ExpiresAt:  expiresAt,
	}

	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// VerifyToken verifies JWT token and returns user ID
func (uc *AuthUseCase) VerifyToken(ctx context.Context, tokenString string) (int, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return uc.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return 0, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, domain.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(float64)
	if !ok || userID <= 0 {
		return 0, domain.ErrInvalidToken
	}

	session, err := uc.sessionRepo.GetByToken(ctx, hashToken(tokenString))
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return 0, domain.ErrSessionNotFound
		}
		return 0, fmt.Errorf("failed to get session: %w", err)
	}

	if session.IsExpired() {
		return 0, domain.ErrSessionExpired
	}
	if session.UserID != int(userID) {
		return 0, domain.ErrInvalidToken
	}

	return session.UserID, nil
}

// Logout deletes user session
func (uc *AuthUseCase) Logout(ctx context.Context, tokenString string) error {
	return uc.sessionRepo.DeleteByToken(ctx, hashToken(tokenString))
}

// ChangePassword replaces the password and revokes all other sessions of the
// user; the session identified by currentToken stays valid.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, userID int, currentToken string, req *ChangePasswordRequest) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return domain.ErrInvalidCredentials
	}
	if req.NewPassword != req.NewPasswordConfirm {
		return domain.ErrPasswordMismatch
	}
	if err := ValidatePasswordStrength(req.NewPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), uc.hashCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := uc.userRepo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := uc.sessionRepo.DeleteOtherSessions(ctx, userID, hashToken(currentToken)); err != nil {
		return fmt.Errorf("failed to revoke sessions: %w", err)
	}
	uc.logger.Info("password changed", "user_id", userID)
	return nil
}

// DeleteAccount removes the user and, by cascade, every owned record.
func (uc *AuthUseCase) DeleteAccount(ctx context.Context, userID int, password string) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.ErrInvalidCredentials
	}
	if err := uc.userRepo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	uc.logger.Info("account deleted", "user_id", userID)
	return nil
}

// hashToken creates SHA256 hash of token for storage
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}


func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
