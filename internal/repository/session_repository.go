package repository

import (
	"context"

	"github.com/gdugdh24/healthlog-backend/internal/domain"
)

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByToken(ctx context.Context, token string) (*domain.Session, error)
	DeleteByToken(ctx context.Context, token string) error
	// DeleteOtherSessions removes every session of the user except keepToken.
	DeleteOtherSessions(ctx context.Context, userID int, keepToken string) error
	DeleteExpired(ctx context.Context) (int64, error)
}
