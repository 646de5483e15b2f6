package repository

import (
	"context"

	"github.com/gdugdh24/healthlog-backend/internal/domain"
)

type UserRepository interface {
	// CreateWithProfile inserts the user and its profile atomically.
	CreateWithProfile(ctx context.Context, user *domain.User, profile *domain.Profile) error
	GetByID(ctx context.Context, id int) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	// UpdateWithProfile saves account fields and the profile in one transaction.
	UpdateWithProfile(ctx context.Context, user *domain.User, profile *domain.Profile) error
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
	Delete(ctx context.Context, id int) error
}
