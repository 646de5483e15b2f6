package repository

import (
	"context"

	"github.com/gdugdh24/healthlog-backend/internal/domain"
)

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
}
