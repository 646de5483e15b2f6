package repository

import (
	"context"

	"github.com/gdugdh24/healthlog-backend/internal/domain"
)

type HealthLogRepository interface {
	Create(ctx context.Context, log *domain.HealthLog) error
	GetByID(ctx context.Context, userID, id int) (*domain.HealthLog, error)
	// Update overwrites the editable fields and the score; the date is kept.
	Update(ctx context.Context, log *domain.HealthLog) error
	Delete(ctx context.Context, userID, id int) error
	// ListRecent returns entries newest first.
	ListRecent(ctx context.Context, userID int, limit, offset int) ([]*domain.HealthLog, error)
	ListAll(ctx context.Context, userID int) ([]*domain.HealthLog, error)
	Stats(ctx context.Context, userID int) (*domain.DashboardStats, error)
}
