package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gdugdh24/healthlog-backend/internal/domain"
	"github.com/gdugdh24/healthlog-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID int) (*domain.Profile, error) {
	var profile domain.Profile
	query := `
		SELECT id, user_id, age, height_cm, weight_kg, created_at, updated_at
		FROM profiles WHERE user_id = $1
	`
	err := r.db.GetContext(ctx, &profile, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	query := `
		UPDATE profiles
		SET age = $1, height_cm = $2, weight_kg = $3, updated_at = CURRENT_TIMESTAMP
		WHERE user_id = $4
		RETURNING id, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query, profile.Age, profile.HeightCm, profile.WeightKg, profile.UserID).
		Scan(&profile.ID, &profile.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrProfileNotFound
	}
	return err
}
