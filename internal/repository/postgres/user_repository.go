package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gdugdh24/healthlog-backend/internal/domain"
	"github.com/gdugdh24/healthlog-backend/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateWithProfile(ctx context.Context, user *domain.User, profile *domain.Profile) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query := `
		INSERT INTO users (username, email, first_name, last_name, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err = tx.QueryRowxContext(ctx, query,
		user.Username, user.Email, user.FirstName, user.LastName, user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return mapUserConstraintError(err)
	}

	profile.UserID = user.ID
	query = `
		INSERT INTO profiles (user_id, age, height_cm, weight_kg)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err = tx.QueryRowxContext(ctx, query, profile.UserID, profile.Age, profile.HeightCm, profile.WeightKg).
		Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int) (*domain.User, error) {
	var user domain.User
	query := `SELECT * FROM users WHERE id = $1`
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	query := `SELECT * FROM users WHERE username = $1`
	err := r.db.GetContext(ctx, &user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateWithProfile(ctx context.Context, user *domain.User, profile *domain.Profile) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query := `
		UPDATE users
		SET email = $1, first_name = $2, last_name = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $4
		RETURNING updated_at
	`
	err = tx.QueryRowxContext(ctx, query, user.Email, user.FirstName, user.LastName, user.ID).
		Scan(&user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrUserNotFound
		}
		return mapUserConstraintError(err)
	}

	query = `
		UPDATE profiles
		SET age = $1, height_cm = $2, weight_kg = $3, updated_at = CURRENT_TIMESTAMP
		WHERE user_id = $4
		RETURNING id, updated_at
	`
	err = tx.QueryRowxContext(ctx, query, profile.Age, profile.HeightCm, profile.WeightKg, user.ID).
		Scan(&profile.ID, &profile.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrProfileNotFound
		}
		return fmt.Errorf("update profile: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	query := `UPDATE users SET password_hash = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, passwordHash, id)
	return checkAffected(result, err, domain.ErrUserNotFound)
}

func (r *userRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM users WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	return checkAffected(result, err, domain.ErrUserNotFound)
}

func mapUserConstraintError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		switch pqErr.Constraint {
		case "users_username_key":
			return domain.ErrUsernameTaken
		case "users_email_key":
			return domain.ErrEmailTaken
		}
	}
	return err
}

// checkAffected reports notFound when a write touched no rows.
func checkAffected(result sql.Result, err error, notFound error) error {
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return notFound
	}
	return nil
}
