package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gdugdh24/healthlog-backend/internal/domain"
	"github.com/gdugdh24/healthlog-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type sessionRepository struct {
	db *sqlx.DB
}

func NewSessionRepository(db *sqlx.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.Session) error {
	query := `
		INSERT INTO sessions (user_id, token, device_info, ip_address, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	return r.db.QueryRowxContext(ctx, query,
		session.UserID, session.Token, session.DeviceInfo, session.IPAddress, session.ExpiresAt,
	).Scan(&session.ID, &session.CreatedAt)
}

func (r *sessionRepository) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	var session domain.Session
	query := `SELECT * FROM sessions WHERE token = $1`
	err := r.db.GetContext(ctx, &session, query, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) DeleteByToken(ctx context.Context, token string) error {
	query := `DELETE FROM sessions WHERE token = $1`
	result, err := r.db.ExecContext(ctx, query, token)
	return checkAffected(result, err, domain.ErrSessionNotFound)
}

func (r *sessionRepository) DeleteOtherSessions(ctx context.Context, userID int, keepToken string) error {
	query := `DELETE FROM sessions WHERE user_id = $1 AND token <> $2`
	_, err := r.db.ExecContext(ctx, query, userID, keepToken)
	return err
}

func (r *sessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at < CURRENT_TIMESTAMP`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
