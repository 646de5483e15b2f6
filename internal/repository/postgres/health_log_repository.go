package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gdugdh24/healthlog-backend/internal/domain"
	"github.com/gdugdh24/healthlog-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

const healthLogColumns = `
	id, user_id, log_date, log_type, sleep_hours, water_intake,
	exercise_type, calories_burned, calories_intake, protein_g, carbs_g, fats_g,
	health_score, suggestion, created_at, updated_at
`

type healthLogRepository struct {
	db *sqlx.DB
}

func NewHealthLogRepository(db *sqlx.DB) repository.HealthLogRepository {
	return &healthLogRepository{db: db}
}

func (r *healthLogRepository) Create(ctx context.Context, log *domain.HealthLog) error {
	query := `
		INSERT INTO health_logs (
			user_id, log_type, sleep_hours, water_intake,
			exercise_type, calories_burned, calories_intake, protein_g, carbs_g, fats_g,
			health_score, suggestion
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, log_date, created_at, updated_at
	`
	return r.db.QueryRowxContext(ctx, query,
		log.UserID, log.LogType, log.SleepHours, log.WaterIntake,
		log.ExerciseType, log.CaloriesBurned, log.CaloriesIntake, log.ProteinG, log.CarbsG, log.FatsG,
		log.HealthScore, log.Suggestion,
	).Scan(&log.ID, &log.Date, &log.CreatedAt, &log.UpdatedAt)
}

func (r *healthLogRepository) GetByID(ctx context.Context, userID, id int) (*domain.HealthLog, error) {
	var log domain.HealthLog
	query := `SELECT ` + healthLogColumns + ` FROM health_logs WHERE id = $1 AND user_id = $2`
	err := r.db.GetContext(ctx, &log, query, id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHealthLogNotFound
		}
		return nil, err
	}
	return &log, nil
}

func (r *healthLogRepository) Update(ctx context.Context, log *domain.HealthLog) error {
	query := `
		UPDATE health_logs
		SET log_type = $1, sleep_hours = $2, water_intake = $3,
		    exercise_type = $4, calories_burned = $5, calories_intake = $6,
		    protein_g = $7, carbs_g = $8, fats_g = $9,
		    health_score = $10, suggestion = $11, updated_at = CURRENT_TIMESTAMP
		WHERE id = $12 AND user_id = $13
		RETURNING log_date, created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		log.LogType, log.SleepHours, log.WaterIntake,
		log.ExerciseType, log.CaloriesBurned, log.CaloriesIntake,
		log.ProteinG, log.CarbsG, log.FatsG,
		log.HealthScore, log.Suggestion,
		log.ID, log.UserID,
	).Scan(&log.Date, &log.CreatedAt, &log.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrHealthLogNotFound
	}
	return err
}

func (r *healthLogRepository) Delete(ctx context.Context, userID, id int) error {
	query := `DELETE FROM health_logs WHERE id = $1 AND user_id = $2`
	result, err := r.db.ExecContext(ctx, query, id, userID)
	return checkAffected(result, err, domain.ErrHealthLogNotFound)
}

func (r *healthLogRepository) ListRecent(ctx context.Context, userID int, limit, offset int) ([]*domain.HealthLog, error) {
	var logs []*domain.HealthLog
	query := `
		SELECT ` + healthLogColumns + `
		FROM health_logs
		WHERE user_id = $1
		ORDER BY log_date DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	err := r.db.SelectContext(ctx, &logs, query, userID, limit, offset)
	return logs, err
}

func (r *healthLogRepository) ListAll(ctx context.Context, userID int) ([]*domain.HealthLog, error) {
	var logs []*domain.HealthLog
	query := `
		SELECT ` + healthLogColumns + `
		FROM health_logs
		WHERE user_id = $1
		ORDER BY log_date DESC, id DESC
	`
	err := r.db.SelectContext(ctx, &logs, query, userID)
	return logs, err
}

func (r *healthLogRepository) Stats(ctx context.Context, userID int) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	query := `
		SELECT
			COALESCE(AVG(sleep_hours), 0) AS avg_sleep,
			COALESCE(AVG(health_score), 0) AS avg_health_score,
			COUNT(*) FILTER (WHERE log_type = $2) AS total_workouts,
			COUNT(*) AS total_logs
		FROM health_logs
		WHERE user_id = $1
	`
	if err := r.db.GetContext(ctx, &stats, query, userID, domain.LogTypeExercise); err != nil {
		return nil, err
	}
	return &stats, nil
}
