package healthlog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gdugdh24/healthlog-backend/internal/domain"
	"github.com/gdugdh24/healthlog-backend/internal/repository"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// NarrativeInvalidator drops a user's cached coaching narrative.
type NarrativeInvalidator interface {
	Invalidate(ctx context.Context, userID int) error
}

type HealthLogUseCase struct {
	logRepo     repository.HealthLogRepository
	profileRepo repository.ProfileRepository
	narratives  NarrativeInvalidator
	logger      *slog.Logger
}

func NewHealthLogUseCase(
	logRepo repository.HealthLogRepository,
	profileRepo repository.ProfileRepository,
	narratives NarrativeInvalidator,
	logger *slog.Logger,
) *HealthLogUseCase {
	return &HealthLogUseCase{
		logRepo:     logRepo,
		profileRepo: profileRepo,
		narratives:  narratives,
		logger:      logger,
	}
}

// HealthLogInput carries the user-editable fields of an entry.
type HealthLogInput struct {
	LogType        domain.LogType      `json:"log_type" binding:"required,oneof=EXERCISE FOOD"`
	SleepHours     float64             `json:"sleep_hours" binding:"gte=0,lte=24"`
	WaterIntake    float64             `json:"water_intake" binding:"gte=0,lte=100"`
	ExerciseType   domain.ExerciseType `json:"exercise_type" binding:"omitempty,oneof=Running Gym Sport Yoga None"`
	CaloriesBurned int                 `json:"calories_burned" binding:"gte=0,lte=20000"`
	CaloriesIntake int                 `json:"calories_intake" binding:"gte=0,lte=20000"`
	ProteinG       float64             `json:"protein_g" binding:"gte=0,lte=2000"`
	CarbsG         float64             `json:"carbs_g" binding:"gte=0,lte=2000"`
	FatsG          float64             `json:"fats_g" binding:"gte=0,lte=2000"`
}

func (in *HealthLogInput) applyTo(entry *domain.HealthLog) {
	entry.LogType = in.LogType
	entry.SleepHours = in.SleepHours
	entry.WaterIntake = in.WaterIntake
	entry.ExerciseType = in.ExerciseType
	if entry.ExerciseType == "" {
		entry.ExerciseType = domain.ExerciseNone
	}
	entry.CaloriesBurned = in.CaloriesBurned
	entry.CaloriesIntake = in.CaloriesIntake
	entry.ProteinG = in.ProteinG
	entry.CarbsG = in.CarbsG
	entry.FatsG = in.FatsG
}

// Create scores the entry against the owner's current BMI status and saves it.
func (uc *HealthLogUseCase) Create(ctx context.Context, userID int, in *HealthLogInput) (*domain.HealthLog, error) {
	entry := &domain.HealthLog{UserID: userID}
	in.applyTo(entry)

	if err := uc.score(ctx, entry); err != nil {
		return nil, err
	}
	if err := uc.logRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create health log: %w", err)
	}

	uc.invalidateNarrative(ctx, userID)
	uc.logger.Debug("health log created", "user_id", userID, "log_id", entry.ID, "score", entry.HealthScore)
	return entry, nil
}

// Update rewrites an owned entry and rescores it; the entry date is kept.
func (uc *HealthLogUseCase) Update(ctx context.Context, userID, logID int, in *HealthLogInput) (*domain.HealthLog, error) {
	entry, err := uc.logRepo.GetByID(ctx, userID, logID)
	if err != nil {
		return nil, err
	}
	in.applyTo(entry)

	if err := uc.score(ctx, entry); err != nil {
		return nil, err
	}
	if err := uc.logRepo.Update(ctx, entry); err != nil {
		if errors.Is(err, domain.ErrHealthLogNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update health log: %w", err)
	}

	uc.invalidateNarrative(ctx, userID)
	return entry, nil
}

func (uc *HealthLogUseCase) Get(ctx context.Context, userID, logID int) (*domain.HealthLog, error) {
	return uc.logRepo.GetByID(ctx, userID, logID)
}

func (uc *HealthLogUseCase) Delete(ctx context.Context, userID, logID int) error {
	if err := uc.logRepo.Delete(ctx, userID, logID); err != nil {
		return err
	}
	uc.invalidateNarrative(ctx, userID)
	return nil
}

// List returns entries newest first. Limits outside (0, MaxListLimit] fall
// back to DefaultListLimit.
func (uc *HealthLogUseCase) List(ctx context.Context, userID, limit, offset int) ([]*domain.HealthLog, error) {
	if limit <= 0 || limit > MaxListLimit {
		limit = DefaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	logs, err := uc.logRepo.ListRecent(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list health logs: %w", err)
	}
	if logs == nil {
		logs = []*domain.HealthLog{}
	}
	return logs, nil
}

// score resolves the owner's BMI status and stores the result on entry.
// A user without a profile is scored as Normal.
func (uc *HealthLogUseCase) score(ctx context.Context, entry *domain.HealthLog) error {
	profile, err := uc.profileRepo.GetByUserID(ctx, entry.UserID)
	if err != nil {
		if !errors.Is(err, domain.ErrProfileNotFound) {
			return fmt.Errorf("failed to get profile: %w", err)
		}
		profile = nil
	}

	entry.ApplyScore(domain.Score(entry, domain.ResolveBMIStatus(profile)))
	return nil
}

func (uc *HealthLogUseCase) invalidateNarrative(ctx context.Context, userID int) {
	if err := uc.narratives.Invalidate(ctx, userID); err != nil {
		uc.logger.Warn("failed to invalidate coach narrative", "user_id", userID, "error", err)
	}
}
