package dashboard

import (
	"context"
	"fmt"
	"math"

	"github.com/gdugdh24/healthlog-backend/internal/domain"
	"github.com/gdugdh24/healthlog-backend/internal/repository"
)

const (
	recentLogsLimit  = 5
	NoDataSuggestion = "Log data to get tips!"
)

type DashboardUseCase struct {
	userRepo repository.UserRepository
	logRepo  repository.HealthLogRepository
}

func NewDashboardUseCase(userRepo repository.UserRepository, logRepo repository.HealthLogRepository) *DashboardUseCase {
	return &DashboardUseCase{
		userRepo: userRepo,
		logRepo:  logRepo,
	}
}

// DashboardResponse summarizes a user's history for the home screen
type DashboardResponse struct {
	UserName         string              `json:"user_name"`
	AvgSleep         float64             `json:"avg_sleep"`
	AvgHealthScore   int                 `json:"avg_health_score"`
	TotalWorkouts    int                 `json:"total_workouts"`
	TotalLogs        int                 `json:"total_logs"`
	RecentLogs       []*domain.HealthLog `json:"recent_logs"`
	LatestSuggestion string              `json:"latest_suggestion"`
}

func (uc *DashboardUseCase) GetDashboard(ctx context.Context, userID int) (*DashboardResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats, err := uc.logRepo.Stats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	recent, err := uc.logRepo.ListRecent(ctx, userID, recentLogsLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent logs: %w", err)
	}
	if recent == nil {
		recent = []*domain.HealthLog{}
	}

	suggestion := NoDataSuggestion
	if len(recent) > 0 {
		suggestion = recent[0].Suggestion
	}

	return &DashboardResponse{
		UserName:         user.DisplayName(),
		AvgSleep:         math.Round(stats.AvgSleep*10) / 10,
		AvgHealthScore:   int(stats.AvgHealthScore),
		TotalWorkouts:    stats.TotalWorkouts,
		TotalLogs:        stats.TotalLogs,
		RecentLogs:       recent,
		LatestSuggestion: suggestion,
	}, nil
}
