package coach

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gdugdh24/healthlog-backend/internal/domain"
	"github.com/gdugdh24/healthlog-backend/internal/repository"
)

const (
	recentLogsLimit = 7

	NotEnoughDataMessage = "Not enough data!"
	errorPrefix          = "Error: "
)

var errGeneratorDisabled = errors.New("AI service is not configured")

// NarrativeGenerator turns a prompt into coaching text.
type NarrativeGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// NarrativeCache stores generated narratives per user. Version changes on
// every write to the user's logs or profile; entries are read and written
// under the version observed before the inputs were loaded.
type NarrativeCache interface {
	Version(ctx context.Context, userID int) (int64, error)
	Get(ctx context.Context, userID int, version int64) (string, bool, error)
	Set(ctx context.Context, userID int, version int64, narrative string) error
}

type CoachUseCase struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	logRepo     repository.HealthLogRepository
	generator   NarrativeGenerator
	cache       NarrativeCache
	logger      *slog.Logger
}

// NewCoachUseCase builds the coach. generator may be nil when no model is
// configured; responses then carry an error message.
func NewCoachUseCase(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	logRepo repository.HealthLogRepository,
	generator NarrativeGenerator,
	cache NarrativeCache,
	logger *slog.Logger,
) *CoachUseCase {
	return &CoachUseCase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		logRepo:     logRepo,
		generator:   generator,
		cache:       cache,
		logger:      logger,
	}
}

// CoachResponse carries either a narrative or a user-facing error message.
type CoachResponse struct {
	Narrative string `json:"ai_response,omitempty"`
	Error     string `json:"error,omitempty"`
	Cached    bool   `json:"cached"`
}

// GetNarrative returns a coaching narrative for the user's last week of
// entries. Model failures are reported inside the response; only storage
// errors are returned.
func (uc *CoachUseCase) GetNarrative(ctx context.Context, userID int) (*CoachResponse, error) {
	version, err := uc.cache.Version(ctx, userID)
	cacheable := err == nil
	if err != nil {
		uc.logger.Warn("failed to read narrative version", "user_id", userID, "error", err)
	}

	logs, err := uc.logRepo.ListRecent(ctx, userID, recentLogsLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list health logs: %w", err)
	}
	if len(logs) == 0 {
		return &CoachResponse{Error: NotEnoughDataMessage}, nil
	}

	if cacheable {
		if narrative, ok, err := uc.cache.Get(ctx, userID, version); err != nil {
			uc.logger.Warn("failed to read cached narrative", "user_id", userID, "error", err)
		} else if ok {
			return &CoachResponse{Narrative: narrative, Cached: true}, nil
		}
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrProfileNotFound) {
			return nil, fmt.Errorf("failed to get profile: %w", err)
		}
		profile = domain.NewDefaultProfile(userID)
	}

	if uc.generator == nil {
		return &CoachResponse{Error: errorPrefix + errGeneratorDisabled.Error()}, nil
	}

	narrative, err := uc.generator.GenerateText(ctx, BuildPrompt(user, profile, logs))
	if err != nil {
		uc.logger.Error("coach narrative generation failed", "user_id", userID, "error", err)
		return &CoachResponse{Error: errorPrefix + err.Error()}, nil
	}

	if cacheable {
		if err := uc.cache.Set(ctx, userID, version, narrative); err != nil {
			uc.logger.Warn("failed to cache narrative", "user_id", userID, "error", err)
		}
	}
	return &CoachResponse{Narrative: narrative}, nil
}

// BuildPrompt renders the coaching prompt for a profile and its newest entries.
func BuildPrompt(user *domain.User, profile *domain.Profile, logs []*domain.HealthLog) string {
	status := profile.BMIStatus()

	var sb strings.Builder
	sb.WriteString("Act as a professional Health Coach.\n")
	sb.WriteString("USER PROFILE:\n")
	fmt.Fprintf(&sb, "- Name: %s\n", user.FirstName)
	fmt.Fprintf(&sb, "- Age: %d\n", profile.Age)
	fmt.Fprintf(&sb, "- Weight: %skg, Height: %scm\n", formatMeasure(profile.WeightKg), formatMeasure(profile.HeightCm))
	fmt.Fprintf(&sb, "- BMI: %s (%s)\n", formatMeasure(profile.BMI()), status)
	sb.WriteString("\nRECENT LOGS:\n")
	for _, entry := range logs {
		fmt.Fprintf(&sb, "- Date: %s, Type: %s, Score: %d, Sleep: %sh, Water: %sgls\n",
			entry.Date.Format("2006-01-02"),
			entry.LogType,
			entry.HealthScore,
			formatMeasure(entry.SleepHours),
			formatMeasure(entry.WaterIntake),
		)
	}
	fmt.Fprintf(&sb, "\nBased on their BMI status (%s) and logs, provide:\n", status)
	sb.WriteString("1. A summary of their week.\n")
	sb.WriteString("2. Three actionable improvements specific to their body type.\n")
	sb.WriteString("3. Use a motivating tone.\n")
	sb.WriteString("Format with HTML tags.\n")
	return sb.String()
}

// formatMeasure prints a float with at least one decimal place (8 -> "8.0").
func formatMeasure(value float64) string {
	text := strconv.FormatFloat(value, 'f', -1, 64)
	if !strings.Contains(text, ".") {
		text += ".0"
	}
	return text
}
