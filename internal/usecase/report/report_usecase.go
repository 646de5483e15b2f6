package report

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/gdugdh24/healthlog-backend/internal/domain"
	"github.com/gdugdh24/healthlog-backend/internal/repository"
)

const (
	PDFFilename = "health_report.pdf"
	CSVFilename = "health_report.csv"
)

var csvHeaders = []string{
	"date",
	"log_type",
	"sleep_hours",
	"water_intake",
	"exercise_type",
	"calories_burned",
	"calories_intake",
	"protein_g",
	"carbs_g",
	"fats_g",
	"health_score",
	"suggestion",
}

// Renderer writes a report document.
type Renderer interface {
	Render(w io.Writer, data *domain.HealthReport) error
}

type ReportUseCase struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	logRepo     repository.HealthLogRepository
	renderer    Renderer
	now         func() time.Time
}

func NewReportUseCase(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	logRepo repository.HealthLogRepository,
	renderer Renderer,
) *ReportUseCase {
	return &ReportUseCase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		logRepo:     logRepo,
		renderer:    renderer,
		now:         time.Now,
	}
}

// Build collects the user, profile and full history (newest first).
// A missing profile leaves HealthReport.Profile nil.
func (uc *ReportUseCase) Build(ctx context.Context, userID int) (*domain.HealthReport, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrProfileNotFound) {
			return nil, fmt.Errorf("failed to get profile: %w", err)
		}
		profile = nil
	}

	logs, err := uc.logRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list health logs: %w", err)
	}

	return &domain.HealthReport{
		User:        user,
		Profile:     profile,
		Logs:        logs,
		GeneratedAt: uc.now(),
	}, nil
}

func (uc *ReportUseCase) ExportPDF(ctx context.Context, userID int, w io.Writer) error {
	data, err := uc.Build(ctx, userID)
	if err != nil {
		return err
	}
	if err := uc.renderer.Render(w, data); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	return nil
}

func (uc *ReportUseCase) ExportCSV(ctx context.Context, userID int, w io.Writer) error {
	data, err := uc.Build(ctx, userID)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeaders); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	for _, entry := range data.Logs {
		if err := writer.Write(csvRow(entry)); err != nil {
			return fmt.Errorf("failed to write csv: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

func csvRow(entry *domain.HealthLog) []string {
	return []string{
		entry.Date.Format("2006-01-02"),
		string(entry.LogType),
		formatFloat(entry.SleepHours),
		formatFloat(entry.WaterIntake),
		string(entry.ExerciseType),
		strconv.Itoa(entry.CaloriesBurned),
		strconv.Itoa(entry.CaloriesIntake),
		formatFloat(entry.ProteinG),
		formatFloat(entry.CarbsG),
		formatFloat(entry.FatsG),
		strconv.Itoa(entry.HealthScore),
		entry.Suggestion,
	}
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
