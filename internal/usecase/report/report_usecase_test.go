package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/gdugdh24/healthlog-backend/internal/domain"
)

type stubUserRepo struct {
	user *domain.User
}

func (r *stubUserRepo) CreateWithProfile(context.Context, *domain.User, *domain.Profile) error {
	return errors.New("not implemented")
}

func (r *stubUserRepo) GetByID(_ context.Context, id int) (*domain.User, error) {
	if r.user == nil || r.user.ID != id {
		return nil, domain.ErrUserNotFound
	}
	return r.user, nil
}

func (r *stubUserRepo) GetByUsername(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) UpdatePassword(context.Context, int, string) error { return nil }
func (r *stubUserRepo) Delete(context.Context, int) error                 { return nil }

func (r *stubUserRepo) UpdateWithProfile(context.Context, *domain.User, *domain.Profile) error {
	return nil
}

type stubProfileRepo struct {
	profile *domain.Profile
}

func (r *stubProfileRepo) GetByUserID(context.Context, int) (*domain.Profile, error) {
	if r.profile == nil {
		return nil, domain.ErrProfileNotFound
	}
	return r.profile, nil
}

func (r *stubProfileRepo) Update(context.Context, *domain.Profile) error { return nil }

type stubLogRepo struct {
	logs []*domain.HealthLog
}

func (r *stubLogRepo) Create(context.Context, *domain.HealthLog) error { return nil }

func (r *stubLogRepo) GetByID(context.Context, int, int) (*domain.HealthLog, error) {
	return nil, domain.ErrHealthLogNotFound
}

func (r *stubLogRepo) Update(context.Context, *domain.HealthLog) error { return nil }
func (r *stubLogRepo) Delete(context.Context, int, int) error          { return nil }

func (r *stubLogRepo) ListRecent(context.Context, int, int, int) ([]*domain.HealthLog, error) {
	return r.logs, nil
}

func (r *stubLogRepo) ListAll(context.Context, int) ([]*domain.HealthLog, error) {
	return r.logs, nil
}

func (r *stubLogRepo) Stats(context.Context, int) (*domain.DashboardStats, error) {
	return &domain.DashboardStats{}, nil
}

type recordingRenderer struct {
	got *domain.HealthReport
	err error
}

func (r *recordingRenderer) Render(w io.Writer, data *domain.HealthReport) error {
	r.got = data
	if r.err != nil {
		return r.err
	}
	_, err := w.Write([]byte("%PDF-1.3"))
	return err
}

func newTestReportUseCase(profile *domain.Profile, renderer *recordingRenderer) *ReportUseCase {
	logs := []*domain.HealthLog{
		{
			ID: 2, UserID: 1, Date: time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC), LogType: domain.LogTypeExercise,
			SleepHours: 7.5, WaterIntake: 8, ExerciseType: domain.ExerciseRunning, CaloriesBurned: 1400,
			HealthScore: 100, Suggestion: domain.TipGreatWorkout + " " + domain.TipWeightLoss,
		},
		{
			ID: 1, UserID: 1, Date: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), LogType: domain.LogTypeFood,
			SleepHours: 4, WaterIntake: 2, ExerciseType: domain.ExerciseNone, CaloriesIntake: 2600, ProteinG: 55.5,
			HealthScore: 15, Suggestion: "Meal, with \"quotes\"",
		},
	}
	uc := NewReportUseCase(
		&stubUserRepo{user: &domain.User{ID: 1, Username: "ann"}},
		&stubProfileRepo{profile: profile},
		&stubLogRepo{logs: logs},
		renderer,
	)
	uc.now = func() time.Time { return time.Date(2026, 4, 3, 12, 0, 0, 0, time.UTC) }
	return uc
}

func TestExportCSV_WritesHistory(t *testing.T) {
	uc := newTestReportUseCase(domain.NewDefaultProfile(1), &recordingRenderer{})

	var buf bytes.Buffer
	if err := uc.ExportCSV(context.Background(), 1, &buf); err != nil {
		t.Fatalf("expected csv export, got %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("expected valid csv, got %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(records))
	}
	if records[0][0] != "date" || records[0][len(records[0])-1] != "suggestion" {
		t.Fatalf("unexpected header: %v", records[0])
	}
	if records[1][0] != "2026-04-02" || records[1][1] != "EXERCISE" || records[1][10] != "100" {
		t.Fatalf("unexpected first row: %v", records[1])
	}
	if records[2][2] != "4" || records[2][7] != "55.5" {
		t.Fatalf("unexpected number formatting: %v", records[2])
	}
	if records[2][11] != "Meal, with \"quotes\"" {
		t.Fatalf("expected suggestion to round-trip, got %q", records[2][11])
	}
}

func TestExportPDF_UsesRenderer(t *testing.T) {
	renderer := &recordingRenderer{}
	uc := newTestReportUseCase(nil, renderer)

	var buf bytes.Buffer
	if err := uc.ExportPDF(context.Background(), 1, &buf); err != nil {
		t.Fatalf("expected pdf export, got %v", err)
	}
	if renderer.got == nil || len(renderer.got.Logs) != 2 {
		t.Fatalf("expected renderer to receive history, got %#v", renderer.got)
	}
	if renderer.got.Profile != nil {
		t.Fatal("expected missing profile to be left nil")
	}
	if !renderer.got.GeneratedAt.Equal(time.Date(2026, 4, 3, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected generation time %v", renderer.got.GeneratedAt)
	}
}

func TestExportPDF_RendererFailure(t *testing.T) {
	renderErr := errors.New("font missing")
	uc := newTestReportUseCase(nil, &recordingRenderer{err: renderErr})

	if err := uc.ExportPDF(context.Background(), 1, io.Discard); !errors.Is(err, renderErr) {
		t.Fatalf("expected wrapped renderer error, got %v", err)
	}
}

func TestBuild_UnknownUser(t *testing.T) {
	uc := newTestReportUseCase(nil, &recordingRenderer{})

	if _, err := uc.Build(context.Background(), 42); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
