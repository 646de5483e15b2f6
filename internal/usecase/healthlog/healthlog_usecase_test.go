package healthlog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"testing"
	"time"

	"github.com/gdugdh24/healthlog-backend/internal/domain"
)

type stubLogRepo struct {
	logs   map[int]*domain.HealthLog
	nextID int
	today  time.Time
}

func newStubLogRepo() *stubLogRepo {
	return &stubLogRepo{
		logs:   map[int]*domain.HealthLog{},
		nextID: 1,
		today:  time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (r *stubLogRepo) Create(_ context.Context, log *domain.HealthLog) error {
	log.ID = r.nextID
	r.nextID++
	log.Date = r.today
	stored := *log
	r.logs[log.ID] = &stored
	return nil
}

func (r *stubLogRepo) GetByID(_ context.Context, userID, id int) (*domain.HealthLog, error) {
	log, ok := r.logs[id]
	if !ok || log.UserID != userID {
		return nil, domain.ErrHealthLogNotFound
	}
	copied := *log
	return &copied, nil
}

func (r *stubLogRepo) Update(_ context.Context, log *domain.HealthLog) error {
	stored, ok := r.logs[log.ID]
	if !ok || stored.UserID != log.UserID {
		return domain.ErrHealthLogNotFound
	}
	updated := *log
	updated.Date = stored.Date
	r.logs[log.ID] = &updated
	return nil
}

func (r *stubLogRepo) Delete(_ context.Context, userID, id int) error {
	log, ok := r.logs[id]
	if !ok || log.UserID != userID {
		return domain.ErrHealthLogNotFound
	}
	delete(r.logs, id)
	return nil
}

func (r *stubLogRepo) ListRecent(ctx context.Context, userID int, limit, offset int) ([]*domain.HealthLog, error) {
	all, _ := r.ListAll(ctx, userID)
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *stubLogRepo) ListAll(_ context.Context, userID int) ([]*domain.HealthLog, error) {
	var logs []*domain.HealthLog
	for _, log := range r.logs {
		if log.UserID == userID {
			logs = append(logs, log)
		}
	}
	sort.Slice(logs, func(i, j int) bool {
		if !logs[i].Date.Equal(logs[j].Date) {
			return logs[i].Date.After(logs[j].Date)
		}
		return logs[i].ID > logs[j].ID
	})
	return logs, nil
}

func (r *stubLogRepo) Stats(context.Context, int) (*domain.DashboardStats, error) {
	return &domain.DashboardStats{}, nil
}

type stubProfileRepo struct {
	profiles map[int]*domain.Profile
	err      error
}

func (r *stubProfileRepo) GetByUserID(_ context.Context, userID int) (*domain.Profile, error) {
	if r.err != nil {
		return nil, r.err
	}
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return profile, nil
}

func (r *stubProfileRepo) Update(_ context.Context, profile *domain.Profile) error {
	r.profiles[profile.UserID] = profile
	return nil
}

type recordingInvalidator struct {
	calls int
}

func (r *recordingInvalidator) Invalidate(context.Context, int) error {
	r.calls++
	return nil
}

func newTestHealthLogUseCase() (*HealthLogUseCase, *stubLogRepo, *stubProfileRepo, *recordingInvalidator) {
	logs := newStubLogRepo()
	profiles := &stubProfileRepo{profiles: map[int]*domain.Profile{
		1: {UserID: 1, Age: 40, HeightCm: 170, WeightKg: 95},
	}}
	invalidator := &recordingInvalidator{}
	uc := NewHealthLogUseCase(logs, profiles, invalidator, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return uc, logs, profiles, invalidator
}

func heavyMealInput() *HealthLogInput {
	return &HealthLogInput{
		LogType:        domain.LogTypeFood,
		SleepHours:     8,
		WaterIntake:    8,
		CaloriesIntake: 2500,
		ProteinG:       80,
	}
}

func TestCreate_ScoresWithOwnerStatus(t *testing.T) {
	uc, logs, _, invalidator := newTestHealthLogUseCase()

	entry, err := uc.Create(context.Background(), 1, heavyMealInput())
	if err != nil {
		t.Fatalf("expected create to succeed, got %v", err)
	}

	if entry.HealthScore != 85 {
		t.Fatalf("expected score 85, got %d", entry.HealthScore)
	}
	if want := domain.HighCalorieTip(domain.BMIStatusObese); entry.Suggestion != want {
		t.Fatalf("expected suggestion %q, got %q", want, entry.Suggestion)
	}
	if entry.ExerciseType != domain.ExerciseNone {
		t.Fatalf("expected default exercise type None, got %q", entry.ExerciseType)
	}
	if stored := logs.logs[entry.ID]; stored == nil || stored.HealthScore != 85 {
		t.Fatalf("expected stored entry with score, got %#v", stored)
	}
	if invalidator.calls != 1 {
		t.Fatalf("expected narrative invalidation, got %d calls", invalidator.calls)
	}
}

func TestCreate_MissingProfileScoresAsNormal(t *testing.T) {
	uc, _, _, _ := newTestHealthLogUseCase()

	entry, err := uc.Create(context.Background(), 2, heavyMealInput())
	if err != nil {
		t.Fatalf("expected create to succeed, got %v", err)
	}
	if entry.HealthScore != 95 || entry.Suggestion != domain.DefaultSuggestion {
		t.Fatalf("expected Normal scoring (95, default tip), got %d %q", entry.HealthScore, entry.Suggestion)
	}
}

func TestCreate_ProfileLookupFailure(t *testing.T) {
	uc, logs, profiles, _ := newTestHealthLogUseCase()
	profiles.err = errors.New("connection refused")

	if _, err := uc.Create(context.Background(), 1, heavyMealInput()); err == nil {
		t.Fatal("expected error when profile lookup fails")
	}
	if len(logs.logs) != 0 {
		t.Fatalf("expected nothing persisted, got %d entries", len(logs.logs))
	}
}

func TestUpdate_RescoresWithCurrentStatusAndKeepsDate(t *testing.T) {
	uc, logs, profiles, _ := newTestHealthLogUseCase()

	entry, err := uc.Create(context.Background(), 1, heavyMealInput())
	if err != nil {
		t.Fatalf("expected create to succeed, got %v", err)
	}
	createdDate := entry.Date
	logs.today = createdDate.AddDate(0, 0, 3)

	profiles.profiles[1].WeightKg = 65
	updated, err := uc.Update(context.Background(), 1, entry.ID, heavyMealInput())
	if err != nil {
		t.Fatalf("expected update to succeed, got %v", err)
	}

	if updated.HealthScore != 95 || updated.Suggestion != domain.DefaultSuggestion {
		t.Fatalf("expected rescoring as Normal, got %d %q", updated.HealthScore, updated.Suggestion)
	}
	if !logs.logs[entry.ID].Date.Equal(createdDate) {
		t.Fatalf("expected date %v to be kept, got %v", createdDate, logs.logs[entry.ID].Date)
	}
}

func TestOtherUsersEntriesAreNotFound(t *testing.T) {
	uc, _, _, _ := newTestHealthLogUseCase()

	entry, err := uc.Create(context.Background(), 1, heavyMealInput())
	if err != nil {
		t.Fatalf("expected create to succeed, got %v", err)
	}

	if _, err := uc.Get(context.Background(), 2, entry.ID); !errors.Is(err, domain.ErrHealthLogNotFound) {
		t.Fatalf("expected ErrHealthLogNotFound on get, got %v", err)
	}
	if _, err := uc.Update(context.Background(), 2, entry.ID, heavyMealInput()); !errors.Is(err, domain.ErrHealthLogNotFound) {
		t.Fatalf("expected ErrHealthLogNotFound on update, got %v", err)
	}
	if err := uc.Delete(context.Background(), 2, entry.ID); !errors.Is(err, domain.ErrHealthLogNotFound) {
		t.Fatalf("expected ErrHealthLogNotFound on delete, got %v", err)
	}
}

func TestDelete_RemovesEntry(t *testing.T) {
	uc, logs, _, invalidator := newTestHealthLogUseCase()

	entry, err := uc.Create(context.Background(), 1, heavyMealInput())
	if err != nil {
		t.Fatalf("expected create to succeed, got %v", err)
	}
	if err := uc.Delete(context.Background(), 1, entry.ID); err != nil {
		t.Fatalf("expected delete to succeed, got %v", err)
	}
	if len(logs.logs) != 0 {
		t.Fatalf("expected entry removed, got %d", len(logs.logs))
	}
	if invalidator.calls != 2 {
		t.Fatalf("expected invalidation on create and delete, got %d", invalidator.calls)
	}
}

func TestList_OrderAndLimits(t *testing.T) {
	uc, _, _, _ := newTestHealthLogUseCase()
	for i := 0; i < 3; i++ {
		if _, err := uc.Create(context.Background(), 1, heavyMealInput()); err != nil {
			t.Fatalf("expected create to succeed, got %v", err)
		}
	}

	logs, err := uc.List(context.Background(), 1, 0, -5)
	if err != nil {
		t.Fatalf("expected list to succeed, got %v", err)
	}
	if len(logs) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(logs))
	}
	if logs[0].ID != 3 || logs[2].ID != 1 {
		t.Fatalf("expected newest first, got ids %d..%d", logs[0].ID, logs[2].ID)
	}

	page, err := uc.List(context.Background(), 1, 2, 2)
	if err != nil {
		t.Fatalf("expected list to succeed, got %v", err)
	}
	if len(page) != 1 || page[0].ID != 1 {
		t.Fatalf("expected last page with entry 1, got %d entries", len(page))
	}

	empty, err := uc.List(context.Background(), 99, 10, 0)
	if err != nil {
		t.Fatalf("expected list to succeed, got %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", empty)
	}
}
