package repository

import (
	"context"
	"encoding/json"
	"testing"

	"lexigrain_schedule/internal/model"
	"lexigrain_schedule/internal/util"
)

// memStore 测试用内存键值实现
type memStore struct {
	data map[string]string
}

func newMemStore() *memStore {
	return &memStore{data: map[string]string{}}
}

func (m *memStore) Get(ctx context.Context, key string) (string, error) {
	val, ok := m.data[key]
	if !ok {
		return "", util.ErrKeyNotFound
	}
	return val, nil
}

func (m *memStore) Set(ctx context.Context, key, value string) error {
	m.data[key] = value
	return nil
}

func (m *memStore) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func TestScheduleRepositoryLoadEmpty(t *testing.T) {
	t.Parallel()
	repo := NewScheduleRepository(newMemStore())

	weeks, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if weeks == nil || len(weeks) != 0 {
		t.Fatalf("expected empty store, got %v", weeks)
	}
}

func TestScheduleRepositoryRoundTrip(t *testing.T) {
	t.Parallel()
	repo := NewScheduleRepository(newMemStore())
	ctx := context.Background()

	in := model.WeekStore{
		"2024-W10": {
			Sessions: []model.ScheduleSession{
				{ID: "s1", LessonID: "lesson-1", Date: "2024-03-04", PlannedMinutes: 60, Status: model.SessionPlanned},
			},
			Source: model.SourceOnboarding,
		},
	}
	if err := repo.Save(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	rec, ok := out["2024-W10"]
	if !ok || len(rec.Sessions) != 1 || rec.Sessions[0].ID != "s1" || rec.Source != model.SourceOnboarding {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestScheduleRepositoryMigratesLegacyKey(t *testing.T) {
	t.Parallel()
	store := newMemStore()
	ctx := context.Background()

	legacy := model.WeekStore{
		"2023-W50": {
			Sessions: []model.ScheduleSession{
				{ID: "old", LessonID: "lesson-2", Date: "2023-12-11", PlannedMinutes: 45, Status: model.SessionDone},
			},
			Source: model.SourceAPI,
		},
	}
	raw, _ := json.Marshal(legacy)
	store.data[util.LegacyKeySchedule] = string(raw)

	repo := NewScheduleRepository(store)
	weeks, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, ok := weeks["2023-W50"]; !ok {
		t.Fatalf("legacy data not loaded: %v", weeks)
	}

	// 旧键内容镜像到新键，旧键保留
	if store.data[util.StorageKeySchedule] != string(raw) {
		t.Errorf("legacy value not mirrored to current key")
	}
	if _, ok := store.data[util.LegacyKeySchedule]; !ok {
		t.Errorf("legacy key should be kept")
	}
}

func TestScheduleRepositoryPrefersCurrentKey(t *testing.T) {
	t.Parallel()
	store := newMemStore()
	ctx := context.Background()

	current, _ := json.Marshal(model.WeekStore{"2024-W01": {Source: model.SourceAPI}})
	legacy, _ := json.Marshal(model.WeekStore{"2020-W01": {Source: model.SourceMock}})
	store.data[util.StorageKeySchedule] = string(current)
	store.data[util.LegacyKeySchedule] = string(legacy)

	weeks, err := NewScheduleRepository(store).Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, ok := weeks["2024-W01"]; !ok {
		t.Fatalf("expected current key to win, got %v", weeks)
	}
	if _, ok := weeks["2020-W01"]; ok {
		t.Fatalf("legacy data should not be read when current key exists")
	}
}

func TestScheduleRepositoryCorruptPayload(t *testing.T) {
	t.Parallel()
	store := newMemStore()
	store.data[util.StorageKeySchedule] = "{not json"

	if _, err := NewScheduleRepository(store).Load(context.Background()); err == nil {
		t.Fatal("expected error for corrupt payload")
	}
}

func TestOnboardingRepositoryAbsentReturnsNil(t *testing.T) {
	t.Parallel()
	repo := NewOnboardingRepository(newMemStore())

	prefs, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if prefs != nil {
		t.Fatalf("expected nil for absent draft, got %+v", prefs)
	}
}

func TestOnboardingRepositoryMigratesLegacyKey(t *testing.T) {
	t.Parallel()
	store := newMemStore()
	raw, _ := json.Marshal(model.OnboardingPreferences{DailyHours: 2, SchedulePreset: "Custom", DaysOfWeek: []string{"Mon", "Wed"}})
	store.data[util.LegacyKeyOnboarding] = string(raw)

	prefs, err := NewOnboardingRepository(store).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if prefs == nil || prefs.DailyHours != 2 || prefs.SchedulePreset != "Custom" {
		t.Fatalf("legacy draft not loaded: %+v", prefs)
	}
	if store.data[util.StorageKeyOnboarding] != string(raw) {
		t.Errorf("legacy draft not mirrored forward")
	}
}

func TestAuthRepositoryTokenLifecycle(t *testing.T) {
	t.Parallel()
	repo := NewAuthRepository(newMemStore())
	ctx := context.Background()

	token, err := repo.Token(ctx)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if token != "" {
		t.Fatalf("expected empty token, got %q", token)
	}

	if err := repo.SaveToken(ctx, "abc"); err != nil {
		t.Fatalf("save token: %v", err)
	}
	token, _ = repo.Token(ctx)
	if token != "abc" {
		t.Fatalf("token = %q, want abc", token)
	}

	if err := repo.ClearToken(ctx); err != nil {
		t.Fatalf("clear token: %v", err)
	}
	token, _ = repo.Token(ctx)
	if token != "" {
		t.Fatalf("token after clear = %q", token)
	}
}
