package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"nutritrack/config"
	"nutritrack/models"
	"nutritrack/store"
)

func TestSyncProfile_CreatesThenRefreshes(t *testing.T) {
	ms := store.NewMemoryStore()
	svc := NewUserService(ms, config.DefaultGoals)
	ctx := context.Background()

	first := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return first }

	u, err := svc.SyncProfile(ctx, Identity{UID: "u1", Email: "a@example.com", Name: "Ana"})
	if err != nil {
		t.Fatalf("SyncProfile: %v", err)
	}
	if u.NutritionGoals != config.DefaultGoals {
		t.Errorf("new profile goals = %+v, want defaults", u.NutritionGoals)
	}

	custom := models.Nutrients{Calories: 1800, Protein: 120, Carbs: 200, Fat: 60, Fiber: 25, Sugar: 40}
	if _, err := svc.UpdateGoals(ctx, "u1", custom); err != nil {
		t.Fatalf("UpdateGoals: %v", err)
	}

	later := first.Add(48 * time.Hour)
	svc.now = func() time.Time { return later }
	u, err = svc.SyncProfile(ctx, Identity{UID: "u1", Name: "Ana B"})
	if err != nil {
		t.Fatalf("SyncProfile again: %v", err)
	}
	if u.LastLogin == nil || !u.LastLogin.Equal(later) {
		t.Errorf("last_login = %v, want %v", u.LastLogin, later)
	}
	if u.Name != "Ana B" || u.Email != "a@example.com" {
		t.Errorf("identity = %q %q", u.Name, u.Email)
	}
	if u.NutritionGoals != custom {
		t.Errorf("goals overwritten on login: %+v", u.NutritionGoals)
	}
}

func TestUserService_UnknownUser(t *testing.T) {
	svc := NewUserService(store.NewMemoryStore(), config.DefaultGoals)
	ctx := context.Background()

	if _, err := svc.GetProfile(ctx, "ghost"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("GetProfile err = %v, want ErrNotFound", err)
	}
	if _, err := svc.UpdateGoals(ctx, "ghost", config.DefaultGoals); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("UpdateGoals err = %v, want ErrNotFound", err)
	}
	if _, err := svc.UpdateGoals(ctx, "ghost", models.Nutrients{}); !errors.Is(err, ErrInvalidGoals) {
		t.Errorf("UpdateGoals(all zero) err = %v, want ErrInvalidGoals", err)
	}
	if _, err := svc.SyncProfile(ctx, Identity{}); !errors.Is(err, ErrMissingUser) {
		t.Errorf("SyncProfile err = %v, want ErrMissingUser", err)
	}
}
