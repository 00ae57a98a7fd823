package services

import (
	"context"
	"errors"
	"testing"

	"nutritrack/models"
	"nutritrack/store"
)

type fakePusher struct {
	userID, title, body string
	attrs               map[string]string
	err                 error
}

func (f *fakePusher) Publish(_ context.Context, userID, title, body string, attrs map[string]string) error {
	f.userID, f.title, f.body, f.attrs = userID, title, body, attrs
	return f.err
}

func TestAlertBus_EmitFansOut(t *testing.T) {
	ms := store.NewMemoryStore()
	pub := &fakePublisher{}
	push := &fakePusher{err: errors.New("sns throttled")}
	bus := NewAlertBus(ms, pub, push)
	ctx := context.Background()

	a := bus.Emit(ctx, "u1", models.AlertGoalReached, "protein", "You reached your daily protein goal.")
	if a == nil || a.ID == "" {
		t.Fatalf("Emit returned %+v", a)
	}

	list, err := bus.List(ctx, "u1")
	if err != nil || len(list) != 1 {
		t.Fatalf("List = %+v, %v", list, err)
	}
	if kinds := pub.kinds(); len(kinds) != 1 || kinds[0] != "alert.created" {
		t.Errorf("broadcast kinds = %v", kinds)
	}
	if push.userID != "u1" || push.attrs["alertId"] != a.ID || push.attrs["nutrient"] != "protein" {
		t.Errorf("push = %+v", push)
	}
}

func TestAlertBus_NoSinks(t *testing.T) {
	bus := NewAlertBus(store.NewMemoryStore(), nil, nil)
	if a := bus.Emit(context.Background(), "u1", models.AlertGoalReached, "fat", "hello"); a == nil {
		t.Error("Emit with no sinks should still store the alert")
	}
}
