package services

import (
	"context"
	"log"
	"time"

	"nutritrack/models"
)

// Pusher delivers an out-of-band notification for a user.
type Pusher interface {
	Publish(ctx context.Context, userID, title, body string, attrs map[string]string) error
}

// AlertBus persists alerts and fans them out to realtime and push.
type AlertBus struct {
	store AlertStore
	rt    EventPublisher
	ps    Pusher
}

// NewAlertBus wires the bus; rt and ps may be nil.
func NewAlertBus(store AlertStore, rt EventPublisher, ps Pusher) *AlertBus {
	return &AlertBus{store: store, rt: rt, ps: ps}
}

// Emit is best effort: failures are logged, never returned.
func (b *AlertBus) Emit(ctx context.Context, userID, typ, nutrient, message string) *models.Alert {
	a := &models.Alert{
		UserID:    userID,
		Type:      typ,
		Nutrient:  nutrient,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	if err := b.store.CreateAlert(ctx, a); err != nil {
		log.Printf("alert for %s not stored: %v", userID, err)
		return nil
	}

	if b.rt != nil {
		b.rt.Broadcast(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
	if b.ps != nil {
		attrs := map[string]string{"type": typ, "alertId": a.ID}
		if nutrient != "" {
			attrs["nutrient"] = nutrient
		}
		if err := b.ps.Publish(ctx, userID, "New Alert", message, attrs); err != nil {
			log.Printf("push for alert %s failed: %v", a.ID, err)
		}
	}
	return a
}

func (b *AlertBus) List(ctx context.Context, userID string) ([]models.Alert, error) {
	return b.store.ListAlerts(ctx, userID)
}
