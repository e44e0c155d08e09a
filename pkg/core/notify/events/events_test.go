package events_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/labworks/labman/pkg/common/code"
	"github.com/labworks/labman/pkg/common/uuid"
	"github.com/labworks/labman/pkg/core/notify"
	"github.com/labworks/labman/pkg/core/notify/events"
)

// The center is a process singleton, so one test walks it through its
// whole life: register, duplicate, broadcast, close, closed errors.
func TestCenterLifecycle(t *testing.T) {
	ctx := context.Background()
	center := events.NewEvents()

	got := make(chan string, 1)
	if err := center.Registry(ctx, notify.InventoryAlert, func(_ context.Context, msg string) error {
		got <- msg
		return nil
	}); err != nil {
		t.Fatalf("Registry: %v", err)
	}

	err := center.Registry(ctx, notify.InventoryAlert, func(context.Context, string) error { return nil })
	if !code.NotifyDupActionErr.Is(err) {
		t.Fatalf("duplicate registry err = %v, want NotifyDupActionErr", err)
	}

	if err := center.Broadcast(ctx, &notify.SendMsg{
		Channel: notify.InventoryAlert,
		Data:    map[string]string{"name": "Ethanol"},
	}); err != nil {
		t.Fatalf("Broadcast: %v", err)
	}

	select {
	case payload := <-got:
		var msg notify.SendMsg
		if err := json.Unmarshal([]byte(payload), &msg); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		if msg.UUID == uuid.Nil || msg.Timestamp == 0 {
			t.Fatalf("envelope not stamped: %+v", msg)
		}
		if msg.Channel != notify.InventoryAlert {
			t.Fatalf("channel = %s", msg.Channel)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("handler never ran")
	}

	// Broadcasts to channels nobody listens on are dropped, not errors.
	if err := center.Broadcast(ctx, &notify.SendMsg{Channel: notify.PlannerChange}); err != nil {
		t.Fatalf("Broadcast without handler: %v", err)
	}

	if err := center.Close(ctx); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := center.Close(ctx); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	if err := center.Broadcast(ctx, &notify.SendMsg{Channel: notify.InventoryAlert}); !code.NotifyClosedErr.Is(err) {
		t.Fatalf("broadcast after close err = %v, want NotifyClosedErr", err)
	}
	if err := center.Registry(ctx, notify.PlannerChange, func(context.Context, string) error { return nil }); !code.NotifyClosedErr.Is(err) {
		t.Fatalf("registry after close err = %v, want NotifyClosedErr", err)
	}
}
