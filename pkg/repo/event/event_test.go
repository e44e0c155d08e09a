package event_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labworks/labman/pkg/common/code"
	"github.com/labworks/labman/pkg/common/uuid"
	"github.com/labworks/labman/pkg/middleware/db"
	"github.com/labworks/labman/pkg/repo"
	repoEvent "github.com/labworks/labman/pkg/repo/event"
	"github.com/labworks/labman/pkg/repo/model"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) repo.EventRepo {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := gdb.AutoMigrate(&model.Event{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	db.SetDB(gdb)
	return repoEvent.NewEventRepo()
}

func day(y int, m time.Month, d int) *time.Time {
	d0 := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &d0
}

func seed(t *testing.T, r repo.EventRepo, events ...*model.Event) {
	t.Helper()
	for _, ev := range events {
		if err := r.CreateEvent(context.Background(), ev); err != nil {
			t.Fatalf("seed %s: %v", ev.Title, err)
		}
	}
}

func TestListEventsViews(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	seed(t, r,
		&model.Event{Title: "PCR run", EventType: model.EventExperiment, StartDate: day(2025, 5, 2), EndDate: day(2025, 5, 2)},
		&model.Event{Title: "Group meeting", EventType: model.EventMeeting, StartDate: day(2025, 5, 1), EndDate: day(2025, 5, 1), Completed: true},
		&model.Event{Title: "Autoclave service", EventType: model.EventMaintenance, StartDate: day(2025, 5, 3), EndDate: day(2025, 5, 4)},
	)

	list, total, err := r.ListEvents(ctx, repo.EventQuery{View: repo.EventViewAll})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if total != 3 {
		t.Fatalf("all total = %d, want 3", total)
	}
	if list[0].Title != "Group meeting" {
		t.Fatalf("expected start-date order, got %s first", list[0].Title)
	}

	_, total, err = r.ListEvents(ctx, repo.EventQuery{View: repo.EventViewPending})
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if total != 2 {
		t.Fatalf("pending total = %d, want 2", total)
	}

	list, total, err = r.ListEvents(ctx, repo.EventQuery{View: repo.EventViewCompleted})
	if err != nil {
		t.Fatalf("list completed: %v", err)
	}
	if total != 1 || list[0].Title != "Group meeting" {
		t.Fatalf("completed = %+v", list)
	}

	_, total, err = r.ListEvents(ctx, repo.EventQuery{Type: model.EventMaintenance})
	if err != nil {
		t.Fatalf("list by type: %v", err)
	}
	if total != 1 {
		t.Fatalf("maintenance total = %d, want 1", total)
	}
}

func TestCompleteEvent(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	ev := &model.Event{Title: "Order tips", EventType: model.EventOrder, StartDate: day(2025, 5, 2), EndDate: day(2025, 5, 2)}
	seed(t, r, ev)

	if err := r.CompleteEventByUUID(ctx, ev.UUID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	list, _, err := r.ListEvents(ctx, repo.EventQuery{View: repo.EventViewCompleted})
	if err != nil {
		t.Fatalf("list completed: %v", err)
	}
	if len(list) != 1 || !list[0].Completed {
		t.Fatalf("event not completed: %+v", list)
	}

	// Completing an already-done event is a no-op, not an error.
	if err := r.CompleteEventByUUID(ctx, ev.UUID); err != nil {
		t.Fatalf("second complete: %v", err)
	}

	if err := r.CompleteEventByUUID(ctx, uuid.NewV4()); !code.RecordNotFound.Is(err) {
		t.Fatalf("unknown uuid err = %v, want RecordNotFound", err)
	}
}

func TestDeleteEvent(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	ev := &model.Event{Title: "Cancelled demo", EventType: model.EventOther, StartDate: day(2025, 5, 2), EndDate: day(2025, 5, 2)}
	seed(t, r, ev)

	if err := r.DeleteEventByUUID(ctx, ev.UUID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, total, err := r.ListEvents(ctx, repo.EventQuery{})
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if total != 0 {
		t.Fatalf("total = %d after delete, want 0", total)
	}

	if err := r.DeleteEventByUUID(ctx, ev.UUID); !code.RecordNotFound.Is(err) {
		t.Fatalf("second delete err = %v, want RecordNotFound", err)
	}
}

func TestTodayEvents(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	today := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)

	seed(t, r,
		&model.Event{Title: "Spanning", EventType: model.EventExperiment, StartDate: day(2025, 5, 8), EndDate: day(2025, 5, 12)},
		&model.Event{Title: "Single day", EventType: model.EventMeeting, StartDate: day(2025, 5, 10), EndDate: day(2025, 5, 10)},
		&model.Event{Title: "Done already", EventType: model.EventExperiment, StartDate: day(2025, 5, 9), EndDate: day(2025, 5, 11), Completed: true},
		&model.Event{Title: "Ended yesterday", EventType: model.EventOther, StartDate: day(2025, 5, 7), EndDate: day(2025, 5, 9)},
		&model.Event{Title: "Starts tomorrow", EventType: model.EventOther, StartDate: day(2025, 5, 11), EndDate: day(2025, 5, 11)},
	)

	list, err := r.TodayEvents(ctx, today)
	if err != nil {
		t.Fatalf("TodayEvents: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("today count = %d, want 2: %+v", len(list), list)
	}
	if list[0].Title != "Spanning" || list[1].Title != "Single day" {
		t.Fatalf("today order = %s, %s", list[0].Title, list[1].Title)
	}
}

func TestEventsEndingAfter(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	cutoff := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)

	seed(t, r,
		&model.Event{Title: "Long past", EventType: model.EventOther, StartDate: day(2025, 3, 1), EndDate: day(2025, 3, 2)},
		&model.Event{Title: "Ends on cutoff", EventType: model.EventOther, StartDate: day(2025, 4, 9), EndDate: day(2025, 4, 10)},
		&model.Event{Title: "Future", EventType: model.EventOther, StartDate: day(2025, 5, 1), EndDate: day(2025, 5, 1)},
	)

	list, err := r.EventsEndingAfter(ctx, cutoff)
	if err != nil {
		t.Fatalf("EventsEndingAfter: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("count = %d, want 2: %+v", len(list), list)
	}
	if list[0].Title != "Ends on cutoff" || list[1].Title != "Future" {
		t.Fatalf("order = %s, %s", list[0].Title, list[1].Title)
	}
}
