package planner_test

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/labworks/labman/pkg/common/code"
	"github.com/labworks/labman/pkg/common/uuid"
	core "github.com/labworks/labman/pkg/core/planner"
	impl "github.com/labworks/labman/pkg/core/planner/planner"
	"github.com/labworks/labman/pkg/middleware/auth"
	"github.com/labworks/labman/pkg/middleware/db"
	"github.com/labworks/labman/pkg/repo"
	"github.com/labworks/labman/pkg/repo/model"
	"github.com/labworks/labman/pkg/utils"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestService(t *testing.T) core.Service {
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
	return impl.New()
}

func authedCtx(t *testing.T) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	ctx.Set(auth.USERKEY, &model.UserInfo{
		ID: 1, UUID: uuid.NewV4(), Username: "marie", Role: model.RoleResearcher,
	})
	return ctx
}

// dayOffset formats today+n the way the planner normalizes dates.
func dayOffset(n int) string {
	return time.Now().AddDate(0, 0, n).Format(utils.DateLayout)
}

func TestCreateEventValidation(t *testing.T) {
	s := newTestService(t)
	ctx := authedCtx(t)

	_, err := s.Create(ctx, &core.CreateEventReq{
		Title:     "Backwards",
		StartDate: dayOffset(1),
		EndDate:   dayOffset(0),
		EventType: model.EventMeeting,
	})
	if !code.ParamErr.Is(err) {
		t.Fatalf("end before start err = %v, want ParamErr", err)
	}

	_, err = s.Create(ctx, &core.CreateEventReq{
		Title:     "Bad date",
		StartDate: "yesterday",
		EndDate:   dayOffset(0),
		EventType: model.EventMeeting,
	})
	if !code.ParamErr.Is(err) {
		t.Fatalf("bad date err = %v, want ParamErr", err)
	}
}

func TestCreateAndQueryEvents(t *testing.T) {
	s := newTestService(t)
	ctx := authedCtx(t)

	created, err := s.Create(ctx, &core.CreateEventReq{
		Title:     "Gel electrophoresis",
		StartDate: dayOffset(0),
		EndDate:   dayOffset(0),
		EventType: model.EventExperiment,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.UUID == "" {
		t.Fatal("expected a uuid on create")
	}

	resp, err := s.Query(ctx, &core.QueryEventReq{View: repo.EventViewPending})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if resp.Total != 1 || len(resp.List) != 1 {
		t.Fatalf("pending total = %d, len = %d", resp.Total, len(resp.List))
	}
	item := resp.List[0]
	if item.Title != "Gel electrophoresis" || item.Completed {
		t.Fatalf("item = %+v", item)
	}
	if item.StartDate != dayOffset(0) || item.EndDate != dayOffset(0) {
		t.Fatalf("dates = %s..%s, want %s", item.StartDate, item.EndDate, dayOffset(0))
	}
	if item.Frequency != model.FreqOneTime {
		t.Fatalf("frequency = %q, want default One-time", item.Frequency)
	}
	if item.CreatedBy != "marie" {
		t.Fatalf("created_by = %q", item.CreatedBy)
	}
}

func TestCompleteAndDeleteEvent(t *testing.T) {
	s := newTestService(t)
	ctx := authedCtx(t)

	created, err := s.Create(ctx, &core.CreateEventReq{
		Title:     "Order pipette tips",
		StartDate: dayOffset(0),
		EndDate:   dayOffset(0),
		EventType: model.EventOrder,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := s.Complete(ctx, &core.CompleteEventReq{UUID: "nope"}); !code.ParamErr.Is(err) {
		t.Fatalf("malformed uuid err = %v, want ParamErr", err)
	}
	if err := s.Complete(ctx, &core.CompleteEventReq{UUID: created.UUID}); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	resp, err := s.Query(ctx, &core.QueryEventReq{View: repo.EventViewCompleted})
	if err != nil {
		t.Fatalf("Query completed: %v", err)
	}
	if resp.Total != 1 || !resp.List[0].Completed {
		t.Fatalf("completed view = %+v", resp.List)
	}

	if err := s.Delete(ctx, &core.DeleteEventReq{UUID: created.UUID}); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, &core.DeleteEventReq{UUID: created.UUID}); !code.RecordNotFound.Is(err) {
		t.Fatalf("second delete err = %v, want RecordNotFound", err)
	}
}

func TestCalendarBuckets(t *testing.T) {
	s := newTestService(t)
	ctx := authedCtx(t)

	seed := []core.CreateEventReq{
		{Title: "Culture growth", StartDate: dayOffset(0), EndDate: dayOffset(2), EventType: model.EventExperiment},
		{Title: "Progress meeting", StartDate: dayOffset(1), EndDate: dayOffset(1), EventType: model.EventMeeting},
	}
	for i := range seed {
		if _, err := s.Create(ctx, &seed[i]); err != nil {
			t.Fatalf("seed %s: %v", seed[i].Title, err)
		}
	}

	resp, err := s.Calendar(ctx)
	if err != nil {
		t.Fatalf("Calendar: %v", err)
	}
	wantFrom := time.Now().AddDate(0, -1, 0).Format(utils.DateLayout)
	if resp.From != wantFrom {
		t.Fatalf("from = %s, want %s", resp.From, wantFrom)
	}

	if len(resp.Days) != 3 {
		t.Fatalf("days = %d, want 3: %+v", len(resp.Days), resp.Days)
	}
	for i, want := range []string{dayOffset(0), dayOffset(1), dayOffset(2)} {
		if resp.Days[i].Date != want {
			t.Fatalf("day %d = %s, want %s", i, resp.Days[i].Date, want)
		}
	}
	if n := len(resp.Days[1].Events); n != 2 {
		t.Fatalf("middle day events = %d, want 2", n)
	}
	if n := len(resp.Days[0].Events); n != 1 {
		t.Fatalf("first day events = %d, want 1", n)
	}
}

func TestTodayView(t *testing.T) {
	s := newTestService(t)
	ctx := authedCtx(t)

	seed := []core.CreateEventReq{
		{Title: "Spanning incubation", StartDate: dayOffset(-1), EndDate: dayOffset(1), EventType: model.EventExperiment},
		{Title: "Today only", StartDate: dayOffset(0), EndDate: dayOffset(0), EventType: model.EventMeeting},
		{Title: "Tomorrow", StartDate: dayOffset(1), EndDate: dayOffset(1), EventType: model.EventOther},
	}
	for i := range seed {
		if _, err := s.Create(ctx, &seed[i]); err != nil {
			t.Fatalf("seed %s: %v", seed[i].Title, err)
		}
	}

	resp, err := s.Today(ctx)
	if err != nil {
		t.Fatalf("Today: %v", err)
	}
	if resp.Date != dayOffset(0) {
		t.Fatalf("date = %s, want %s", resp.Date, dayOffset(0))
	}
	if len(resp.Events) != 2 {
		t.Fatalf("today events = %d, want 2: %+v", len(resp.Events), resp.Events)
	}
}
