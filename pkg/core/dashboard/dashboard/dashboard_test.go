package dashboard_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/labworks/labman/pkg/common/code"
	"github.com/labworks/labman/pkg/common/uuid"
	core "github.com/labworks/labman/pkg/core/dashboard"
	impl "github.com/labworks/labman/pkg/core/dashboard/dashboard"
	"github.com/labworks/labman/pkg/middleware/auth"
	"github.com/labworks/labman/pkg/middleware/db"
	"github.com/labworks/labman/pkg/repo/model"
	"github.com/labworks/labman/pkg/utils"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestService(t *testing.T) (core.Service, *gorm.DB) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := gdb.AutoMigrate(&model.Event{}, &model.Reagent{}, &model.Protocol{}, &model.CalcRecord{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	db.SetDB(gdb)
	return impl.New(), gdb
}

func authedCtx(t *testing.T) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	ctx.Set(auth.USERKEY, &model.UserInfo{
		ID: 1, UUID: uuid.NewV4(), Username: "marie", Role: model.RoleResearcher,
	})
	return ctx
}

// day normalizes like the service does: the local calendar day pinned
// to UTC midnight.
func day(offset int) *time.Time {
	now := time.Now().AddDate(0, 0, offset)
	d := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}

func TestOverview(t *testing.T) {
	s, gdb := newTestService(t)
	ctx := authedCtx(t)

	events := []*model.Event{
		{Title: "Cell feeding", EventType: model.EventExperiment, StartDate: day(0), EndDate: day(0)},
		{Title: "Order pipette tips", EventType: model.EventOrder, StartDate: day(-2), EndDate: day(2)},
		{Title: "Done already", EventType: model.EventOther, StartDate: day(0), EndDate: day(0), Completed: true},
		{Title: "Next week", EventType: model.EventMeeting, StartDate: day(7), EndDate: day(7)},
	}
	for _, ev := range events {
		if err := gdb.Create(ev).Error; err != nil {
			t.Fatalf("seed event %s: %v", ev.Title, err)
		}
	}

	// One more reagent than the panel shows, so the cap is visible.
	for i := 0; i < 6; i++ {
		r := &model.Reagent{
			Name:         fmt.Sprintf("Reagent %d", i),
			Quantity:     float64(i),
			Unit:         "g",
			ReceivedDate: day(-i),
		}
		if err := gdb.Create(r).Error; err != nil {
			t.Fatalf("seed reagent %d: %v", i, err)
		}
	}

	if err := gdb.Create(&model.Protocol{
		Title: "Western blot", ProtocolType: model.ProtocolProtein, Steps: "Run gel",
	}).Error; err != nil {
		t.Fatalf("seed protocol: %v", err)
	}

	records := []*model.CalcRecord{
		{Kind: model.CalcSimpleDilution, CreatedBy: "marie"},
		{Kind: model.CalcBufferTris, CreatedBy: "pierre"},
	}
	for _, rec := range records {
		if err := gdb.Create(rec).Error; err != nil {
			t.Fatalf("seed record: %v", err)
		}
	}

	resp, err := s.Overview(ctx)
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}

	if want := day(0).Format(utils.DateLayout); resp.Date != want {
		t.Fatalf("date = %s, want %s", resp.Date, want)
	}
	if len(resp.TodayTasks) != 2 {
		t.Fatalf("today tasks = %d, want 2: %+v", len(resp.TodayTasks), resp.TodayTasks)
	}
	for _, task := range resp.TodayTasks {
		if task.Title == "Done already" || task.Title == "Next week" {
			t.Fatalf("unexpected task %q in today view", task.Title)
		}
	}
	if len(resp.RecentReagents) != 5 {
		t.Fatalf("recent reagents = %d, want 5", len(resp.RecentReagents))
	}
	if resp.RecentReagents[0].Name != "Reagent 0" {
		t.Fatalf("newest reagent = %s, want Reagent 0", resp.RecentReagents[0].Name)
	}
	if len(resp.RecentProtocols) != 1 || resp.RecentProtocols[0].Title != "Western blot" {
		t.Fatalf("recent protocols = %+v", resp.RecentProtocols)
	}
	// Calculator history is personal, unlike the lab-wide panels.
	if len(resp.RecentCalcs) != 1 || resp.RecentCalcs[0].Kind != model.CalcSimpleDilution {
		t.Fatalf("recent calcs = %+v", resp.RecentCalcs)
	}
}

func TestOverviewRequiresLogin(t *testing.T) {
	s, _ := newTestService(t)
	if _, err := s.Overview(context.Background()); !code.UnLogin.Is(err) {
		t.Fatalf("err = %v, want UnLogin", err)
	}
}
