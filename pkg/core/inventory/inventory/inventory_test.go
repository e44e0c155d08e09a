package inventory_test

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
	core "github.com/labworks/labman/pkg/core/inventory"
	impl "github.com/labworks/labman/pkg/core/inventory/inventory"
	"github.com/labworks/labman/pkg/middleware/auth"
	"github.com/labworks/labman/pkg/middleware/db"
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
	if err := gdb.AutoMigrate(&model.Reagent{}); err != nil {
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

func dayOffset(n int) string {
	return time.Now().AddDate(0, 0, n).Format(utils.DateLayout)
}

func floatPtr(f float64) *float64 { return &f }

func TestCreateReagent(t *testing.T) {
	s := newTestService(t)
	ctx := authedCtx(t)

	created, err := s.Create(ctx, &core.CreateReagentReq{
		Name:         "Ethanol",
		CASNumber:    "64-17-5",
		Quantity:     2.5,
		Unit:         "L",
		ReceivedDate: dayOffset(-7),
		ExpiryDate:   dayOffset(180),
		HazardClass:  model.HazardFlammable,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.UUID == "" {
		t.Fatal("expected a uuid on create")
	}

	resp, err := s.Query(ctx, &core.QueryReagentReq{})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if resp.Total != 1 {
		t.Fatalf("total = %d, want 1", resp.Total)
	}
	item := resp.List[0]
	if item.Name != "Ethanol" || item.HazardClass != model.HazardFlammable {
		t.Fatalf("item = %+v", item)
	}
	if item.ExpiryDate != dayOffset(180) {
		t.Fatalf("expiry = %s, want %s", item.ExpiryDate, dayOffset(180))
	}
	if item.CreatedBy != "marie" {
		t.Fatalf("created_by = %q", item.CreatedBy)
	}

	// Hazard defaults to None when the client leaves it out.
	if _, err := s.Create(ctx, &core.CreateReagentReq{Name: "Water"}); err != nil {
		t.Fatalf("Create minimal: %v", err)
	}
	resp, err = s.Query(ctx, &core.QueryReagentReq{Search: "water"})
	if err != nil {
		t.Fatalf("Query water: %v", err)
	}
	if resp.List[0].HazardClass != model.HazardNone {
		t.Fatalf("hazard = %q, want None", resp.List[0].HazardClass)
	}

	_, err = s.Create(ctx, &core.CreateReagentReq{Name: "Bad", ExpiryDate: "06/01/2026"})
	if !code.ParamErr.Is(err) {
		t.Fatalf("bad expiry err = %v, want ParamErr", err)
	}
}

func TestQueryOrderWhitelist(t *testing.T) {
	s := newTestService(t)
	ctx := authedCtx(t)

	for _, r := range []core.CreateReagentReq{
		{Name: "Acetone", Quantity: 5},
		{Name: "Ethanol", Quantity: 1},
	} {
		req := r
		if _, err := s.Create(ctx, &req); err != nil {
			t.Fatalf("seed %s: %v", r.Name, err)
		}
	}

	resp, err := s.Query(ctx, &core.QueryReagentReq{OrderBy: "quantity"})
	if err != nil {
		t.Fatalf("Query ordered: %v", err)
	}
	if resp.List[0].Name != "Ethanol" {
		t.Fatalf("quantity order first = %s, want Ethanol", resp.List[0].Name)
	}

	_, err = s.Query(ctx, &core.QueryReagentReq{OrderBy: "uuid; DROP TABLE reagents"})
	if !code.ParamErr.Is(err) {
		t.Fatalf("unlisted order column err = %v, want ParamErr", err)
	}
}

func TestUpdateQuantity(t *testing.T) {
	s := newTestService(t)
	ctx := authedCtx(t)

	created, err := s.Create(ctx, &core.CreateReagentReq{Name: "Agarose", Quantity: 100, Unit: "g"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Zero is a legal quantity: the bottle is used up.
	if err := s.UpdateQuantity(ctx, &core.UpdateQuantityReq{UUID: created.UUID, Quantity: floatPtr(0)}); err != nil {
		t.Fatalf("UpdateQuantity: %v", err)
	}
	resp, err := s.Query(ctx, &core.QueryReagentReq{Search: "agarose"})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if resp.List[0].Quantity != 0 {
		t.Fatalf("quantity = %v, want 0", resp.List[0].Quantity)
	}

	err = s.UpdateQuantity(ctx, &core.UpdateQuantityReq{UUID: uuid.NewV4().String(), Quantity: floatPtr(1)})
	if !code.RecordNotFound.Is(err) {
		t.Fatalf("unknown reagent err = %v, want RecordNotFound", err)
	}
	err = s.UpdateQuantity(ctx, &core.UpdateQuantityReq{UUID: "nope", Quantity: floatPtr(1)})
	if !code.ParamErr.Is(err) {
		t.Fatalf("malformed uuid err = %v, want ParamErr", err)
	}
}

func TestAlerts(t *testing.T) {
	s := newTestService(t)
	ctx := authedCtx(t)

	for _, r := range []core.CreateReagentReq{
		{Name: "Expiring soon", Quantity: 50, ExpiryDate: dayOffset(10)},
		{Name: "Expired already", Quantity: 50, ExpiryDate: dayOffset(-1)},
		{Name: "Far future", Quantity: 50, ExpiryDate: dayOffset(300)},
		{Name: "Low stock", Quantity: 2, Unit: "mL"},
		{Name: "No expiry", Quantity: 50},
	} {
		req := r
		if _, err := s.Create(ctx, &req); err != nil {
			t.Fatalf("seed %s: %v", r.Name, err)
		}
	}

	resp, err := s.Alerts(ctx, &core.AlertsReq{WindowDays: 30, Threshold: 5})
	if err != nil {
		t.Fatalf("Alerts: %v", err)
	}
	if resp.WindowDays != 30 || resp.Threshold != 5 {
		t.Fatalf("echoed knobs = %d/%v", resp.WindowDays, resp.Threshold)
	}
	if len(resp.Expiring) != 1 || resp.Expiring[0].Name != "Expiring soon" {
		t.Fatalf("expiring = %+v", resp.Expiring)
	}
	if d := resp.Expiring[0].DaysToExpiry; d != 10 {
		t.Fatalf("days to expiry = %d, want 10", d)
	}
	if len(resp.LowStock) != 1 || resp.LowStock[0].Name != "Low stock" {
		t.Fatalf("low stock = %+v", resp.LowStock)
	}
	if resp.ExpirySeries == nil || len(resp.ExpirySeries.Points) != 1 {
		t.Fatalf("series = %+v", resp.ExpirySeries)
	}

	// Omitted knobs fall back to the configured defaults.
	resp, err = s.Alerts(ctx, &core.AlertsReq{})
	if err != nil {
		t.Fatalf("Alerts default: %v", err)
	}
	if resp.WindowDays <= 0 || resp.Threshold <= 0 {
		t.Fatalf("defaults not applied: %d/%v", resp.WindowDays, resp.Threshold)
	}
}
