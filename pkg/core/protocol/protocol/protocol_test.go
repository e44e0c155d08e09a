package protocol_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/labworks/labman/pkg/common/code"
	"github.com/labworks/labman/pkg/common/uuid"
	core "github.com/labworks/labman/pkg/core/protocol"
	impl "github.com/labworks/labman/pkg/core/protocol/protocol"
	"github.com/labworks/labman/pkg/middleware/auth"
	"github.com/labworks/labman/pkg/middleware/db"
	"github.com/labworks/labman/pkg/repo/model"
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
	if err := gdb.AutoMigrate(&model.Protocol{}); err != nil {
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

func TestCreateAndGetProtocol(t *testing.T) {
	s := newTestService(t)
	ctx := authedCtx(t)

	created, err := s.Create(ctx, &core.CreateProtocolReq{
		Title:        "Plasmid miniprep",
		ProtocolType: model.ProtocolDNARNA,
		Description:  "Column-based extraction",
		Steps:        "Pellet 2 mL culture\n\n  Resuspend in P1  \nLyse with P2\n",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.UUID == "" {
		t.Fatal("expected a uuid on create")
	}

	detail, err := s.Get(ctx, &core.GetProtocolReq{UUID: created.UUID})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	want := []string{"Pellet 2 mL culture", "Resuspend in P1", "Lyse with P2"}
	if len(detail.Steps) != len(want) {
		t.Fatalf("steps = %v, want %v", detail.Steps, want)
	}
	for i := range want {
		if detail.Steps[i] != want[i] {
			t.Fatalf("step %d = %q, want %q", i, detail.Steps[i], want[i])
		}
	}
	if detail.CreatedBy != "marie" {
		t.Fatalf("created_by = %q", detail.CreatedBy)
	}
}

func TestCreateRejectsBlankSteps(t *testing.T) {
	s := newTestService(t)
	_, err := s.Create(authedCtx(t), &core.CreateProtocolReq{
		Title:        "Empty",
		ProtocolType: model.ProtocolOther,
		Steps:        "\n   \n\t\n",
	})
	if !code.ParamErr.Is(err) {
		t.Fatalf("blank steps err = %v, want ParamErr", err)
	}
}

func TestQueryProtocols(t *testing.T) {
	s := newTestService(t)
	ctx := authedCtx(t)

	seed := []core.CreateProtocolReq{
		{Title: "Western blot", ProtocolType: model.ProtocolProtein, Steps: "Run gel\nTransfer\nBlock"},
		{Title: "Miniprep", ProtocolType: model.ProtocolDNARNA, Steps: "Pellet\nLyse"},
		{Title: "Passage HeLa cells", ProtocolType: model.ProtocolCellCulture, Steps: "Aspirate\nWash\nTrypsinize\nSplit"},
	}
	for i := range seed {
		if _, err := s.Create(ctx, &seed[i]); err != nil {
			t.Fatalf("seed %s: %v", seed[i].Title, err)
		}
	}

	resp, err := s.Query(ctx, &core.QueryProtocolReq{})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if resp.Total != 3 || len(resp.List) != 3 {
		t.Fatalf("total = %d, len = %d, want 3/3", resp.Total, len(resp.List))
	}

	resp, err = s.Query(ctx, &core.QueryProtocolReq{Type: model.ProtocolCellCulture})
	if err != nil {
		t.Fatalf("Query by type: %v", err)
	}
	if resp.Total != 1 || resp.List[0].Title != "Passage HeLa cells" {
		t.Fatalf("cell culture query = %+v", resp.List)
	}
	if resp.List[0].StepCount != 4 {
		t.Fatalf("step count = %d, want 4", resp.List[0].StepCount)
	}

	resp, err = s.Query(ctx, &core.QueryProtocolReq{Search: "blot"})
	if err != nil {
		t.Fatalf("Query by search: %v", err)
	}
	if resp.Total != 1 || resp.List[0].Title != "Western blot" {
		t.Fatalf("search query = %+v", resp.List)
	}
}

func TestGetProtocolErrors(t *testing.T) {
	s := newTestService(t)
	ctx := authedCtx(t)

	if _, err := s.Get(ctx, &core.GetProtocolReq{UUID: "not-a-uuid"}); !code.ParamErr.Is(err) {
		t.Fatalf("malformed uuid err = %v, want ParamErr", err)
	}
	if _, err := s.Get(ctx, &core.GetProtocolReq{UUID: uuid.NewV4().String()}); !code.RecordNotFound.Is(err) {
		t.Fatalf("unknown uuid err = %v, want RecordNotFound", err)
	}
}

func TestProtocolRequiresLogin(t *testing.T) {
	s := newTestService(t)
	if _, err := s.Query(context.Background(), &core.QueryProtocolReq{}); !code.UnLogin.Is(err) {
		t.Fatalf("anonymous query err = %v, want UnLogin", err)
	}
}
