package dashboard

import (
	"github.com/gin-gonic/gin"
	"github.com/labworks/labman/pkg/common"
	core "github.com/labworks/labman/pkg/core/dashboard"
	impl "github.com/labworks/labman/pkg/core/dashboard/dashboard"
)

type Handle struct {
	dService core.Service
}

func NewDashboardHandle() *Handle {
	return &Handle{dService: impl.New()}
}

func (d *Handle) Overview(ctx *gin.Context) {
	resp, err := d.dService.Overview(ctx)
	common.Reply(ctx, err, resp)
}
