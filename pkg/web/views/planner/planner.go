package planner

import (
	"github.com/gin-gonic/gin"
	"github.com/labworks/labman/pkg/common"
	"github.com/labworks/labman/pkg/common/code"
	core "github.com/labworks/labman/pkg/core/planner"
	impl "github.com/labworks/labman/pkg/core/planner/planner"
	"github.com/labworks/labman/pkg/middleware/logger"
)

type Handle struct {
	pService core.Service
}

func NewPlannerHandle() *Handle {
	return &Handle{pService: impl.New()}
}

func (p *Handle) Create(ctx *gin.Context) {
	req := &core.CreateEventReq{}
	if err := ctx.ShouldBindJSON(req); err != nil {
		logger.Errorf(ctx, "parse CreateEvent param err: %+v", err.Error())
		common.ReplyErr(ctx, code.ParamErr, err.Error())
		return
	}
	resp, err := p.pService.Create(ctx, req)
	common.Reply(ctx, err, resp)
}

func (p *Handle) Query(ctx *gin.Context) {
	req := &core.QueryEventReq{}
	if err := ctx.ShouldBindQuery(req); err != nil {
		logger.Errorf(ctx, "parse QueryEvent param err: %+v", err.Error())
		common.ReplyErr(ctx, code.ParamErr, err.Error())
		return
	}
	resp, err := p.pService.Query(ctx, req)
	common.Reply(ctx, err, resp)
}

func (p *Handle) Complete(ctx *gin.Context) {
	req := &core.CompleteEventReq{}
	if err := ctx.ShouldBindJSON(req); err != nil {
		logger.Errorf(ctx, "parse CompleteEvent param err: %+v", err.Error())
		common.ReplyErr(ctx, code.ParamErr, err.Error())
		return
	}
	err := p.pService.Complete(ctx, req)
	common.Reply(ctx, err)
}

func (p *Handle) Delete(ctx *gin.Context) {
	req := &core.DeleteEventReq{}
	if err := ctx.ShouldBindQuery(req); err != nil {
		logger.Errorf(ctx, "parse DeleteEvent param err: %+v", err.Error())
		common.ReplyErr(ctx, code.ParamErr, err.Error())
		return
	}
	err := p.pService.Delete(ctx, req)
	common.Reply(ctx, err)
}

func (p *Handle) Calendar(ctx *gin.Context) {
	resp, err := p.pService.Calendar(ctx)
	common.Reply(ctx, err, resp)
}

func (p *Handle) Today(ctx *gin.Context) {
	resp, err := p.pService.Today(ctx)
	common.Reply(ctx, err, resp)
}
