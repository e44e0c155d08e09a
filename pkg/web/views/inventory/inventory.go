package inventory

import (
	"github.com/gin-gonic/gin"
	"github.com/labworks/labman/pkg/common"
	"github.com/labworks/labman/pkg/common/code"
	core "github.com/labworks/labman/pkg/core/inventory"
	impl "github.com/labworks/labman/pkg/core/inventory/inventory"
	"github.com/labworks/labman/pkg/middleware/logger"
)

type Handle struct {
	iService core.Service
}

func NewInventoryHandle() *Handle {
	return &Handle{iService: impl.New()}
}

func (i *Handle) Create(ctx *gin.Context) {
	req := &core.CreateReagentReq{}
	if err := ctx.ShouldBindJSON(req); err != nil {
		logger.Errorf(ctx, "parse CreateReagent param err: %+v", err.Error())
		common.ReplyErr(ctx, code.ParamErr, err.Error())
		return
	}
	resp, err := i.iService.Create(ctx, req)
	common.Reply(ctx, err, resp)
}

func (i *Handle) Query(ctx *gin.Context) {
	req := &core.QueryReagentReq{}
	if err := ctx.ShouldBindQuery(req); err != nil {
		logger.Errorf(ctx, "parse QueryReagent param err: %+v", err.Error())
		common.ReplyErr(ctx, code.ParamErr, err.Error())
		return
	}
	resp, err := i.iService.Query(ctx, req)
	common.Reply(ctx, err, resp)
}

func (i *Handle) UpdateQuantity(ctx *gin.Context) {
	req := &core.UpdateQuantityReq{}
	if err := ctx.ShouldBindJSON(req); err != nil {
		logger.Errorf(ctx, "parse UpdateQuantity param err: %+v", err.Error())
		common.ReplyErr(ctx, code.ParamErr, err.Error())
		return
	}
	err := i.iService.UpdateQuantity(ctx, req)
	common.Reply(ctx, err)
}

func (i *Handle) Alerts(ctx *gin.Context) {
	req := &core.AlertsReq{}
	if err := ctx.ShouldBindQuery(req); err != nil {
		logger.Errorf(ctx, "parse Alerts param err: %+v", err.Error())
		common.ReplyErr(ctx, code.ParamErr, err.Error())
		return
	}
	resp, err := i.iService.Alerts(ctx, req)
	common.Reply(ctx, err, resp)
}

func (i *Handle) LookupCAS(ctx *gin.Context) {
	req := &core.LookupCASReq{}
	if err := ctx.ShouldBindQuery(req); err != nil {
		logger.Errorf(ctx, "parse LookupCAS param err: %+v", err.Error())
		common.ReplyErr(ctx, code.ParamErr, err.Error())
		return
	}
	resp, err := i.iService.LookupCAS(ctx, req)
	common.Reply(ctx, err, resp)
}
