package calculator

import (
	"github.com/gin-gonic/gin"
	"github.com/labworks/labman/pkg/common"
	"github.com/labworks/labman/pkg/common/code"
	core "github.com/labworks/labman/pkg/core/calculator"
	impl "github.com/labworks/labman/pkg/core/calculator/calculator"
	"github.com/labworks/labman/pkg/middleware/logger"
)

type Handle struct {
	cService core.Service
}

func NewCalculatorHandle() *Handle {
	return &Handle{cService: impl.New()}
}

func (c *Handle) SimpleDilution(ctx *gin.Context) {
	req := &core.SimpleDilutionReq{}
	if err := ctx.ShouldBindJSON(req); err != nil {
		logger.Errorf(ctx, "parse SimpleDilution param err: %+v", err.Error())
		common.ReplyErr(ctx, code.ParamErr, err.Error())
		return
	}
	resp, err := c.cService.SimpleDilution(ctx, req)
	common.Reply(ctx, err, resp)
}

func (c *Handle) SerialDilution(ctx *gin.Context) {
	req := &core.SerialDilutionReq{}
	if err := ctx.ShouldBindJSON(req); err != nil {
		logger.Errorf(ctx, "parse SerialDilution param err: %+v", err.Error())
		common.ReplyErr(ctx, code.ParamErr, err.Error())
		return
	}
	resp, err := c.cService.SerialDilution(ctx, req)
	common.Reply(ctx, err, resp)
}

func (c *Handle) Solution(ctx *gin.Context) {
	req := &core.SolutionReq{}
	if err := ctx.ShouldBindJSON(req); err != nil {
		logger.Errorf(ctx, "parse Solution param err: %+v", err.Error())
		common.ReplyErr(ctx, code.ParamErr, err.Error())
		return
	}
	resp, err := c.cService.Solution(ctx, req)
	common.Reply(ctx, err, resp)
}

func (c *Handle) Buffer(ctx *gin.Context) {
	req := &core.BufferReq{}
	if err := ctx.ShouldBindJSON(req); err != nil {
		logger.Errorf(ctx, "parse Buffer param err: %+v", err.Error())
		common.ReplyErr(ctx, code.ParamErr, err.Error())
		return
	}
	resp, err := c.cService.Buffer(ctx, req)
	common.Reply(ctx, err, resp)
}

func (c *Handle) History(ctx *gin.Context) {
	req := &core.HistoryReq{}
	if err := ctx.ShouldBindQuery(req); err != nil {
		logger.Errorf(ctx, "parse History param err: %+v", err.Error())
		common.ReplyErr(ctx, code.ParamErr, err.Error())
		return
	}
	resp, err := c.cService.History(ctx, req)
	common.Reply(ctx, err, resp)
}
