package explog

import (
	"github.com/gin-gonic/gin"
	"github.com/labworks/labman/pkg/common"
	"github.com/labworks/labman/pkg/common/code"
	core "github.com/labworks/labman/pkg/core/explog"
	impl "github.com/labworks/labman/pkg/core/explog/explog"
	"github.com/labworks/labman/pkg/middleware/logger"
)

type Handle struct {
	eService core.Service
}

func NewExplogHandle() *Handle {
	return &Handle{eService: impl.New()}
}

func (e *Handle) Create(ctx *gin.Context) {
	req := &core.CreateLogReq{}
	if err := ctx.ShouldBindJSON(req); err != nil {
		logger.Errorf(ctx, "parse CreateLog param err: %+v", err.Error())
		common.ReplyErr(ctx, code.ParamErr, err.Error())
		return
	}
	resp, err := e.eService.Create(ctx, req)
	common.Reply(ctx, err, resp)
}

func (e *Handle) Query(ctx *gin.Context) {
	req := &core.QueryLogReq{}
	if err := ctx.ShouldBindQuery(req); err != nil {
		logger.Errorf(ctx, "parse QueryLog param err: %+v", err.Error())
		common.ReplyErr(ctx, code.ParamErr, err.Error())
		return
	}
	resp, err := e.eService.Query(ctx, req)
	common.Reply(ctx, err, resp)
}

func (e *Handle) Detail(ctx *gin.Context) {
	req := &core.GetLogReq{}
	if err := ctx.ShouldBindUri(req); err != nil {
		logger.Errorf(ctx, "parse LogDetail param err: %+v", err.Error())
		common.ReplyErr(ctx, code.ParamErr, err.Error())
		return
	}
	resp, err := e.eService.Get(ctx, req)
	common.Reply(ctx, err, resp)
}
