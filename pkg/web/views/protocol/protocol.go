package protocol

import (
	"github.com/gin-gonic/gin"
	"github.com/labworks/labman/pkg/common"
	"github.com/labworks/labman/pkg/common/code"
	core "github.com/labworks/labman/pkg/core/protocol"
	impl "github.com/labworks/labman/pkg/core/protocol/protocol"
	"github.com/labworks/labman/pkg/middleware/logger"
)

type Handle struct {
	pService core.Service
}

func NewProtocolHandle() *Handle {
	return &Handle{pService: impl.New()}
}

func (p *Handle) Create(ctx *gin.Context) {
	req := &core.CreateProtocolReq{}
	if err := ctx.ShouldBindJSON(req); err != nil {
		logger.Errorf(ctx, "parse CreateProtocol param err: %+v", err.Error())
		common.ReplyErr(ctx, code.ParamErr, err.Error())
		return
	}
	resp, err := p.pService.Create(ctx, req)
	common.Reply(ctx, err, resp)
}

func (p *Handle) Query(ctx *gin.Context) {
	req := &core.QueryProtocolReq{}
	if err := ctx.ShouldBindQuery(req); err != nil {
		logger.Errorf(ctx, "parse QueryProtocol param err: %+v", err.Error())
		common.ReplyErr(ctx, code.ParamErr, err.Error())
		return
	}
	resp, err := p.pService.Query(ctx, req)
	common.Reply(ctx, err, resp)
}

func (p *Handle) Detail(ctx *gin.Context) {
	req := &core.GetProtocolReq{}
	if err := ctx.ShouldBindUri(req); err != nil {
		logger.Errorf(ctx, "parse ProtocolDetail param err: %+v", err.Error())
		common.ReplyErr(ctx, code.ParamErr, err.Error())
		return
	}
	resp, err := p.pService.Get(ctx, req)
	common.Reply(ctx, err, resp)
}
