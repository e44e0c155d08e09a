package account

import (
	"github.com/gin-gonic/gin"
	"github.com/labworks/labman/pkg/common"
	"github.com/labworks/labman/pkg/common/code"
	core "github.com/labworks/labman/pkg/core/account"
	impl "github.com/labworks/labman/pkg/core/account/account"
	"github.com/labworks/labman/pkg/middleware/auth"
	"github.com/labworks/labman/pkg/middleware/logger"
)

type Handle struct {
	aService core.Service
}

func NewAccountHandle() *Handle {
	return &Handle{aService: impl.New()}
}

func (a *Handle) Register(ctx *gin.Context) {
	req := &core.RegisterReq{}
	if err := ctx.ShouldBindJSON(req); err != nil {
		logger.Errorf(ctx, "parse Register param err: %+v", err.Error())
		common.ReplyErr(ctx, code.ParamErr, err.Error())
		return
	}
	resp, err := a.aService.Register(ctx, req)
	common.Reply(ctx, err, resp)
}

func (a *Handle) Login(ctx *gin.Context) {
	req := &core.LoginReq{}
	if err := ctx.ShouldBindJSON(req); err != nil {
		logger.Errorf(ctx, "parse Login param err: %+v", err.Error())
		common.ReplyErr(ctx, code.ParamErr, err.Error())
		return
	}
	resp, err := a.aService.Login(ctx, req)
	if err != nil {
		common.ReplyErr(ctx, err)
		return
	}
	setTokenCookies(ctx, &resp.TokenPair)
	common.Reply(ctx, nil, resp)
}

func (a *Handle) Refresh(ctx *gin.Context) {
	req := &core.RefreshReq{}
	if err := ctx.ShouldBindJSON(req); err != nil {
		logger.Errorf(ctx, "parse Refresh param err: %+v", err.Error())
		common.ReplyErr(ctx, code.ParamErr, err.Error())
		return
	}
	resp, err := a.aService.Refresh(ctx, req)
	if err != nil {
		common.ReplyErr(ctx, err)
		return
	}
	setTokenCookies(ctx, &resp.TokenPair)
	common.Reply(ctx, nil, resp)
}

func (a *Handle) Logout(ctx *gin.Context) {
	if err := a.aService.Logout(ctx); err != nil {
		common.ReplyErr(ctx, err)
		return
	}
	clearTokenCookies(ctx)
	common.ReplyOk(ctx)
}

func (a *Handle) Me(ctx *gin.Context) {
	resp, err := a.aService.Me(ctx)
	common.Reply(ctx, err, resp)
}

// setTokenCookies mirrors the tokens into cookies so browser clients work
// without an Authorization header.
func setTokenCookies(ctx *gin.Context, pair *auth.TokenPair) {
	isSecure := ctx.Request.TLS != nil || ctx.GetHeader("X-Forwarded-Proto") == "https"
	ctx.SetCookie("access_token", pair.AccessToken, int(pair.ExpiresIn), "/", "", isSecure, false)
	ctx.SetCookie("refresh_token", pair.RefreshToken, 30*24*60*60, "/", "", isSecure, false)
}

func clearTokenCookies(ctx *gin.Context) {
	isSecure := ctx.Request.TLS != nil || ctx.GetHeader("X-Forwarded-Proto") == "https"
	ctx.SetCookie("access_token", "", -1, "/", "", isSecure, false)
	ctx.SetCookie("refresh_token", "", -1, "/", "", isSecure, false)
}
