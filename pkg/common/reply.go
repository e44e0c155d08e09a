package common

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/labworks/labman/pkg/common/code"
)

// Reply writes either the error or the optional payload. Handlers use it
// as the single exit point after a service call.
func Reply(ctx *gin.Context, err error, data ...any) {
	if err != nil {
		ReplyErr(ctx, err)
		return
	}
	resp := &Resp{Code: code.Success}
	if len(data) > 0 {
		resp.Data = data[0]
	}
	ctx.JSON(code.Success.HTTPStatus(), resp)
}

func ReplyOk(ctx *gin.Context) {
	ctx.JSON(code.Success.HTTPStatus(), &Resp{Code: code.Success})
}

// ReplyErr maps an error to the envelope; extra messages override the
// code's default text.
func ReplyErr(ctx *gin.Context, err error, msgs ...string) {
	c := code.From(err)
	msg := strings.Join(msgs, "; ")
	if msg == "" {
		msg = c.String()
	}
	ctx.JSON(c.HTTPStatus(), &Resp{
		Code:  c,
		Error: &Error{Msg: msg},
	})
}
