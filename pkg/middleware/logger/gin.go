package logger

import (
	"time"

	"github.com/gin-gonic/gin"
)

// LogWithWriter is the access-log middleware. It runs after the handler
// chain so the final status and gin errors are available.
func LogWithWriter() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		path := ctx.Request.URL.Path
		if raw := ctx.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		ctx.Next()

		latency := time.Since(start)
		status := ctx.Writer.Status()
		if len(ctx.Errors) > 0 {
			Errorf(ctx, "%3d | %13v | %15s | %-7s %s | %s",
				status, latency, ctx.ClientIP(), ctx.Request.Method, path,
				ctx.Errors.ByType(gin.ErrorTypePrivate).String())
			return
		}
		Infof(ctx, "%3d | %13v | %15s | %-7s %s",
			status, latency, ctx.ClientIP(), ctx.Request.Method, path)
	}
}
