package redis

import (
	"context"
	"net"
	"time"

	"github.com/labworks/labman/pkg/middleware/logger"
	"github.com/redis/go-redis/extra/rediscmd/v9"
	r "github.com/redis/go-redis/v9"
)

// logHook surfaces commands slower than the threshold in the service log.
type logHook struct {
	slow time.Duration
}

func newLogHook(slow time.Duration) *logHook {
	return &logHook{slow: slow}
}

func (h *logHook) DialHook(next r.DialHook) r.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		return next(ctx, network, addr)
	}
}

func (h *logHook) ProcessHook(next r.ProcessHook) r.ProcessHook {
	return func(ctx context.Context, cmd r.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		if cost := time.Since(start); cost >= h.slow {
			logger.Warnf(ctx, "slow redis command %s cost: %s", rediscmd.CmdString(cmd), cost)
		}
		return err
	}
}

func (h *logHook) ProcessPipelineHook(next r.ProcessPipelineHook) r.ProcessPipelineHook {
	return func(ctx context.Context, cmds []r.Cmder) error {
		start := time.Now()
		err := next(ctx, cmds)
		if cost := time.Since(start); cost >= h.slow {
			summary, _ := rediscmd.CmdsString(cmds)
			logger.Warnf(ctx, "slow redis pipeline [%s] cost: %s", summary, cost)
		}
		return err
	}
}
