package events

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alphadose/haxmap"
	"github.com/panjf2000/ants/v2"
	r "github.com/redis/go-redis/v9"

	"github.com/labworks/labman/pkg/common/code"
	"github.com/labworks/labman/pkg/common/uuid"
	"github.com/labworks/labman/pkg/core/notify"
	"github.com/labworks/labman/pkg/middleware/logger"
	"github.com/labworks/labman/pkg/middleware/redis"
	"github.com/labworks/labman/pkg/utils"
)

// Cross-process broadcast over redis pub/sub. Handlers run on a shared
// worker pool so a slow consumer cannot stall a receive loop. Without a
// redis client the center degrades to in-process dispatch, which keeps
// single-binary deployments and tests working.

const (
	poolSize      = 200
	channelPrefix = "labman:notify:"
)

var (
	once   sync.Once
	center *Events
)

type Events struct {
	handlers *haxmap.Map[string, notify.HandleFunc]
	subs     *haxmap.Map[string, *r.PubSub]
	client   *r.Client
	pool     *ants.Pool
	wait     sync.WaitGroup
	closed   atomic.Bool
}

func NewEvents() notify.MsgCenter {
	once.Do(func() {
		center = &Events{
			handlers: haxmap.New[string, notify.HandleFunc](),
			subs:     haxmap.New[string, *r.PubSub](),
			client:   redis.GetClient(),
		}
		center.pool, _ = ants.NewPool(poolSize)
		if center.pool == nil {
			center.pool, _ = ants.NewPool(ants.DefaultAntsPoolSize)
		}
	})

	return center
}

func (e *Events) Registry(ctx context.Context, msgName notify.Action, handleFunc notify.HandleFunc) error {
	if e.closed.Load() {
		return code.NotifyClosedErr
	}

	channel := channelPrefix + string(msgName)
	if _, ok := e.handlers.GetOrSet(channel, handleFunc); ok {
		return code.NotifyDupActionErr.WithMsg(string(msgName))
	}

	if e.client == nil {
		return nil
	}

	sub := e.client.Subscribe(ctx, channel)
	e.subs.Set(channel, sub)

	e.wait.Add(1)
	utils.SafelyGo(func() {
		defer e.wait.Done()

		ch := sub.Channel()
		for {
			select {
			case msg, ok := <-ch:
				if !ok {
					logger.Infof(ctx, "exit notify channel: %s", channel)
					e.handlers.Del(channel)
					return
				}
				if msg == nil {
					continue
				}
				e.dispatch(ctx, channel, handleFunc, msg.Payload)
			case <-ctx.Done():
				logger.Infof(ctx, "exit notify channel: %s", channel)
				if err := sub.Unsubscribe(context.Background(), channel); err != nil {
					logger.Errorf(ctx, "unsubscribe fail channel: %s, err: %+v", channel, err)
				}
				e.handlers.Del(channel)
				return
			}
		}
	}, func(err error) {
		logger.Errorf(ctx, "notify receive loop err: %+v", err)
	})
	return nil
}

func (e *Events) Broadcast(ctx context.Context, msg *notify.SendMsg) error {
	if e.closed.Load() {
		return code.NotifyClosedErr
	}

	msg.Timestamp = time.Now().Unix()
	if msg.UUID == uuid.Nil {
		msg.UUID = uuid.NewV4()
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return code.BroadcastDataErr.WithErr(err)
	}

	channel := channelPrefix + string(msg.Channel)
	if e.client == nil {
		if handleFunc, ok := e.handlers.Get(channel); ok {
			e.dispatch(ctx, channel, handleFunc, string(data))
		}
		return nil
	}

	if ret := e.client.Publish(ctx, channel, data); ret.Err() != nil {
		logger.Errorf(ctx, "publish fail action: %s, err: %+v", msg.Channel, ret.Err())
		return code.NotifySendMsgErr.WithErr(ret.Err())
	}
	return nil
}

func (e *Events) dispatch(ctx context.Context, channel string, handleFunc notify.HandleFunc, payload string) {
	err := e.pool.Submit(func() {
		if err := utils.SafelyRun(func() {
			if err := handleFunc(ctx, payload); err != nil {
				logger.Errorf(ctx, "handle notify msg fail channel: %s, err: %+v", channel, err)
			}
		}); err != nil {
			logger.Errorf(ctx, "notify handler panic channel: %s, err: %+v", channel, err)
		}
	})
	if err != nil {
		logger.Errorf(ctx, "submit notify handler fail channel: %s, err: %+v", channel, err)
	}
}

func (e *Events) Close(ctx context.Context) error {
	if !e.closed.CompareAndSwap(false, true) {
		return nil
	}

	e.subs.ForEach(func(channel string, sub *r.PubSub) bool {
		if err := sub.Close(); err != nil {
			logger.Errorf(ctx, "close notify sub fail channel: %s, err: %+v", channel, err)
		}
		return true
	})

	e.wait.Wait()
	if e.pool != nil {
		e.pool.Release()
	}
	return nil
}
