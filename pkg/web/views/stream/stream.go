package stream

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/olahol/melody"

	"github.com/labworks/labman/pkg/common"
	"github.com/labworks/labman/pkg/common/code"
	"github.com/labworks/labman/pkg/common/constant"
	"github.com/labworks/labman/pkg/core/notify"
	"github.com/labworks/labman/pkg/core/notify/events"
	"github.com/labworks/labman/pkg/middleware/auth"
	"github.com/labworks/labman/pkg/middleware/logger"
)

const (
	// subscriberBuffer bounds each SSE subscriber; slow consumers drop
	// messages instead of stalling the dispatcher.
	subscriberBuffer  = 16
	heartbeatInterval = 30 * time.Second
)

// Handle bridges the notify center to the outside: every broadcast goes to
// all websocket sessions and all SSE subscribers.
type Handle struct {
	msgCenter notify.MsgCenter
	wsClient  *melody.Melody

	mu   sync.RWMutex
	subs map[uint64]chan string
	next uint64

	closeOnce sync.Once
	done      chan struct{}
}

func NewStreamHandle(ctx context.Context) *Handle {
	wsClient := melody.New()
	wsClient.Config.MaxMessageSize = constant.MaxMessageSize
	wsClient.Config.PingPeriod = constant.PingPeriod

	h := &Handle{
		msgCenter: events.NewEvents(),
		wsClient:  wsClient,
		subs:      map[uint64]chan string{},
		done:      make(chan struct{}),
	}
	h.initWebSocket()

	for _, action := range []notify.Action{notify.InventoryAlert, notify.PlannerChange} {
		if err := h.msgCenter.Registry(ctx, action, h.relay); err != nil {
			logger.Errorf(ctx, "register notify handler %s err: %+v", action, err)
		}
	}
	return h
}

// Alerts upgrades the request to a websocket fed with notify broadcasts.
func (h *Handle) Alerts(ctx *gin.Context) {
	userInfo := auth.GetCurrentUser(ctx)
	if userInfo == nil {
		common.ReplyErr(ctx, code.UnLogin)
		return
	}

	if err := h.wsClient.HandleRequestWithKeys(ctx.Writer, ctx.Request, map[string]any{
		auth.USERKEY: userInfo,
		"ctx":        ctx,
	}); err != nil {
		logger.Errorf(ctx, "Alerts HandleRequestWithKeys err: %+v", err)
	}
}

// SSE streams notify broadcasts as server-sent events with a heartbeat.
func (h *Handle) SSE(ctx *gin.Context) {
	ch, cancel := h.subscribe()
	defer cancel()

	ctx.Writer.Header().Set("Content-Type", "text/event-stream")
	ctx.Writer.Header().Set("Cache-Control", "no-cache")
	ctx.Writer.Header().Set("Connection", "keep-alive")

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	ctx.Stream(func(_ io.Writer) bool {
		select {
		case msg := <-ch:
			ctx.SSEvent("notify", msg)
			return true
		case <-heartbeat.C:
			ctx.SSEvent("ping", time.Now().Unix())
			return true
		case <-ctx.Request.Context().Done():
			return false
		case <-h.done:
			return false
		}
	})
}

// Close shuts the bridge down so open streams stop blocking server
// shutdown. Safe to call more than once.
func (h *Handle) Close(ctx context.Context) {
	h.closeOnce.Do(func() {
		close(h.done)
		if err := h.msgCenter.Close(ctx); err != nil {
			logger.Errorf(ctx, "close msg center err: %+v", err)
		}
		if err := h.wsClient.Close(); err != nil {
			logger.Errorf(ctx, "close ws hub err: %+v", err)
		}
	})
}

// relay is the registered notify handler; msg is the marshaled SendMsg.
func (h *Handle) relay(ctx context.Context, msg string) error {
	if err := h.wsClient.Broadcast([]byte(msg)); err != nil {
		logger.Warnf(ctx, "ws broadcast err: %+v", err)
	}
	h.fanout(msg)
	return nil
}

func (h *Handle) subscribe() (<-chan string, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.next
	h.next++
	ch := make(chan string, subscriberBuffer)
	h.subs[id] = ch
	return ch, func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subs, id)
	}
}

func (h *Handle) fanout(msg string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.subs {
		select {
		case ch <- msg:
		default:
		}
	}
}

func (h *Handle) initWebSocket() {
	h.wsClient.HandleClose(func(s *melody.Session, _ int, _ string) error {
		if ctx, ok := s.Get("ctx"); ok {
			logger.Infof(ctx.(context.Context), "alerts ws client close keys: %+v", s.Keys)
		}
		return nil
	})

	h.wsClient.HandleDisconnect(func(s *melody.Session) {
		if ctx, ok := s.Get("ctx"); ok {
			logger.Infof(ctx.(context.Context), "alerts ws client disconnected keys: %+v", s.Keys)
		}
	})

	h.wsClient.HandleError(func(s *melody.Session, err error) {
		if errors.Is(err, melody.ErrMessageBufferFull) {
			return
		}
		if closeErr, ok := err.(*websocket.CloseError); ok {
			if closeErr.Code == websocket.CloseGoingAway {
				return
			}
		}
		if ctx, ok := s.Get("ctx"); ok {
			logger.Errorf(ctx.(context.Context), "alerts ws error keys: %+v, err: %+v", s.Keys, err)
		}
	})

	h.wsClient.HandleConnect(func(s *melody.Session) {
		if ctx, ok := s.Get("ctx"); ok {
			logger.Infof(ctx.(context.Context), "alerts ws connect keys: %+v", s.Keys)
		}
	})

	// The alerts stream is push-only; the only inbound frame honored is
	// an application-level ping, everything else is dropped.
	h.wsClient.HandleMessage(func(s *melody.Session, msg []byte) {
		var in common.WsMsg
		if err := json.Unmarshal(msg, &in); err != nil || in.Action != "ping" {
			return
		}
		out, _ := json.Marshal(common.WsMsg{Action: "pong"})
		_ = s.Write(out)
	})
}
