package notify

import (
	"context"

	"github.com/labworks/labman/pkg/common/uuid"
)

type Action string

const (
	InventoryAlert Action = "inventory-alert"
	PlannerChange  Action = "planner-change"
)

// SendMsg is the broadcast envelope. UUID and Timestamp are stamped by the
// center when left empty.
type SendMsg struct {
	Channel   Action    `json:"action"`
	UserID    string    `json:"user_id"`
	Data      any       `json:"data"`
	UUID      uuid.UUID `json:"uuid"`
	Timestamp int64     `json:"timestamp"`
}

type HandleFunc func(ctx context.Context, msg string) error

type MsgCenter interface {
	Registry(ctx context.Context, msgName Action, handleFunc HandleFunc) error
	Broadcast(ctx context.Context, msg *SendMsg) error
	Close(ctx context.Context) error
}
