package repo

import (
	"context"
	"time"

	"github.com/labworks/labman/pkg/common/uuid"
	"github.com/labworks/labman/pkg/repo/model"
)

type EventView string

const (
	EventViewAll       EventView = "all"
	EventViewPending   EventView = "pending"
	EventViewCompleted EventView = "completed"
)

type EventQuery struct {
	View   EventView
	Type   model.EventType
	Offset int
	Limit  int
}

type EventRepo interface {
	CreateEvent(ctx context.Context, event *model.Event) error
	ListEvents(ctx context.Context, q EventQuery) ([]*model.Event, int64, error)
	// CompleteEventByUUID is monotonic: it marks done and never back.
	CompleteEventByUUID(ctx context.Context, id uuid.UUID) error
	DeleteEventByUUID(ctx context.Context, id uuid.UUID) error
	// TodayEvents returns unfinished events whose span covers day.
	TodayEvents(ctx context.Context, day time.Time) ([]*model.Event, error)
	// EventsEndingAfter backs the calendar view.
	EventsEndingAfter(ctx context.Context, from time.Time) ([]*model.Event, error)
}
