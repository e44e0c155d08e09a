package planner

import (
	"context"

	"github.com/labworks/labman/pkg/common"
)

type Service interface {
	// Create schedules a new task for the current user.
	Create(ctx context.Context, req *CreateEventReq) (*CreateEventResp, error)
	// Query lists tasks ascending by start date, filtered by view and type.
	Query(ctx context.Context, req *QueryEventReq) (*common.PageResp[*EventItem], error)
	// Complete marks a task done. Completion never reverts.
	Complete(ctx context.Context, req *CompleteEventReq) error
	Delete(ctx context.Context, req *DeleteEventReq) error
	// Calendar buckets recent and upcoming tasks per day.
	Calendar(ctx context.Context) (*CalendarResp, error)
	// Today lists unfinished tasks whose span covers the current date.
	Today(ctx context.Context) (*TodayResp, error)
}
