package planner

import (
	"context"
	"sort"
	"time"

	"github.com/labworks/labman/pkg/common"
	"github.com/labworks/labman/pkg/common/code"
	"github.com/labworks/labman/pkg/common/uuid"
	"github.com/labworks/labman/pkg/core/notify"
	"github.com/labworks/labman/pkg/core/notify/events"
	core "github.com/labworks/labman/pkg/core/planner"
	"github.com/labworks/labman/pkg/middleware/auth"
	"github.com/labworks/labman/pkg/middleware/logger"
	"github.com/labworks/labman/pkg/repo"
	repoEvent "github.com/labworks/labman/pkg/repo/event"
	"github.com/labworks/labman/pkg/repo/model"
	"github.com/labworks/labman/pkg/utils"
)

type plannerImpl struct {
	eventStore repo.EventRepo
	msgCenter  notify.MsgCenter
}

func New() core.Service {
	return &plannerImpl{
		eventStore: repoEvent.NewEventRepo(),
		msgCenter:  events.NewEvents(),
	}
}

func (p *plannerImpl) Create(ctx context.Context, req *core.CreateEventReq) (*core.CreateEventResp, error) {
	user := auth.GetCurrentUser(ctx)
	if user == nil {
		return nil, code.UnLogin
	}

	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, code.ParamErr.WithMsgf("invalid start_date: %s", req.StartDate)
	}
	end, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return nil, code.ParamErr.WithMsgf("invalid end_date: %s", req.EndDate)
	}
	if end.Before(*start) {
		return nil, code.ParamErr.WithMsg("end_date must not precede start_date")
	}

	freq := req.Frequency
	if freq == "" {
		freq = model.FreqOneTime
	}

	event := &model.Event{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   start,
		EndDate:     end,
		EventType:   req.EventType,
		Frequency:   freq,
		CreatedBy:   user.Username,
	}
	if err := p.eventStore.CreateEvent(ctx, event); err != nil {
		return nil, err
	}

	p.broadcast(ctx, user.Username, "create", event.UUID.String(), event.Title)
	return &core.CreateEventResp{UUID: event.UUID.String()}, nil
}

func (p *plannerImpl) Query(ctx context.Context, req *core.QueryEventReq) (*common.PageResp[*core.EventItem], error) {
	if auth.GetCurrentUser(ctx) == nil {
		return nil, code.UnLogin
	}

	view := req.View
	if view == "" {
		view = repo.EventViewAll
	}

	list, total, err := p.eventStore.ListEvents(ctx, repo.EventQuery{
		View:   view,
		Type:   req.Type,
		Offset: req.Offset(),
		Limit:  req.Limit(),
	})
	if err != nil {
		return nil, err
	}

	items := utils.FilterSlice(list, func(ev *model.Event) (*core.EventItem, bool) {
		return toItem(ev), true
	})

	return &common.PageResp[*core.EventItem]{
		List:     items,
		Total:    total,
		Page:     req.Page,
		PageSize: req.Limit(),
	}, nil
}

func (p *plannerImpl) Complete(ctx context.Context, req *core.CompleteEventReq) error {
	user := auth.GetCurrentUser(ctx)
	if user == nil {
		return code.UnLogin
	}

	id, err := uuid.FromString(req.UUID)
	if err != nil {
		return code.ParamErr.WithMsgf("invalid uuid: %s", req.UUID)
	}
	if err := p.eventStore.CompleteEventByUUID(ctx, id); err != nil {
		return err
	}

	p.broadcast(ctx, user.Username, "complete", req.UUID, "")
	return nil
}

func (p *plannerImpl) Delete(ctx context.Context, req *core.DeleteEventReq) error {
	user := auth.GetCurrentUser(ctx)
	if user == nil {
		return code.UnLogin
	}

	id, err := uuid.FromString(req.UUID)
	if err != nil {
		return code.ParamErr.WithMsgf("invalid uuid: %s", req.UUID)
	}
	if err := p.eventStore.DeleteEventByUUID(ctx, id); err != nil {
		return err
	}

	p.broadcast(ctx, user.Username, "delete", req.UUID, "")
	return nil
}

func (p *plannerImpl) Calendar(ctx context.Context) (*core.CalendarResp, error) {
	if auth.GetCurrentUser(ctx) == nil {
		return nil, code.UnLogin
	}

	from := today().AddDate(0, -1, 0)
	list, err := p.eventStore.EventsEndingAfter(ctx, from)
	if err != nil {
		return nil, err
	}

	return &core.CalendarResp{
		From: from.Format(utils.DateLayout),
		Days: bucketByDay(list),
	}, nil
}

func (p *plannerImpl) Today(ctx context.Context) (*core.TodayResp, error) {
	if auth.GetCurrentUser(ctx) == nil {
		return nil, code.UnLogin
	}

	day := today()
	list, err := p.eventStore.TodayEvents(ctx, day)
	if err != nil {
		return nil, err
	}

	return &core.TodayResp{
		Date: day.Format(utils.DateLayout),
		Events: utils.FilterSlice(list, func(ev *model.Event) (*core.EventItem, bool) {
			return toItem(ev), true
		}),
	}, nil
}

// broadcast pushes a planner change to live subscribers. Push failures are
// logged, never surfaced to the caller.
func (p *plannerImpl) broadcast(ctx context.Context, username, op, id, title string) {
	data := map[string]any{"op": op, "uuid": id}
	if title != "" {
		data["title"] = title
	}
	err := p.msgCenter.Broadcast(ctx, &notify.SendMsg{
		Channel: notify.PlannerChange,
		UserID:  username,
		Data:    data,
	})
	if err != nil {
		logger.Warnf(ctx, "broadcast planner change err: %+v", err)
	}
}

// bucketByDay expands every event over its full date span; only days that
// have at least one event appear, ascending.
func bucketByDay(list []*model.Event) []*core.CalendarDay {
	buckets := make(map[string][]*core.CalendarEvent)
	for _, ev := range list {
		if ev.StartDate == nil || ev.EndDate == nil {
			continue
		}
		day := dateOnly(*ev.StartDate)
		end := dateOnly(*ev.EndDate)
		for !day.After(end) {
			key := day.Format(utils.DateLayout)
			buckets[key] = append(buckets[key], &core.CalendarEvent{
				UUID:      ev.UUID.String(),
				Title:     ev.Title,
				EventType: ev.EventType,
				Completed: ev.Completed,
			})
			day = day.AddDate(0, 0, 1)
		}
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	days := make([]*core.CalendarDay, 0, len(keys))
	for _, k := range keys {
		days = append(days, &core.CalendarDay{Date: k, Events: buckets[k]})
	}
	return days
}

func toItem(ev *model.Event) *core.EventItem {
	return &core.EventItem{
		UUID:        ev.UUID.String(),
		Title:       ev.Title,
		Description: ev.Description,
		StartDate:   utils.FormatDate(ev.StartDate),
		EndDate:     utils.FormatDate(ev.EndDate),
		EventType:   ev.EventType,
		Frequency:   ev.Frequency,
		Completed:   ev.Completed,
		CreatedBy:   ev.CreatedBy,
	}
}

func today() time.Time {
	now := time.Now()
	return dateOnly(now)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
