package dashboard

import (
	"context"
	"time"

	"github.com/labworks/labman/pkg/common/code"
	core "github.com/labworks/labman/pkg/core/dashboard"
	"github.com/labworks/labman/pkg/middleware/auth"
	"github.com/labworks/labman/pkg/repo"
	repoCalc "github.com/labworks/labman/pkg/repo/calcrecord"
	repoEvent "github.com/labworks/labman/pkg/repo/event"
	"github.com/labworks/labman/pkg/repo/model"
	repoProtocol "github.com/labworks/labman/pkg/repo/protocol"
	repoReagent "github.com/labworks/labman/pkg/repo/reagent"
	"github.com/labworks/labman/pkg/utils"
)

// recentN caps every "latest activity" panel.
const recentN = 5

type dashboardImpl struct {
	eventStore    repo.EventRepo
	reagentStore  repo.ReagentRepo
	protocolStore repo.ProtocolRepo
	recordStore   repo.CalcRecordRepo
}

func New() core.Service {
	return &dashboardImpl{
		eventStore:    repoEvent.NewEventRepo(),
		reagentStore:  repoReagent.NewReagentRepo(),
		protocolStore: repoProtocol.NewProtocolRepo(),
		recordStore:   repoCalc.NewCalcRecordRepo(),
	}
}

func (d *dashboardImpl) Overview(ctx context.Context) (*core.OverviewResp, error) {
	user := auth.GetCurrentUser(ctx)
	if user == nil {
		return nil, code.UnLogin
	}

	now := time.Now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	tasks, err := d.eventStore.TodayEvents(ctx, day)
	if err != nil {
		return nil, err
	}
	reagents, err := d.reagentStore.RecentReagents(ctx, recentN)
	if err != nil {
		return nil, err
	}
	protocols, err := d.protocolStore.RecentProtocols(ctx, recentN)
	if err != nil {
		return nil, err
	}
	records, err := d.recordStore.RecentRecords(ctx, user.Username, recentN)
	if err != nil {
		return nil, err
	}

	return &core.OverviewResp{
		Date: day.Format(utils.DateLayout),
		TodayTasks: utils.FilterSlice(tasks, func(ev *model.Event) (*core.TaskSummary, bool) {
			return &core.TaskSummary{
				UUID:      ev.UUID.String(),
				Title:     ev.Title,
				EventType: ev.EventType,
				StartDate: utils.FormatDate(ev.StartDate),
				EndDate:   utils.FormatDate(ev.EndDate),
			}, true
		}),
		RecentReagents: utils.FilterSlice(reagents, func(r *model.Reagent) (*core.ReagentSummary, bool) {
			return &core.ReagentSummary{
				UUID:         r.UUID.String(),
				Name:         r.Name,
				Quantity:     r.Quantity,
				Unit:         r.Unit,
				ReceivedDate: utils.FormatDate(r.ReceivedDate),
				ExpiryDate:   utils.FormatDate(r.ExpiryDate),
			}, true
		}),
		RecentProtocols: utils.FilterSlice(protocols, func(p *model.Protocol) (*core.ProtocolSummary, bool) {
			return &core.ProtocolSummary{
				UUID:         p.UUID.String(),
				Title:        p.Title,
				ProtocolType: p.ProtocolType,
				CreatedAt:    p.CreatedAt,
			}, true
		}),
		RecentCalcs: utils.FilterSlice(records, func(rec *model.CalcRecord) (*core.CalcSummary, bool) {
			return &core.CalcSummary{
				UUID:      rec.UUID.String(),
				Kind:      rec.Kind,
				CreatedAt: rec.CreatedAt,
			}, true
		}),
	}, nil
}
