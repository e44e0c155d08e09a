package event

import (
	"context"
	"time"

	"github.com/labworks/labman/pkg/common/code"
	"github.com/labworks/labman/pkg/common/uuid"
	"github.com/labworks/labman/pkg/middleware/logger"
	"github.com/labworks/labman/pkg/repo"
	"github.com/labworks/labman/pkg/repo/model"
)

type eventImpl struct {
	repo.BaseDB
}

func NewEventRepo() repo.EventRepo {
	return &eventImpl{BaseDB: repo.NewBaseDB()}
}

func (e *eventImpl) CreateEvent(ctx context.Context, event *model.Event) error {
	if err := e.DBWithContext(ctx).Create(event).Error; err != nil {
		logger.Errorf(ctx, "CreateEvent err: %+v", err)
		return code.CreateDataErr.WithErr(err)
	}
	return nil
}

func (e *eventImpl) ListEvents(ctx context.Context, q repo.EventQuery) ([]*model.Event, int64, error) {
	db := e.DBWithContext(ctx).Model(&model.Event{})

	switch q.View {
	case repo.EventViewPending:
		db = db.Where("completed = ?", false)
	case repo.EventViewCompleted:
		db = db.Where("completed = ?", true)
	}
	if q.Type != "" {
		db = db.Where("event_type = ?", q.Type)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}

	if q.Limit == 0 {
		q.Limit = 50
	}
	list := make([]*model.Event, 0, q.Limit)
	if err := db.Order("start_date ASC, id ASC").Offset(q.Offset).Limit(q.Limit).Find(&list).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}
	return list, total, nil
}

func (e *eventImpl) CompleteEventByUUID(ctx context.Context, id uuid.UUID) error {
	res := e.DBWithContext(ctx).Model(&model.Event{}).
		Where("uuid = ?", id).
		Update("completed", true)
	if res.Error != nil {
		logger.Errorf(ctx, "CompleteEventByUUID err: %+v", res.Error)
		return code.UpdateDataErr.WithErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return code.RecordNotFound
	}
	return nil
}

func (e *eventImpl) DeleteEventByUUID(ctx context.Context, id uuid.UUID) error {
	res := e.DBWithContext(ctx).Where("uuid = ?", id).Delete(&model.Event{})
	if res.Error != nil {
		logger.Errorf(ctx, "DeleteEventByUUID err: %+v", res.Error)
		return code.DeleteDataErr.WithErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return code.RecordNotFound
	}
	return nil
}

func (e *eventImpl) TodayEvents(ctx context.Context, day time.Time) ([]*model.Event, error) {
	var list []*model.Event
	if err := e.DBWithContext(ctx).
		Where("start_date <= ? AND end_date >= ? AND completed = ?", day, day, false).
		Order("start_date ASC").
		Find(&list).Error; err != nil {
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return list, nil
}

func (e *eventImpl) EventsEndingAfter(ctx context.Context, from time.Time) ([]*model.Event, error) {
	var list []*model.Event
	if err := e.DBWithContext(ctx).
		Where("end_date >= ?", from).
		Order("start_date ASC").
		Find(&list).Error; err != nil {
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return list, nil
}
