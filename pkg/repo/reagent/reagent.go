package reagent

import (
	"context"
	"errors"
	"strings"

	"github.com/labworks/labman/pkg/common/code"
	"github.com/labworks/labman/pkg/common/uuid"
	"github.com/labworks/labman/pkg/middleware/logger"
	"github.com/labworks/labman/pkg/repo"
	"github.com/labworks/labman/pkg/repo/model"
	"gorm.io/gorm"
)

type reagentImpl struct {
	repo.BaseDB
}

func NewReagentRepo() repo.ReagentRepo {
	return &reagentImpl{BaseDB: repo.NewBaseDB()}
}

func (r *reagentImpl) CreateReagent(ctx context.Context, reagent *model.Reagent) error {
	if err := r.DBWithContext(ctx).Create(reagent).Error; err != nil {
		logger.Errorf(ctx, "CreateReagent err: %+v", err)
		return code.CreateDataErr.WithErr(err)
	}
	return nil
}

func (r *reagentImpl) ListReagents(ctx context.Context, q repo.ReagentQuery) ([]*model.Reagent, int64, error) {
	db := r.DBWithContext(ctx).Model(&model.Reagent{})

	if q.Search != "" {
		pattern := "%" + strings.ToLower(q.Search) + "%"
		db = db.Where("(LOWER(name) LIKE ? OR LOWER(cas_number) LIKE ?)", pattern, pattern)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}

	order := q.OrderBy
	if order == "" {
		order = "name ASC"
	}
	if q.Limit == 0 {
		q.Limit = 20
	}

	list := make([]*model.Reagent, 0, q.Limit)
	if err := db.Order(order).Offset(q.Offset).Limit(q.Limit).Find(&list).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}
	return list, total, nil
}

func (r *reagentImpl) ListAllReagents(ctx context.Context) ([]*model.Reagent, error) {
	var list []*model.Reagent
	if err := r.DBWithContext(ctx).Order("name ASC").Find(&list).Error; err != nil {
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return list, nil
}

func (r *reagentImpl) GetReagentByUUID(ctx context.Context, id uuid.UUID) (*model.Reagent, error) {
	reagent := &model.Reagent{}
	err := r.DBWithContext(ctx).Where("uuid = ?", id).First(reagent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.RecordNotFound
		}
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return reagent, nil
}

func (r *reagentImpl) UpdateReagentByUUID(ctx context.Context, id uuid.UUID, data map[string]any) error {
	res := r.DBWithContext(ctx).Model(&model.Reagent{}).Where("uuid = ?", id).Updates(data)
	if res.Error != nil {
		logger.Errorf(ctx, "UpdateReagentByUUID err: %+v", res.Error)
		return code.UpdateDataErr.WithErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return code.RecordNotFound
	}
	return nil
}

func (r *reagentImpl) RecentReagents(ctx context.Context, limit int) ([]*model.Reagent, error) {
	list := make([]*model.Reagent, 0, limit)
	if err := r.DBWithContext(ctx).
		Order("received_date DESC, id DESC").
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return list, nil
}
