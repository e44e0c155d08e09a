package calcrecord

import (
	"context"

	"github.com/labworks/labman/pkg/common/code"
	"github.com/labworks/labman/pkg/middleware/logger"
	"github.com/labworks/labman/pkg/repo"
	"github.com/labworks/labman/pkg/repo/model"
)

type calcRecordImpl struct {
	repo.BaseDB
}

func NewCalcRecordRepo() repo.CalcRecordRepo {
	return &calcRecordImpl{BaseDB: repo.NewBaseDB()}
}

func (c *calcRecordImpl) CreateRecord(ctx context.Context, record *model.CalcRecord) error {
	if err := c.DBWithContext(ctx).Create(record).Error; err != nil {
		logger.Errorf(ctx, "CreateRecord err: %+v", err)
		return code.CreateDataErr.WithErr(err)
	}
	return nil
}

func (c *calcRecordImpl) ListRecords(ctx context.Context, createdBy string, offset, limit int) ([]*model.CalcRecord, int64, error) {
	db := c.DBWithContext(ctx).Model(&model.CalcRecord{}).Where("created_by = ?", createdBy)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}

	if limit == 0 {
		limit = 20
	}
	list := make([]*model.CalcRecord, 0, limit)
	if err := db.Order("created_at DESC, id DESC").Offset(offset).Limit(limit).Find(&list).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}
	return list, total, nil
}

func (c *calcRecordImpl) RecentRecords(ctx context.Context, createdBy string, limit int) ([]*model.CalcRecord, error) {
	var list []*model.CalcRecord
	if err := c.DBWithContext(ctx).
		Where("created_by = ?", createdBy).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return list, nil
}
