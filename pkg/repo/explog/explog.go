package explog

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/labworks/labman/pkg/common/code"
	"github.com/labworks/labman/pkg/common/uuid"
	"github.com/labworks/labman/pkg/middleware/logger"
	"github.com/labworks/labman/pkg/repo"
	"github.com/labworks/labman/pkg/repo/model"
)

type explogImpl struct {
	repo.BaseDB
}

func NewExperimentLogRepo() repo.ExperimentLogRepo {
	return &explogImpl{BaseDB: repo.NewBaseDB()}
}

func (e *explogImpl) CreateLog(ctx context.Context, log *model.ExperimentLog) error {
	if err := e.DBWithContext(ctx).Create(log).Error; err != nil {
		logger.Errorf(ctx, "CreateLog err: %+v", err)
		return code.CreateDataErr.WithErr(err)
	}
	return nil
}

func (e *explogImpl) ListLogs(ctx context.Context, q repo.ExperimentLogQuery) ([]*model.ExperimentLog, int64, error) {
	db := e.DBWithContext(ctx).Model(&model.ExperimentLog{})

	if q.Search != "" {
		pattern := "%" + strings.ToLower(q.Search) + "%"
		db = db.Where("LOWER(title) LIKE ?", pattern)
	}
	if q.Type != "" {
		db = db.Where("experiment_type = ?", q.Type)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}

	if q.Limit == 0 {
		q.Limit = 20
	}
	list := make([]*model.ExperimentLog, 0, q.Limit)
	if err := db.Order("date DESC, id DESC").Offset(q.Offset).Limit(q.Limit).Find(&list).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}
	return list, total, nil
}

func (e *explogImpl) GetLogByUUID(ctx context.Context, id uuid.UUID) (*model.ExperimentLog, error) {
	log := &model.ExperimentLog{}
	if err := e.DBWithContext(ctx).Where("uuid = ?", id).First(log).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.RecordNotFound
		}
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return log, nil
}
