package repo

import (
	"context"

	"github.com/labworks/labman/pkg/common/uuid"
	"github.com/labworks/labman/pkg/repo/model"
)

type ExperimentLogQuery struct {
	Search string
	Type   string
	Offset int
	Limit  int
}

type ExperimentLogRepo interface {
	CreateLog(ctx context.Context, log *model.ExperimentLog) error
	ListLogs(ctx context.Context, q ExperimentLogQuery) ([]*model.ExperimentLog, int64, error)
	GetLogByUUID(ctx context.Context, id uuid.UUID) (*model.ExperimentLog, error)
}
