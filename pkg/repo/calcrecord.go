package repo

import (
	"context"

	"github.com/labworks/labman/pkg/repo/model"
)

type CalcRecordRepo interface {
	CreateRecord(ctx context.Context, rec *model.CalcRecord) error
	// ListRecords returns the user's runs, newest first.
	ListRecords(ctx context.Context, createdBy string, offset, limit int) ([]*model.CalcRecord, int64, error)
	RecentRecords(ctx context.Context, createdBy string, limit int) ([]*model.CalcRecord, error)
}
