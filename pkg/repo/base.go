package repo

import (
	"context"

	"github.com/labworks/labman/pkg/common/code"
	"github.com/labworks/labman/pkg/common/uuid"
	"github.com/labworks/labman/pkg/middleware/db"
	"gorm.io/gorm"
)

// BaseDB bundles the datastore helpers every store implementation embeds.
type BaseDB interface {
	DBWithContext(ctx context.Context) *gorm.DB
	ExecTx(ctx context.Context, fn func(ctx context.Context) error) error
	UUID2ID(ctx context.Context, m any, uuids ...uuid.UUID) (map[uuid.UUID]int64, error)
}

func NewBaseDB() BaseDB {
	return &baseDB{Datastore: db.DB()}
}

type baseDB struct {
	*db.Datastore
}

// UUID2ID resolves external identifiers to row ids for the given model.
// Unknown UUIDs are simply absent from the result.
func (b *baseDB) UUID2ID(ctx context.Context, m any, uuids ...uuid.UUID) (map[uuid.UUID]int64, error) {
	if len(uuids) == 0 {
		return map[uuid.UUID]int64{}, nil
	}
	var rows []struct {
		ID   int64
		UUID uuid.UUID
	}
	if err := b.DBWithContext(ctx).Model(m).
		Where("uuid IN ?", uuids).
		Select("id", "uuid").
		Find(&rows).Error; err != nil {
		return nil, code.QueryRecordErr.WithErr(err)
	}
	res := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		res[row.UUID] = row.ID
	}
	return res, nil
}
