package repo

import (
	"context"

	"github.com/labworks/labman/pkg/common/uuid"
	"github.com/labworks/labman/pkg/repo/model"
)

type ProtocolQuery struct {
	Search string
	Type   model.ProtocolType
	Offset int
	Limit  int
}

type ProtocolRepo interface {
	CreateProtocol(ctx context.Context, protocol *model.Protocol) error
	ListProtocols(ctx context.Context, q ProtocolQuery) ([]*model.Protocol, int64, error)
	GetProtocolByUUID(ctx context.Context, id uuid.UUID) (*model.Protocol, error)
	// GetProtocolByID resolves the weak row-id reference experiment logs keep.
	GetProtocolByID(ctx context.Context, id int64) (*model.Protocol, error)
	RecentProtocols(ctx context.Context, limit int) ([]*model.Protocol, error)
}
