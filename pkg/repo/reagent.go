package repo

import (
	"context"

	"github.com/labworks/labman/pkg/common/uuid"
	"github.com/labworks/labman/pkg/repo/model"
)

// ReagentQuery filters the inventory listing. Search matches name or CAS
// number as a case-insensitive substring.
type ReagentQuery struct {
	Search  string
	OrderBy string
	Offset  int
	Limit   int
}

type ReagentRepo interface {
	CreateReagent(ctx context.Context, reagent *model.Reagent) error
	ListReagents(ctx context.Context, q ReagentQuery) ([]*model.Reagent, int64, error)
	// ListAllReagents feeds the alert projections, which scan the whole
	// collection.
	ListAllReagents(ctx context.Context) ([]*model.Reagent, error)
	GetReagentByUUID(ctx context.Context, id uuid.UUID) (*model.Reagent, error)
	UpdateReagentByUUID(ctx context.Context, id uuid.UUID, data map[string]any) error
	RecentReagents(ctx context.Context, limit int) ([]*model.Reagent, error)
}
