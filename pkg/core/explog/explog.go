package explog

import (
	"context"

	"github.com/labworks/labman/pkg/common"
)

type Service interface {
	// Create records an experiment run, optionally linked to a protocol.
	Create(ctx context.Context, req *CreateLogReq) (*CreateLogResp, error)
	// Query lists logs newest first, filtered by substring and type.
	Query(ctx context.Context, req *QueryLogReq) (*common.PageResp[*LogItem], error)
	// Get returns one log with its protocol reference resolved if it
	// still exists.
	Get(ctx context.Context, req *GetLogReq) (*LogDetail, error)
}
