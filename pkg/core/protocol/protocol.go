package protocol

import (
	"context"

	"github.com/labworks/labman/pkg/common"
)

type Service interface {
	// Create stores a new protocol owned by the current user.
	Create(ctx context.Context, req *CreateProtocolReq) (*CreateProtocolResp, error)
	// Query lists protocols newest first, filtered by substring and type.
	Query(ctx context.Context, req *QueryProtocolReq) (*common.PageResp[*ProtocolItem], error)
	// Get returns one protocol with its steps split for display.
	Get(ctx context.Context, req *GetProtocolReq) (*ProtocolDetail, error)
}
