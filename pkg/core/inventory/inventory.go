package inventory

import (
	"context"

	"github.com/labworks/labman/pkg/common"
)

type Service interface {
	// Create registers a new reagent owned by the current user.
	Create(ctx context.Context, req *CreateReagentReq) (*CreateReagentResp, error)
	// Query lists reagents, filtered by a name/CAS substring.
	Query(ctx context.Context, req *QueryReagentReq) (*common.PageResp[*ReagentItem], error)
	// UpdateQuantity sets the stock level of one reagent.
	UpdateQuantity(ctx context.Context, req *UpdateQuantityReq) error
	// Alerts projects the whole inventory into expiring and low-stock views.
	Alerts(ctx context.Context, req *AlertsReq) (*AlertsResp, error)
	// LookupCAS resolves a CAS number against PubChem for form prefill.
	LookupCAS(ctx context.Context, req *LookupCASReq) (*CompoundResp, error)
}
