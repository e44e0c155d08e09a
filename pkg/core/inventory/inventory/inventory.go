package inventory

import (
	"context"
	"time"

	"github.com/labworks/labman/internal/config"
	"github.com/labworks/labman/pkg/common"
	"github.com/labworks/labman/pkg/common/code"
	"github.com/labworks/labman/pkg/common/uuid"
	"github.com/labworks/labman/pkg/core/chem"
	core "github.com/labworks/labman/pkg/core/inventory"
	"github.com/labworks/labman/pkg/core/notify"
	"github.com/labworks/labman/pkg/core/notify/events"
	"github.com/labworks/labman/pkg/middleware/auth"
	"github.com/labworks/labman/pkg/middleware/logger"
	"github.com/labworks/labman/pkg/repo"
	"github.com/labworks/labman/pkg/repo/model"
	repoPubchem "github.com/labworks/labman/pkg/repo/pubchem"
	repoReagent "github.com/labworks/labman/pkg/repo/reagent"
	"github.com/labworks/labman/pkg/utils"
)

// orderColumns whitelists sortable columns; anything else never reaches
// the ORDER BY clause.
var orderColumns = map[string]string{
	"name":          "name ASC",
	"quantity":      "quantity ASC",
	"received_date": "received_date DESC",
	"expiry_date":   "expiry_date ASC",
}

type inventoryImpl struct {
	reagentStore  repo.ReagentRepo
	compoundStore repo.PubChemRepo
	msgCenter     notify.MsgCenter
}

func New() core.Service {
	return &inventoryImpl{
		reagentStore:  repoReagent.NewReagentRepo(),
		compoundStore: repoPubchem.NewPubChemRepo(),
		msgCenter:     events.NewEvents(),
	}
}

func (i *inventoryImpl) Create(ctx context.Context, req *core.CreateReagentReq) (*core.CreateReagentResp, error) {
	user := auth.GetCurrentUser(ctx)
	if user == nil {
		return nil, code.UnLogin
	}

	received, err := utils.ParseDate(req.ReceivedDate)
	if err != nil {
		return nil, code.ParamErr.WithMsgf("invalid received_date: %s", req.ReceivedDate)
	}
	expiry, err := utils.ParseDate(req.ExpiryDate)
	if err != nil {
		return nil, code.ParamErr.WithMsgf("invalid expiry_date: %s", req.ExpiryDate)
	}

	hazard := req.HazardClass
	if hazard == "" {
		hazard = model.HazardNone
	}

	reagent := &model.Reagent{
		Name:              req.Name,
		CASNumber:         req.CASNumber,
		Supplier:          req.Supplier,
		Quantity:          req.Quantity,
		Unit:              req.Unit,
		Concentration:     req.Concentration,
		ConcentrationUnit: req.ConcentrationUnit,
		Location:          req.Location,
		ReceivedDate:      received,
		ExpiryDate:        expiry,
		HazardClass:       hazard,
		CreatedBy:         user.Username,
	}
	if err := i.reagentStore.CreateReagent(ctx, reagent); err != nil {
		return nil, err
	}

	i.broadcast(ctx, user.Username, "create", reagent)
	return &core.CreateReagentResp{UUID: reagent.UUID.String()}, nil
}

func (i *inventoryImpl) Query(ctx context.Context, req *core.QueryReagentReq) (*common.PageResp[*core.ReagentItem], error) {
	if auth.GetCurrentUser(ctx) == nil {
		return nil, code.UnLogin
	}

	order := ""
	if req.OrderBy != "" {
		col, ok := orderColumns[req.OrderBy]
		if !ok {
			return nil, code.ParamErr.WithMsgf("unknown order column: %s", req.OrderBy)
		}
		order = col
	}

	list, total, err := i.reagentStore.ListReagents(ctx, repo.ReagentQuery{
		Search:  req.Search,
		OrderBy: order,
		Offset:  req.Offset(),
		Limit:   req.Limit(),
	})
	if err != nil {
		return nil, err
	}

	items := utils.FilterSlice(list, func(r *model.Reagent) (*core.ReagentItem, bool) {
		return toItem(r), true
	})

	return &common.PageResp[*core.ReagentItem]{
		List:     items,
		Total:    total,
		Page:     req.Page,
		PageSize: req.Limit(),
	}, nil
}

func (i *inventoryImpl) UpdateQuantity(ctx context.Context, req *core.UpdateQuantityReq) error {
	user := auth.GetCurrentUser(ctx)
	if user == nil {
		return code.UnLogin
	}

	id, err := uuid.FromString(req.UUID)
	if err != nil {
		return code.ParamErr.WithMsgf("invalid uuid: %s", req.UUID)
	}

	reagent, err := i.reagentStore.GetReagentByUUID(ctx, id)
	if err != nil {
		return err
	}

	if err := i.reagentStore.UpdateReagentByUUID(ctx, id, map[string]any{
		"quantity": *req.Quantity,
	}); err != nil {
		return err
	}

	reagent.Quantity = *req.Quantity
	i.broadcast(ctx, user.Username, "update", reagent)
	return nil
}

func (i *inventoryImpl) Alerts(ctx context.Context, req *core.AlertsReq) (*core.AlertsResp, error) {
	if auth.GetCurrentUser(ctx) == nil {
		return nil, code.UnLogin
	}

	window := req.WindowDays
	if window <= 0 {
		window = config.Global().Alert.ExpiryWindowDays
	}
	threshold := req.Threshold
	if threshold <= 0 {
		threshold = config.Global().Alert.LowStockThreshold
	}

	list, err := i.reagentStore.ListAllReagents(ctx)
	if err != nil {
		return nil, err
	}

	stock := utils.FilterSlice(list, func(r *model.Reagent) (chem.StockItem, bool) {
		return chem.StockItem{
			ID:       r.UUID.String(),
			Name:     r.Name,
			Quantity: r.Quantity,
			Unit:     r.Unit,
			Location: r.Location,
			Expiry:   r.ExpiryDate,
		}, true
	})

	expiring, series := chem.ExpiringReagents(stock, time.Now(), window)
	low := chem.LowStockReagents(stock, threshold)

	return &core.AlertsResp{
		WindowDays:   window,
		Threshold:    threshold,
		Expiring:     expiring,
		LowStock:     low,
		ExpirySeries: series,
	}, nil
}

func (i *inventoryImpl) LookupCAS(ctx context.Context, req *core.LookupCASReq) (*core.CompoundResp, error) {
	if auth.GetCurrentUser(ctx) == nil {
		return nil, code.UnLogin
	}

	info, err := i.compoundStore.GetCompoundByCAS(ctx, req.CAS)
	if err != nil {
		return nil, err
	}

	return &core.CompoundResp{
		Name:             info.Name,
		MolecularFormula: info.MolecularFormula,
		SMILES:           info.SMILES,
	}, nil
}

// broadcast pushes an inventory change to live subscribers. Push failures
// are logged, never surfaced to the caller.
func (i *inventoryImpl) broadcast(ctx context.Context, username, op string, reagent *model.Reagent) {
	err := i.msgCenter.Broadcast(ctx, &notify.SendMsg{
		Channel: notify.InventoryAlert,
		UserID:  username,
		Data: map[string]any{
			"op":       op,
			"uuid":     reagent.UUID.String(),
			"name":     reagent.Name,
			"quantity": reagent.Quantity,
			"unit":     reagent.Unit,
		},
	})
	if err != nil {
		logger.Warnf(ctx, "broadcast inventory change err: %+v", err)
	}
}

func toItem(r *model.Reagent) *core.ReagentItem {
	return &core.ReagentItem{
		UUID:              r.UUID.String(),
		Name:              r.Name,
		CASNumber:         r.CASNumber,
		Supplier:          r.Supplier,
		Quantity:          r.Quantity,
		Unit:              r.Unit,
		Concentration:     r.Concentration,
		ConcentrationUnit: r.ConcentrationUnit,
		Location:          r.Location,
		ReceivedDate:      utils.FormatDate(r.ReceivedDate),
		ExpiryDate:        utils.FormatDate(r.ExpiryDate),
		HazardClass:       r.HazardClass,
		CreatedBy:         r.CreatedBy,
	}
}
