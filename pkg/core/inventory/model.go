package inventory

import (
	"github.com/labworks/labman/pkg/common"
	"github.com/labworks/labman/pkg/core/chem"
	"github.com/labworks/labman/pkg/repo/model"
)

type CreateReagentReq struct {
	Name              string            `json:"name" binding:"required,max=255"`
	CASNumber         string            `json:"cas_number" binding:"max=32"`
	Supplier          string            `json:"supplier" binding:"max=128"`
	Quantity          float64           `json:"quantity" binding:"gte=0"`
	Unit              string            `json:"unit" binding:"max=16"`
	Concentration     float64           `json:"concentration" binding:"omitempty,gte=0"`
	ConcentrationUnit string            `json:"concentration_unit" binding:"max=16"`
	Location          string            `json:"location" binding:"max=128"`
	ReceivedDate      string            `json:"received_date" binding:"omitempty,datetime=2006-01-02"`
	ExpiryDate        string            `json:"expiry_date" binding:"omitempty,datetime=2006-01-02"`
	HazardClass       model.HazardClass `json:"hazard_class" binding:"omitempty,oneof=None Flammable Corrosive Toxic 'Health Hazard' 'Environmental Hazard'"`
}

type CreateReagentResp struct {
	UUID string `json:"uuid"`
}

type QueryReagentReq struct {
	common.PageReq
	// Search matches name or CAS number as a case-insensitive substring.
	Search  string `form:"search" json:"search" binding:"max=255"`
	OrderBy string `form:"order_by" json:"order_by" binding:"omitempty,oneof=name quantity received_date expiry_date"`
}

type ReagentItem struct {
	UUID              string            `json:"uuid"`
	Name              string            `json:"name"`
	CASNumber         string            `json:"cas_number,omitempty"`
	Supplier          string            `json:"supplier,omitempty"`
	Quantity          float64           `json:"quantity"`
	Unit              string            `json:"unit,omitempty"`
	Concentration     float64           `json:"concentration,omitempty"`
	ConcentrationUnit string            `json:"concentration_unit,omitempty"`
	Location          string            `json:"location,omitempty"`
	ReceivedDate      string            `json:"received_date,omitempty"`
	ExpiryDate        string            `json:"expiry_date,omitempty"`
	HazardClass       model.HazardClass `json:"hazard_class"`
	CreatedBy         string            `json:"created_by"`
}

// UpdateQuantityReq adjusts stock for a single reagent. Quantity is a
// pointer so zero (used up) binds as a valid value.
type UpdateQuantityReq struct {
	UUID     string   `json:"uuid" binding:"required,uuid"`
	Quantity *float64 `json:"quantity" binding:"required,gte=0"`
}

// AlertsReq overrides the configured alert knobs for one request; zero
// values fall back to config.
type AlertsReq struct {
	WindowDays int     `form:"window_days" json:"window_days" binding:"omitempty,gte=1,lte=365"`
	Threshold  float64 `form:"threshold" json:"threshold" binding:"omitempty,gt=0"`
}

type AlertsResp struct {
	WindowDays   int                 `json:"window_days"`
	Threshold    float64             `json:"threshold"`
	Expiring     []chem.ExpiringItem `json:"expiring"`
	LowStock     []chem.StockItem    `json:"low_stock"`
	ExpirySeries *chem.PlotSeries    `json:"expiry_series"`
}

type LookupCASReq struct {
	CAS string `form:"cas" json:"cas" binding:"required,max=32"`
}

type CompoundResp struct {
	Name             string `json:"name"`
	MolecularFormula string `json:"molecular_formula"`
	SMILES           string `json:"smiles"`
}
