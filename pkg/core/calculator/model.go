package calculator

import (
	"time"

	"gorm.io/datatypes"

	"github.com/labworks/labman/pkg/common"
	"github.com/labworks/labman/pkg/common/uuid"
	"github.com/labworks/labman/pkg/core/chem"
	"github.com/labworks/labman/pkg/repo/model"
)

type SimpleDilutionReq struct {
	StockConcentration float64 `json:"stock_concentration" binding:"required"`
	FinalVolume        float64 `json:"final_volume" binding:"required"`
	FinalConcentration float64 `json:"final_concentration" binding:"required"`
}

type SimpleDilutionResp struct {
	chem.DilutionResult
}

type SerialDilutionReq struct {
	InitialConcentration float64 `json:"initial_concentration" binding:"required"`
	DilutionFactor       float64 `json:"dilution_factor" binding:"required"`
	Steps                int     `json:"steps" binding:"required"`
	FinalVolume          float64 `json:"final_volume" binding:"required"`
}

type SerialDilutionResp struct {
	Steps  []chem.SerialStep `json:"steps"`
	Series *chem.PlotSeries  `json:"series"`
}

// Solution preparation methods. "molarity" computes the same formula as
// "solid"; both labels are kept for the client.
const (
	MethodSolid    = "solid"
	MethodStock    = "stock"
	MethodMolarity = "molarity"
)

type SolutionReq struct {
	Method string `json:"method" binding:"required,oneof=solid stock molarity"`

	// solid and molarity methods
	Molarity      float64 `json:"molarity"`
	VolumeL       float64 `json:"volume_l"`
	FormulaWeight float64 `json:"formula_weight"`
	PurityPct     float64 `json:"purity_pct"`

	// stock method
	StockMolarity  float64 `json:"stock_molarity"`
	TargetMolarity float64 `json:"target_molarity"`
	TargetVolumeL  float64 `json:"target_volume_l"`
	StockDensity   float64 `json:"stock_density"` // g/mL
}

type SolutionResp struct {
	Method string            `json:"method"`
	Solid  *chem.SolidResult `json:"solid,omitempty"`
	Stock  *chem.StockResult `json:"stock,omitempty"`
}

// Buffer types offered by the calculator menu. Acetate, HEPES and MOPS
// are listed but not computable yet.
const (
	BufferTris      = "Tris"
	BufferPhosphate = "Phosphate"
	BufferAcetate   = "Acetate"
	BufferHEPES     = "HEPES"
	BufferMOPS      = "MOPS"
	BufferCustom    = "Custom"
)

type BufferReq struct {
	BufferType string  `json:"buffer_type" binding:"required"`
	PH         float64 `json:"ph" binding:"required"`

	// Tris and Phosphate
	Concentration float64 `json:"concentration"`
	VolumeL       float64 `json:"volume_l"`
	AddNaCl       bool    `json:"add_nacl"`
	SaltConc      float64 `json:"salt_conc"` // M, Tris only
	AddKCl        bool    `json:"add_kcl"`   // Phosphate only

	// Custom
	Components         string  `json:"components"`
	TotalConcentration float64 `json:"total_concentration"`
}

type BufferResp struct {
	chem.Recipe
}

type HistoryReq struct {
	common.PageReq
}

type HistoryItem struct {
	UUID      uuid.UUID      `json:"uuid"`
	Kind      model.CalcKind `json:"kind"`
	Inputs    datatypes.JSON `json:"inputs"`
	Outputs   datatypes.JSON `json:"outputs"`
	CreatedAt time.Time      `json:"created_at"`
}
