package model

import "gorm.io/datatypes"

// CalcKind names a calculator as "<group>.<variant>".
type CalcKind string

const (
	CalcSimpleDilution   CalcKind = "dilution.simple"
	CalcSerialDilution   CalcKind = "dilution.serial"
	CalcSolutionSolid    CalcKind = "solution.solid"
	CalcSolutionStock    CalcKind = "solution.stock"
	CalcSolutionMolarity CalcKind = "solution.molarity"
	CalcBufferTris       CalcKind = "buffer.tris"
	CalcBufferPhosphate  CalcKind = "buffer.phosphate"
	CalcBufferCustom     CalcKind = "buffer.custom"
)

// CalcRecord keeps one successful calculator run with its raw input and
// output payloads for the history and dashboard views.
type CalcRecord struct {
	BaseModel
	Kind      CalcKind       `gorm:"size:32;not null;index" json:"kind"`
	Inputs    datatypes.JSON `json:"inputs"`
	Outputs   datatypes.JSON `json:"outputs"`
	CreatedBy string         `gorm:"size:64;index" json:"created_by"`
}
