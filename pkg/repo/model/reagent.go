package model

import "time"

type HazardClass string

const (
	HazardNone          HazardClass = "None"
	HazardFlammable     HazardClass = "Flammable"
	HazardCorrosive     HazardClass = "Corrosive"
	HazardToxic         HazardClass = "Toxic"
	HazardHealth        HazardClass = "Health Hazard"
	HazardEnvironmental HazardClass = "Environmental Hazard"
)

// Reagent rows are never deleted; stock adjustments go through quantity
// updates only.
type Reagent struct {
	BaseModel
	Name              string      `gorm:"size:255;not null;index" json:"name"`
	CASNumber         string      `gorm:"size:32;index" json:"cas_number"`
	Supplier          string      `gorm:"size:128" json:"supplier"`
	Quantity          float64     `gorm:"not null;default:0" json:"quantity"`
	Unit              string      `gorm:"size:16" json:"unit"`
	Concentration     float64     `json:"concentration"`
	ConcentrationUnit string      `gorm:"size:16" json:"concentration_unit"`
	Location          string      `gorm:"size:128" json:"location"`
	ReceivedDate      *time.Time  `gorm:"type:date" json:"received_date"`
	ExpiryDate        *time.Time  `gorm:"type:date;index" json:"expiry_date"`
	HazardClass       HazardClass `gorm:"size:32;default:None" json:"hazard_class"`
	CreatedBy         string      `gorm:"size:64;index" json:"created_by"`
}
