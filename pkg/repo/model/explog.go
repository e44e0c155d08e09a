package model

import "time"

// ExperimentLog references its protocol by row id without a foreign key
// constraint; logs survive independent of the protocol library.
type ExperimentLog struct {
	BaseModel
	Title          string     `gorm:"size:255;not null" json:"title"`
	ExperimentType string     `gorm:"size:32;index" json:"experiment_type"`
	Date           *time.Time `gorm:"type:date;index" json:"date"`
	ProtocolID     *int64     `gorm:"index" json:"protocol_id"`
	Results        string     `gorm:"type:text" json:"results"`
	Observations   string     `gorm:"type:text" json:"observations"`
	DataFile       string     `gorm:"size:255" json:"data_file"`
	CreatedBy      string     `gorm:"size:64;index" json:"created_by"`
}
