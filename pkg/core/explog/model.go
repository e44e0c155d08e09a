package explog

import (
	"time"

	"github.com/labworks/labman/pkg/common"
)

type CreateLogReq struct {
	Title          string `json:"title" binding:"required,max=255"`
	ExperimentType string `json:"experiment_type" binding:"max=32"`
	Date           string `json:"date" binding:"required,datetime=2006-01-02"`
	// ProtocolUUID optionally links the log to a protocol; the link is
	// weak and the log outlives the protocol.
	ProtocolUUID string `json:"protocol_uuid" binding:"omitempty,uuid"`
	Results      string `json:"results"`
	Observations string `json:"observations"`
	DataFile     string `json:"data_file" binding:"max=255"`
}

type CreateLogResp struct {
	UUID string `json:"uuid"`
}

type QueryLogReq struct {
	common.PageReq
	// Search matches the title as a case-insensitive substring.
	Search string `form:"search" json:"search" binding:"max=255"`
	Type   string `form:"type" json:"type" binding:"max=32"`
}

type LogItem struct {
	UUID           string `json:"uuid"`
	Title          string `json:"title"`
	ExperimentType string `json:"experiment_type,omitempty"`
	Date           string `json:"date"`
	CreatedBy      string `json:"created_by"`
}

type GetLogReq struct {
	UUID string `uri:"uuid" json:"uuid" binding:"required,uuid"`
}

type ProtocolRef struct {
	UUID  string `json:"uuid"`
	Title string `json:"title"`
}

type LogDetail struct {
	UUID           string       `json:"uuid"`
	Title          string       `json:"title"`
	ExperimentType string       `json:"experiment_type,omitempty"`
	Date           string       `json:"date"`
	Protocol       *ProtocolRef `json:"protocol,omitempty"`
	Results        string       `json:"results,omitempty"`
	Observations   string       `json:"observations,omitempty"`
	DataFile       string       `json:"data_file,omitempty"`
	CreatedBy      string       `json:"created_by"`
	CreatedAt      time.Time    `json:"created_at"`
}
