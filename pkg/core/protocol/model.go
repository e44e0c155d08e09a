package protocol

import (
	"time"

	"github.com/labworks/labman/pkg/common"
	"github.com/labworks/labman/pkg/repo/model"
)

type CreateProtocolReq struct {
	Title        string             `json:"title" binding:"required,max=255"`
	ProtocolType model.ProtocolType `json:"protocol_type" binding:"required,oneof=DNA/RNA Protein 'Cell Culture' Biochemistry Other"`
	Description  string             `json:"description"`
	// Steps is the newline-delimited procedure text as typed.
	Steps string `json:"steps" binding:"required"`
}

type CreateProtocolResp struct {
	UUID string `json:"uuid"`
}

type QueryProtocolReq struct {
	common.PageReq
	// Search matches title or description as a case-insensitive substring.
	Search string             `form:"search" json:"search" binding:"max=255"`
	Type   model.ProtocolType `form:"type" json:"type" binding:"omitempty,oneof=DNA/RNA Protein 'Cell Culture' Biochemistry Other"`
}

// ProtocolItem is the list view; the full step text stays behind Get.
type ProtocolItem struct {
	UUID         string             `json:"uuid"`
	Title        string             `json:"title"`
	ProtocolType model.ProtocolType `json:"protocol_type"`
	Description  string             `json:"description,omitempty"`
	StepCount    int                `json:"step_count"`
	CreatedBy    string             `json:"created_by"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

type GetProtocolReq struct {
	UUID string `uri:"uuid" json:"uuid" binding:"required,uuid"`
}

type ProtocolDetail struct {
	UUID         string             `json:"uuid"`
	Title        string             `json:"title"`
	ProtocolType model.ProtocolType `json:"protocol_type"`
	Description  string             `json:"description,omitempty"`
	Steps        []string           `json:"steps"`
	CreatedBy    string             `json:"created_by"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}
