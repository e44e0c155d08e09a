package dashboard

import (
	"time"

	"github.com/labworks/labman/pkg/repo/model"
)

type TaskSummary struct {
	UUID      string          `json:"uuid"`
	Title     string          `json:"title"`
	EventType model.EventType `json:"event_type"`
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date"`
}

type ReagentSummary struct {
	UUID         string  `json:"uuid"`
	Name         string  `json:"name"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit,omitempty"`
	ReceivedDate string  `json:"received_date,omitempty"`
	ExpiryDate   string  `json:"expiry_date,omitempty"`
}

type ProtocolSummary struct {
	UUID         string             `json:"uuid"`
	Title        string             `json:"title"`
	ProtocolType model.ProtocolType `json:"protocol_type"`
	CreatedAt    time.Time          `json:"created_at"`
}

type CalcSummary struct {
	UUID      string         `json:"uuid"`
	Kind      model.CalcKind `json:"kind"`
	CreatedAt time.Time      `json:"created_at"`
}

type OverviewResp struct {
	Date            string             `json:"date"`
	TodayTasks      []*TaskSummary     `json:"today_tasks"`
	RecentReagents  []*ReagentSummary  `json:"recent_reagents"`
	RecentProtocols []*ProtocolSummary `json:"recent_protocols"`
	// RecentCalcs covers the current user only; the rest is lab-wide.
	RecentCalcs []*CalcSummary `json:"recent_calcs"`
}
