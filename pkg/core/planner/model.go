package planner

import (
	"github.com/labworks/labman/pkg/common"
	"github.com/labworks/labman/pkg/repo"
	"github.com/labworks/labman/pkg/repo/model"
)

type CreateEventReq struct {
	Title       string          `json:"title" binding:"required,max=255"`
	Description string          `json:"description"`
	StartDate   string          `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     string          `json:"end_date" binding:"required,datetime=2006-01-02"`
	EventType   model.EventType `json:"event_type" binding:"required,oneof=Experiment Meeting Maintenance Order Other"`
	Frequency   model.Frequency `json:"frequency" binding:"omitempty,oneof=One-time Daily Weekly Monthly"`
}

type CreateEventResp struct {
	UUID string `json:"uuid"`
}

type QueryEventReq struct {
	common.PageReq
	View repo.EventView  `form:"view" json:"view" binding:"omitempty,oneof=all pending completed"`
	Type model.EventType `form:"type" json:"type" binding:"omitempty,oneof=Experiment Meeting Maintenance Order Other"`
}

type EventItem struct {
	UUID        string          `json:"uuid"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	EventType   model.EventType `json:"event_type"`
	Frequency   model.Frequency `json:"frequency"`
	Completed   bool            `json:"completed"`
	CreatedBy   string          `json:"created_by"`
}

type CompleteEventReq struct {
	UUID string `json:"uuid" binding:"required,uuid"`
}

type DeleteEventReq struct {
	UUID string `form:"uuid" json:"uuid" binding:"required,uuid"`
}

// CalendarDay lists what runs on one date; days without events are omitted.
type CalendarDay struct {
	Date   string           `json:"date"`
	Events []*CalendarEvent `json:"events"`
}

type CalendarEvent struct {
	UUID      string          `json:"uuid"`
	Title     string          `json:"title"`
	EventType model.EventType `json:"event_type"`
	Completed bool            `json:"completed"`
}

type CalendarResp struct {
	// From is the cutoff: events ending before it are left out.
	From string         `json:"from"`
	Days []*CalendarDay `json:"days"`
}

type TodayResp struct {
	Date   string       `json:"date"`
	Events []*EventItem `json:"events"`
}
