package model

import "time"

type EventType string

const (
	EventExperiment  EventType = "Experiment"
	EventMeeting     EventType = "Meeting"
	EventMaintenance EventType = "Maintenance"
	EventOrder       EventType = "Order"
	EventOther       EventType = "Other"
)

type Frequency string

const (
	FreqOneTime Frequency = "One-time"
	FreqDaily   Frequency = "Daily"
	FreqWeekly  Frequency = "Weekly"
	FreqMonthly Frequency = "Monthly"
)

// Event.Completed only ever flips false -> true; there is no un-complete
// path. Frequency is recorded but not expanded into occurrences.
type Event struct {
	BaseModel
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	StartDate   *time.Time `gorm:"type:date;index" json:"start_date"`
	EndDate     *time.Time `gorm:"type:date;index" json:"end_date"`
	EventType   EventType  `gorm:"size:32;not null;index" json:"event_type"`
	Frequency   Frequency  `gorm:"size:16;default:One-time" json:"frequency"`
	Completed   bool       `gorm:"not null;default:false;index" json:"completed"`
	CreatedBy   string     `gorm:"size:64;index" json:"created_by"`
}
