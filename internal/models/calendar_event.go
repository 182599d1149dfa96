package models

import "time"

type EventType string

const (
	EventTypeCron     EventType = "cron"
	EventTypeReminder EventType = "reminder"
	EventTypeTask     EventType = "task"
)

func (t EventType) Valid() bool {
	switch t {
	case EventTypeCron, EventTypeReminder, EventTypeTask:
		return true
	}
	return false
}

// CalendarEvent is a scheduled entry on the team calendar. Completed is
// toggled independently of the scheduled time; past dates are allowed.
type CalendarEvent struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description"`
	ScheduledAt time.Time `gorm:"not null;index" json:"scheduled_at"`
	Type        EventType `gorm:"type:varchar(20);not null" json:"type"`
	Completed   bool      `gorm:"not null;default:false" json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}

func (CalendarEvent) TableName() string {
	return "calendar"
}
