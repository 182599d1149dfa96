package dto

import "time"

// CreateEventRequest is the body of POST /api/calendar. ScheduledAt has no
// past/future constraint.
type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description *string   `json:"description"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	Type        string    `json:"type" binding:"required"`
}

// EventPatch is the body of PATCH /api/calendar/:id.
type EventPatch struct {
	Title       Optional[string]    `json:"title"`
	Description Optional[string]    `json:"description"`
	ScheduledAt Optional[time.Time] `json:"scheduled_at"`
	Type        Optional[string]    `json:"type"`
	Completed   Optional[bool]      `json:"completed"`
}
