package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jamil/mission-control-api/internal/calendar"
	"github.com/jamil/mission-control-api/internal/dto"
	"github.com/jamil/mission-control-api/internal/models"
	"github.com/jamil/mission-control-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrEventNotFound     = errors.New("calendar event not found")
	ErrEventTitleEmpty   = errors.New("event title cannot be empty")
	ErrEventTimeRequired = errors.New("event scheduled time is required")
	ErrInvalidEventType  = errors.New("invalid event type")
	ErrCompletedNull     = errors.New("completed flag cannot be null")
)

// CalendarService provides business logic for calendar events and the month
// grid.
type CalendarService struct {
	calendarRepo repository.CalendarRepository
}

// NewCalendarService creates a new CalendarService.
func NewCalendarService(calendarRepo repository.CalendarRepository) *CalendarService {
	return &CalendarService{calendarRepo: calendarRepo}
}

// ListEvents returns all events ordered by scheduled time ascending.
func (s *CalendarService) ListEvents() ([]models.CalendarEvent, error) {
	events, err := s.calendarRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}
	return events, nil
}

// CreateEvent creates a new event. The scheduled time may lie in the past;
// completed starts false.
func (s *CalendarService) CreateEvent(req dto.CreateEventRequest) (*models.CalendarEvent, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrEventTitleEmpty
	}
	if req.ScheduledAt.IsZero() {
		return nil, ErrEventTimeRequired
	}
	eventType := models.EventType(req.Type)
	if !eventType.Valid() {
		return nil, ErrInvalidEventType
	}

	event := &models.CalendarEvent{
		Title:       req.Title,
		Description: req.Description,
		ScheduledAt: req.ScheduledAt,
		Type:        eventType,
	}

	if err := s.calendarRepo.Create(event); err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}
	return event, nil
}

// UpdateEvent applies a partial update. Completed toggles independently of
// the scheduled time.
func (s *CalendarService) UpdateEvent(id uint64, patch dto.EventPatch) (*models.CalendarEvent, error) {
	event, err := s.calendarRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to load calendar event: %w", err)
	}

	updates := map[string]any{}

	if patch.Title.Set {
		if !patch.Title.Valid || strings.TrimSpace(patch.Title.Value) == "" {
			return nil, ErrEventTitleEmpty
		}
		updates["title"] = patch.Title.Value
	}
	if patch.Description.Set {
		updates["description"] = patch.Description.Ptr()
	}
	if patch.ScheduledAt.Set {
		if !patch.ScheduledAt.Valid || patch.ScheduledAt.Value.IsZero() {
			return nil, ErrEventTimeRequired
		}
		updates["scheduled_at"] = patch.ScheduledAt.Value
	}
	if patch.Type.Set {
		eventType := models.EventType(patch.Type.Value)
		if !patch.Type.Valid || !eventType.Valid() {
			return nil, ErrInvalidEventType
		}
		updates["type"] = eventType
	}
	if patch.Completed.Set {
		if !patch.Completed.Valid {
			return nil, ErrCompletedNull
		}
		updates["completed"] = patch.Completed.Value
	}

	if len(updates) == 0 {
		return event, nil
	}

	if err := s.calendarRepo.Patch(id, updates); err != nil {
		return nil, fmt.Errorf("failed to update calendar event: %w", err)
	}

	event, err = s.calendarRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload calendar event: %w", err)
	}
	return event, nil
}

// DeleteEvent removes an event.
func (s *CalendarService) DeleteEvent(id uint64) error {
	if err := s.calendarRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		return fmt.Errorf("failed to delete calendar event: %w", err)
	}
	return nil
}

// GridCell is a month-grid cell with the events falling on its calendar day.
type GridCell struct {
	calendar.Cell
	Events []models.CalendarEvent `json:"events"`
}

// MonthGrid builds the Monday-aligned grid for the given month and places
// every event on its calendar day. Events are matched by day, not by time of
// day, and the full per-day set is returned; truncation is a display concern.
func (s *CalendarService) MonthGrid(year int, month time.Month) ([]GridCell, error) {
	events, err := s.calendarRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	cells := calendar.MonthGrid(year, month)
	grid := make([]GridCell, len(cells))
	for i, cell := range cells {
		grid[i] = GridCell{Cell: cell, Events: []models.CalendarEvent{}}
		for _, event := range events {
			if calendar.SameDay(event.ScheduledAt, cell.Date) {
				grid[i].Events = append(grid[i].Events, event)
			}
		}
	}
	return grid, nil
}
