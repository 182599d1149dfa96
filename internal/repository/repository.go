package repository

import (
	"github.com/jamil/mission-control-api/internal/models"
)

// TaskRepository defines data access for the task board.
type TaskRepository interface {
	// Create inserts a new task.
	Create(task *models.Task) error

	// List returns all tasks, newest first.
	List() ([]models.Task, error)

	// FindByID finds a task by ID.
	FindByID(id uint64) (*models.Task, error)

	// Patch applies the given column updates to a task.
	Patch(id uint64, updates map[string]any) error

	// Delete removes a task outright.
	Delete(id uint64) error
}

// ContentRepository defines data access for the content pipeline.
type ContentRepository interface {
	Create(item *models.ContentItem) error
	List() ([]models.ContentItem, error)
	FindByID(id uint64) (*models.ContentItem, error)
	Patch(id uint64, updates map[string]any) error
	Delete(id uint64) error
}

// CalendarRepository defines data access for calendar events.
type CalendarRepository interface {
	Create(event *models.CalendarEvent) error

	// List returns all events ordered by scheduled time ascending.
	List() ([]models.CalendarEvent, error)

	FindByID(id uint64) (*models.CalendarEvent, error)
	Patch(id uint64, updates map[string]any) error
	Delete(id uint64) error
}

// MemoryRepository defines data access for memories.
type MemoryRepository interface {
	Create(memory *models.Memory) error
	List() ([]models.Memory, error)
	FindByID(id uint64) (*models.Memory, error)
	Patch(id uint64, updates map[string]any) error
	Delete(id uint64) error
}

// TeamRepository defines data access for team members.
type TeamRepository interface {
	Create(member *models.TeamMember) error

	// List returns all members, leader first, then by ID ascending.
	List() ([]models.TeamMember, error)

	FindByID(id uint64) (*models.TeamMember, error)

	// FindByName finds a member by exact name; used by the seed guard.
	FindByName(name string) (*models.TeamMember, error)

	Patch(id uint64, updates map[string]any) error
	Delete(id uint64) error
}
