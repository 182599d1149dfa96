package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jamil/mission-control-api/internal/dto"
	"github.com/jamil/mission-control-api/internal/models"
	"github.com/jamil/mission-control-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrTaskTitleEmpty  = errors.New("task title cannot be empty")
	ErrInvalidStatus   = errors.New("invalid task status")
	ErrInvalidAssignee = errors.New("invalid task assignee")
	ErrInvalidPriority = errors.New("invalid task priority")
)

// TaskService provides business logic for the task board.
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// ListTasks returns all tasks, newest first.
func (s *TaskService) ListTasks() ([]models.Task, error) {
	tasks, err := s.taskRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// CreateTask creates a new task. Omitted status and assignee fall back to the
// board defaults ("todo" and "jamil"); priority stays null unless provided.
func (s *TaskService) CreateTask(req dto.CreateTaskRequest) (*models.Task, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrTaskTitleEmpty
	}

	status := models.TaskStatusTodo
	if req.Status != "" {
		status = models.TaskStatus(req.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
	}

	assignee := models.AssigneeJamil
	if req.Assignee != "" {
		assignee = models.TaskAssignee(req.Assignee)
		if !assignee.Valid() {
			return nil, ErrInvalidAssignee
		}
	}

	var priority *models.TaskPriority
	if req.Priority != nil {
		p := models.TaskPriority(*req.Priority)
		if !p.Valid() {
			return nil, ErrInvalidPriority
		}
		priority = &p
	}

	task := &models.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Assignee:    assignee,
		Priority:    priority,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// UpdateTask applies a partial update: omitted fields keep their stored
// value, null clears the nullable ones (description, priority).
func (s *TaskService) UpdateTask(id uint64, patch dto.TaskPatch) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to load task: %w", err)
	}

	updates := map[string]any{}

	if patch.Title.Set {
		if !patch.Title.Valid || strings.TrimSpace(patch.Title.Value) == "" {
			return nil, ErrTaskTitleEmpty
		}
		updates["title"] = patch.Title.Value
	}
	if patch.Description.Set {
		updates["description"] = patch.Description.Ptr()
	}
	if patch.Status.Set {
		status := models.TaskStatus(patch.Status.Value)
		if !patch.Status.Valid || !status.Valid() {
			return nil, ErrInvalidStatus
		}
		updates["status"] = status
	}
	if patch.Assignee.Set {
		assignee := models.TaskAssignee(patch.Assignee.Value)
		if !patch.Assignee.Valid || !assignee.Valid() {
			return nil, ErrInvalidAssignee
		}
		updates["assignee"] = assignee
	}
	if patch.Priority.Set {
		if !patch.Priority.Valid {
			updates["priority"] = nil
		} else {
			priority := models.TaskPriority(patch.Priority.Value)
			if !priority.Valid() {
				return nil, ErrInvalidPriority
			}
			updates["priority"] = priority
		}
	}

	if len(updates) == 0 {
		return task, nil
	}

	if err := s.taskRepo.Patch(id, updates); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	task, err = s.taskRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload task: %w", err)
	}
	return task, nil
}

// DeleteTask removes a task. Deleting an unknown id reports not-found rather
// than success.
func (s *TaskService) DeleteTask(id uint64) error {
	if err := s.taskRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
