package models

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

type TaskAssignee string

const (
	AssigneeJamil TaskAssignee = "jamil"
	AssigneeOto   TaskAssignee = "oto"
)

func (a TaskAssignee) Valid() bool {
	return a == AssigneeJamil || a == AssigneeOto
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID          uint64        `gorm:"primarykey" json:"id"`
	Title       string        `gorm:"not null" json:"title"`
	Description *string       `gorm:"type:text" json:"description"`
	Status      TaskStatus    `gorm:"type:varchar(20);not null;default:'todo';index" json:"status"`
	Assignee    TaskAssignee  `gorm:"type:varchar(20);not null;default:'jamil'" json:"assignee"`
	Priority    *TaskPriority `gorm:"type:varchar(20)" json:"priority"`
	CreatedAt   time.Time     `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
