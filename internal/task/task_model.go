// task/model.go
package task

import (
	"github.com/DhavalSuthar-24/internhub/internal/models"
	"github.com/google/uuid"
)

// Kanban columns, left to right.
const (
	ColumnTodo       = "todo"
	ColumnInProgress = "in_progress"
	ColumnReview     = "review"
	ColumnDone       = "done"
)

type Task struct {
	models.BaseModel
	TeamID      uuid.UUID  `json:"teamId" gorm:"type:uuid;not null;index"`
	SprintID    *uuid.UUID `json:"sprintId" gorm:"type:uuid;index"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description"`
	Column      string     `json:"column" gorm:"column:kanban_column;not null;default:'todo'"`
	AssigneeID  *uuid.UUID `json:"assigneeId" gorm:"type:uuid"`
	Position    int        `json:"position" gorm:"not null;default:0"`
}

type ListFilter struct {
	TeamID     uuid.UUID
	SprintID   *uuid.UUID
	AssigneeID *uuid.UUID
	Column     string
}

type CreateTaskRequest struct {
	TeamID      string  `json:"teamId" binding:"required,uuid"`
	SprintID    *string `json:"sprintId" binding:"omitempty,uuid"`
	Title       string  `json:"title" binding:"required,min=1,max=200"`
	Description string  `json:"description" binding:"max=5000"`
	Column      string  `json:"column" binding:"omitempty,oneof=todo in_progress review done"`
	AssigneeID  *string `json:"assigneeId" binding:"omitempty,uuid"`
	Position    int     `json:"position" binding:"min=0"`
}

type UpdateTaskRequest struct {
	SprintID    *string `json:"sprintId" binding:"omitempty,uuid"`
	Title       *string `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,max=5000"`
	AssigneeID  *string `json:"assigneeId" binding:"omitempty,uuid"`
}

// MoveTaskRequest places a task in a column at the given position.
type MoveTaskRequest struct {
	Column   string `json:"column" binding:"required,oneof=todo in_progress review done"`
	Position *int   `json:"position" binding:"required,min=0"`
}
