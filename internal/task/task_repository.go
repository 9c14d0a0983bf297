package task

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskRepository interface {
	CreateTask(ctx context.Context, t *Task) error
	GetTaskByID(ctx context.Context, id uuid.UUID) (*Task, error)
	GetTasks(ctx context.Context, filter ListFilter) ([]Task, error)
	UpdateTask(ctx context.Context, t *Task) error
	MoveTask(ctx context.Context, id uuid.UUID, column string, position int) error
	DeleteTask(ctx context.Context, id uuid.UUID) error
}

type taskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) CreateTask(ctx context.Context, t *Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *taskRepository) GetTaskByID(ctx context.Context, id uuid.UUID) (*Task, error) {
	var t Task
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// boardOrder sorts columns left to right as the board shows them.
const boardOrder = "CASE kanban_column WHEN 'todo' THEN 0 WHEN 'in_progress' THEN 1 WHEN 'review' THEN 2 WHEN 'done' THEN 3 ELSE 4 END"

// GetTasks returns tasks ordered as a board renders them: by column, then
// position within the column.
func (r *taskRepository) GetTasks(ctx context.Context, filter ListFilter) ([]Task, error) {
	var tasks []Task
	query := r.db.WithContext(ctx).Where("team_id = ?", filter.TeamID)
	if filter.SprintID != nil {
		query = query.Where("sprint_id = ?", *filter.SprintID)
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}
	if filter.Column != "" {
		query = query.Where("kanban_column = ?", filter.Column)
	}
	err := query.Order(boardOrder).Order("position asc").Order("created_at asc").Find(&tasks).Error
	return tasks, err
}

func (r *taskRepository) UpdateTask(ctx context.Context, t *Task) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *taskRepository) MoveTask(ctx context.Context, id uuid.UUID, column string, position int) error {
	return r.db.WithContext(ctx).Model(&Task{}).Where("id = ?", id).
		Updates(map[string]interface{}{"kanban_column": column, "position": position}).Error
}

func (r *taskRepository) DeleteTask(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Task{}, "id = ?", id).Error
}
