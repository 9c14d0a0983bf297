package sprint

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SprintRepository interface {
	CreateSprint(ctx context.Context, s *Sprint) error
	GetSprintByID(ctx context.Context, id uuid.UUID) (*Sprint, error)
	GetSprintsByTeamID(ctx context.Context, teamID uuid.UUID) ([]Sprint, error)
	UpdateSprint(ctx context.Context, s *Sprint) error
	DeleteSprint(ctx context.Context, id uuid.UUID) error
}

type sprintRepository struct {
	db *gorm.DB
}

func NewSprintRepository(db *gorm.DB) SprintRepository {
	return &sprintRepository{db: db}
}

func (r *sprintRepository) CreateSprint(ctx context.Context, s *Sprint) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *sprintRepository) GetSprintByID(ctx context.Context, id uuid.UUID) (*Sprint, error) {
	var s Sprint
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *sprintRepository) GetSprintsByTeamID(ctx context.Context, teamID uuid.UUID) ([]Sprint, error) {
	var sprints []Sprint
	err := r.db.WithContext(ctx).Where("team_id = ?", teamID).Order("start_date desc").Find(&sprints).Error
	return sprints, err
}

func (r *sprintRepository) UpdateSprint(ctx context.Context, s *Sprint) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *sprintRepository) DeleteSprint(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Sprint{}, "id = ?", id).Error
}
