package highfive

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HighFiveRepository interface {
	CreateHighFive(ctx context.Context, h *HighFive) error
	GetHighFiveByID(ctx context.Context, id uuid.UUID) (*HighFive, error)
	GetHighFives(ctx context.Context, filter ListFilter) ([]HighFive, error)
	DeleteHighFive(ctx context.Context, id uuid.UUID) error
}

type highFiveRepository struct {
	db *gorm.DB
}

func NewHighFiveRepository(db *gorm.DB) HighFiveRepository {
	return &highFiveRepository{db: db}
}

func (r *highFiveRepository) CreateHighFive(ctx context.Context, h *HighFive) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *highFiveRepository) GetHighFiveByID(ctx context.Context, id uuid.UUID) (*HighFive, error) {
	var h HighFive
	if err := r.db.WithContext(ctx).First(&h, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &h, nil
}

func (r *highFiveRepository) GetHighFives(ctx context.Context, filter ListFilter) ([]HighFive, error) {
	var highFives []HighFive
	query := r.db.WithContext(ctx).Where("team_id = ?", filter.TeamID)
	if filter.SprintID != nil {
		query = query.Where("sprint_id = ?", *filter.SprintID)
	}
	if filter.ToID != nil {
		query = query.Where("to_id = ?", *filter.ToID)
	}
	err := query.Order("created_at desc").Find(&highFives).Error
	return highFives, err
}

func (r *highFiveRepository) DeleteHighFive(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&HighFive{}, "id = ?", id).Error
}
