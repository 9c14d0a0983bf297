package submission

import (
	"context"
	"errors"

	"github.com/DhavalSuthar-24/internhub/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubmissionRepository interface {
	CreateSubmission(ctx context.Context, s *Submission) error
	GetSubmissionByID(ctx context.Context, id uuid.UUID) (*Submission, error)
	GetSubmissions(ctx context.Context, filter ListFilter, page, limit int) ([]Submission, int64, error)
	UpdateSubmission(ctx context.Context, s *Submission) error
	DeleteSubmission(ctx context.Context, id uuid.UUID) error
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) CreateSubmission(ctx context.Context, s *Submission) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *submissionRepository) GetSubmissionByID(ctx context.Context, id uuid.UUID) (*Submission, error) {
	var s Submission
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *submissionRepository) GetSubmissions(ctx context.Context, filter ListFilter, page, limit int) ([]Submission, int64, error) {
	var submissions []Submission
	var total int64

	query := r.db.WithContext(ctx).Model(&Submission{}).Where("team_id = ?", filter.TeamID)
	if filter.SprintID != nil {
		query = query.Where("sprint_id = ?", *filter.SprintID)
	}
	if filter.ProfileID != nil {
		query = query.Where("profile_id = ?", *filter.ProfileID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Offset(models.Offset(page, limit)).Limit(limit).Order("created_at desc").Find(&submissions).Error; err != nil {
		return nil, 0, err
	}
	return submissions, total, nil
}

func (r *submissionRepository) UpdateSubmission(ctx context.Context, s *Submission) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *submissionRepository) DeleteSubmission(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Submission{}, "id = ?", id).Error
}
