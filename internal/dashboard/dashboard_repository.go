package dashboard

import (
	"context"
	"database/sql"

	"github.com/DhavalSuthar-24/internhub/internal/highfive"
	"github.com/DhavalSuthar-24/internhub/internal/submission"
	"github.com/DhavalSuthar-24/internhub/internal/task"
	"github.com/DhavalSuthar-24/internhub/internal/team"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatsRepository issues the counting queries behind the dashboard. Each
// method is a single independent read.
type StatsRepository interface {
	TeamExists(ctx context.Context, teamID uuid.UUID) (bool, error)
	CountMembers(ctx context.Context, teamID uuid.UUID) (int64, error)
	CountDistinctSubmitters(ctx context.Context, teamID uuid.UUID, sprintID *uuid.UUID) (int64, error)
	CountSubmissions(ctx context.Context, teamID uuid.UUID, sprintID *uuid.UUID) (int64, error)
	CountHighFives(ctx context.Context, teamID uuid.UUID, sprintID *uuid.UUID) (int64, error)
	CountCompletedTasks(ctx context.Context, teamID uuid.UUID) (int64, error)
	AverageMood(ctx context.Context, teamID uuid.UUID, sprintID *uuid.UUID) (*float64, error)
}

type statsRepository struct {
	db    *gorm.DB
	teams team.TeamRepository
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db, teams: team.NewTeamRepository(db)}
}

func (r *statsRepository) TeamExists(ctx context.Context, teamID uuid.UUID) (bool, error) {
	return r.teams.TeamExists(ctx, teamID)
}

func (r *statsRepository) CountMembers(ctx context.Context, teamID uuid.UUID) (int64, error) {
	return r.teams.CountTeamMembers(ctx, teamID)
}

func (r *statsRepository) submissions(ctx context.Context, teamID uuid.UUID, sprintID *uuid.UUID) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&submission.Submission{}).Where("team_id = ?", teamID)
	if sprintID != nil {
		query = query.Where("sprint_id = ?", *sprintID)
	}
	return query
}

func (r *statsRepository) CountDistinctSubmitters(ctx context.Context, teamID uuid.UUID, sprintID *uuid.UUID) (int64, error) {
	var count int64
	err := r.submissions(ctx, teamID, sprintID).Select("COUNT(DISTINCT profile_id)").Row().Scan(&count)
	return count, err
}

func (r *statsRepository) CountSubmissions(ctx context.Context, teamID uuid.UUID, sprintID *uuid.UUID) (int64, error) {
	var count int64
	err := r.submissions(ctx, teamID, sprintID).Count(&count).Error
	return count, err
}

func (r *statsRepository) CountHighFives(ctx context.Context, teamID uuid.UUID, sprintID *uuid.UUID) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&highfive.HighFive{}).Where("team_id = ?", teamID)
	if sprintID != nil {
		query = query.Where("sprint_id = ?", *sprintID)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *statsRepository) CountCompletedTasks(ctx context.Context, teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&task.Task{}).
		Where("team_id = ? AND kanban_column = ?", teamID, task.ColumnDone).
		Count(&count).Error
	return count, err
}

// AverageMood returns nil when no matching submission has a mood.
func (r *statsRepository) AverageMood(ctx context.Context, teamID uuid.UUID, sprintID *uuid.UUID) (*float64, error) {
	var avg sql.NullFloat64
	err := r.submissions(ctx, teamID, sprintID).
		Where("mood IS NOT NULL").
		Select("AVG(mood)").
		Row().Scan(&avg)
	if err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}
