package dashboard

import (
	"context"
	"fmt"

	"github.com/DhavalSuthar-24/internhub/internal/common"
	"github.com/DhavalSuthar-24/internhub/internal/team"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service struct {
	repo StatsRepository
	log  *zap.Logger
}

func NewService(repo StatsRepository, log *zap.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// ComputeStats aggregates a team's activity. A nil sprintID covers every
// sprint. The counts are read independently and are not a consistent snapshot.
func (s *Service) ComputeStats(ctx context.Context, caller common.Identity, teamID uuid.UUID, sprintID *uuid.UUID) (DashboardStats, error) {
	var stats DashboardStats

	exists, err := s.repo.TeamExists(ctx, teamID)
	if err != nil {
		return stats, fmt.Errorf("check team: %w", err)
	}
	if !exists {
		return stats, team.ErrTeamNotFound
	}

	if stats.TotalInterns, err = s.repo.CountMembers(ctx, teamID); err != nil {
		return stats, fmt.Errorf("count members: %w", err)
	}
	if stats.SubmittedThisSprint, err = s.repo.CountDistinctSubmitters(ctx, teamID, sprintID); err != nil {
		return stats, fmt.Errorf("count submitters: %w", err)
	}
	if stats.TotalSubmissions, err = s.repo.CountSubmissions(ctx, teamID, sprintID); err != nil {
		return stats, fmt.Errorf("count submissions: %w", err)
	}
	if stats.HighFivesGiven, err = s.repo.CountHighFives(ctx, teamID, sprintID); err != nil {
		return stats, fmt.Errorf("count high-fives: %w", err)
	}
	if stats.TasksCompleted, err = s.repo.CountCompletedTasks(ctx, teamID); err != nil {
		return stats, fmt.Errorf("count completed tasks: %w", err)
	}
	if stats.AverageMood, err = s.repo.AverageMood(ctx, teamID, sprintID); err != nil {
		return stats, fmt.Errorf("average mood: %w", err)
	}

	// Submitters who have since left the team can push this below zero.
	stats.MissingSubmissions = max(0, stats.TotalInterns-stats.SubmittedThisSprint)

	s.log.Debug("dashboard stats computed",
		zap.String("team_id", teamID.String()),
		zap.String("user_id", caller.UserID.String()),
		zap.Int64("total_interns", stats.TotalInterns))
	return stats, nil
}
