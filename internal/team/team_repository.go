package team

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrTeamNotFound is returned by services when a team id resolves to nothing.
var ErrTeamNotFound = errors.New("team not found")

// TeamRepository defines the read operations other features need on teams.
type TeamRepository interface {
	GetTeamByID(ctx context.Context, id uuid.UUID) (*Team, error)
	TeamExists(ctx context.Context, id uuid.UUID) (bool, error)
	GetTeamsByProfileID(ctx context.Context, profileID uuid.UUID) ([]Team, error)

	GetTeamMembers(ctx context.Context, teamID uuid.UUID) ([]TeamMember, error)
	GetMemberProfileIDs(ctx context.Context, teamID uuid.UUID) ([]uuid.UUID, error)
	CountTeamMembers(ctx context.Context, teamID uuid.UUID) (int64, error)
	IsTeamMember(ctx context.Context, teamID, profileID uuid.UUID) (bool, error)
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new instance of TeamRepository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

// --- Team Operations ---

func (r *teamRepository) GetTeamByID(ctx context.Context, id uuid.UUID) (*Team, error) {
	var team Team
	if err := r.db.WithContext(ctx).First(&team, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) TeamExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Team{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *teamRepository) GetTeamsByProfileID(ctx context.Context, profileID uuid.UUID) ([]Team, error) {
	var teams []Team
	err := r.db.WithContext(ctx).
		Joins("JOIN team_members ON team_members.team_id = teams.id").
		Where("team_members.profile_id = ?", profileID).
		Order("teams.name asc").
		Find(&teams).Error
	return teams, err
}

// --- TeamMember Operations ---

func (r *teamRepository) GetTeamMembers(ctx context.Context, teamID uuid.UUID) ([]TeamMember, error) {
	var members []TeamMember
	err := r.db.WithContext(ctx).Preload("Profile").
		Where("team_id = ?", teamID).
		Order("created_at asc").
		Find(&members).Error
	return members, err
}

// GetMemberProfileIDs returns the roster in join order.
func (r *teamRepository) GetMemberProfileIDs(ctx context.Context, teamID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&TeamMember{}).
		Where("team_id = ?", teamID).
		Order("created_at asc").
		Pluck("profile_id", &ids).Error
	return ids, err
}

func (r *teamRepository) CountTeamMembers(ctx context.Context, teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&TeamMember{}).Where("team_id = ?", teamID).Count(&count).Error
	return count, err
}

func (r *teamRepository) IsTeamMember(ctx context.Context, teamID, profileID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&TeamMember{}).
		Where("team_id = ? AND profile_id = ?", teamID, profileID).
		Count(&count).Error
	return count > 0, err
}
