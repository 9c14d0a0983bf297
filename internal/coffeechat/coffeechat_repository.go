package coffeechat

import (
	"context"
	"errors"

	"github.com/DhavalSuthar-24/internhub/internal/team"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PairingRepository persists pairings and reads the roster they are drawn from.
type PairingRepository interface {
	TeamExists(ctx context.Context, teamID uuid.UUID) (bool, error)
	GetRoster(ctx context.Context, teamID uuid.UUID) ([]uuid.UUID, error)
	IsTeamMember(ctx context.Context, teamID, profileID uuid.UUID) (bool, error)

	CreatePairing(ctx context.Context, p *CoffeeChatPairing) error
	GetPairingByID(ctx context.Context, id uuid.UUID) (*CoffeeChatPairing, error)
	GetPairingsByTeam(ctx context.Context, teamID uuid.UUID, status string) ([]CoffeeChatPairing, error)
	UpdatePairing(ctx context.Context, id uuid.UUID, status string, notes *string) (*CoffeeChatPairing, error)

	WithTransaction(ctx context.Context, txFunc func(PairingRepository) error) error
}

type pairingRepository struct {
	db    *gorm.DB
	teams team.TeamRepository
}

func NewPairingRepository(db *gorm.DB) PairingRepository {
	return &pairingRepository{db: db, teams: team.NewTeamRepository(db)}
}

func (r *pairingRepository) TeamExists(ctx context.Context, teamID uuid.UUID) (bool, error) {
	return r.teams.TeamExists(ctx, teamID)
}

// GetRoster returns member profile ids in join order.
func (r *pairingRepository) GetRoster(ctx context.Context, teamID uuid.UUID) ([]uuid.UUID, error) {
	return r.teams.GetMemberProfileIDs(ctx, teamID)
}

func (r *pairingRepository) IsTeamMember(ctx context.Context, teamID, profileID uuid.UUID) (bool, error) {
	return r.teams.IsTeamMember(ctx, teamID, profileID)
}

func (r *pairingRepository) CreatePairing(ctx context.Context, p *CoffeeChatPairing) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *pairingRepository) GetPairingByID(ctx context.Context, id uuid.UUID) (*CoffeeChatPairing, error) {
	var p CoffeeChatPairing
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPairingNotFound
		}
		return nil, err
	}
	return &p, nil
}

// GetPairingsByTeam lists newest first. An empty status matches every status.
func (r *pairingRepository) GetPairingsByTeam(ctx context.Context, teamID uuid.UUID, status string) ([]CoffeeChatPairing, error) {
	var pairings []CoffeeChatPairing
	query := r.db.WithContext(ctx).Where("team_id = ?", teamID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("created_at desc").Find(&pairings).Error
	return pairings, err
}

// UpdatePairing sets the status and, when given, the notes. Nothing is written
// for a status outside the lifecycle.
func (r *pairingRepository) UpdatePairing(ctx context.Context, id uuid.UUID, status string, notes *string) (*CoffeeChatPairing, error) {
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	updates := map[string]interface{}{"status": status}
	if notes != nil {
		updates["notes"] = *notes
	}
	res := r.db.WithContext(ctx).Model(&CoffeeChatPairing{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrPairingNotFound
	}
	return r.GetPairingByID(ctx, id)
}

func (r *pairingRepository) WithTransaction(ctx context.Context, txFunc func(PairingRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &pairingRepository{db: tx, teams: team.NewTeamRepository(tx)}
		return txFunc(txRepo)
	})
}
