package coffeechat

import (
	"context"
	"errors"
	"fmt"

	"github.com/DhavalSuthar-24/internhub/internal/common"
	"github.com/DhavalSuthar-24/internhub/internal/team"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service struct {
	repo    PairingRepository
	log     *zap.Logger
	shuffle shuffleFunc
}

func NewService(repo PairingRepository, log *zap.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// GeneratePairings draws a fresh round of pairings for the team and stores them
// as pending. Only admins and members of the team may draw a round. Teams with
// fewer than two members get an empty round. Reading the roster and every
// insert share one transaction, so a failed insert leaves nothing behind.
func (s *Service) GeneratePairings(ctx context.Context, caller common.Identity, teamID uuid.UUID) ([]CoffeeChatPairing, error) {
	created := []CoffeeChatPairing{}

	err := s.repo.WithTransaction(ctx, func(tx PairingRepository) error {
		exists, err := tx.TeamExists(ctx, teamID)
		if err != nil {
			return fmt.Errorf("check team: %w", err)
		}
		if !exists {
			return team.ErrTeamNotFound
		}
		if err := authorize(ctx, tx, caller, teamID); err != nil {
			return err
		}

		roster, err := tx.GetRoster(ctx, teamID)
		if err != nil {
			return fmt.Errorf("load roster: %w", err)
		}

		for _, p := range pair(roster, s.shuffle) {
			pairing := CoffeeChatPairing{
				TeamID:    teamID,
				MemberAID: p[0],
				MemberBID: p[1],
				Status:    StatusPending,
				CreatedBy: caller.UserID,
			}
			if err := tx.CreatePairing(ctx, &pairing); err != nil {
				return fmt.Errorf("create pairing: %w", err)
			}
			created = append(created, pairing)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, team.ErrTeamNotFound) && !errors.Is(err, ErrNotTeamMember) {
			s.log.Error("pairing generation rolled back",
				zap.String("team_id", teamID.String()),
				zap.String("user_id", caller.UserID.String()),
				zap.Error(err))
		}
		return nil, err
	}

	s.log.Info("coffee chat pairings generated",
		zap.String("team_id", teamID.String()),
		zap.Int("pairings", len(created)))
	return created, nil
}

// ListPairings returns a team's pairings, newest first, optionally narrowed to
// one status.
func (s *Service) ListPairings(ctx context.Context, teamID uuid.UUID, status string) ([]CoffeeChatPairing, error) {
	if status != "" && !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	pairings, err := s.repo.GetPairingsByTeam(ctx, teamID, status)
	if err != nil {
		return nil, fmt.Errorf("list pairings: %w", err)
	}
	if pairings == nil {
		pairings = []CoffeeChatPairing{}
	}
	return pairings, nil
}

// UpdateStatus moves a pairing through its lifecycle, optionally replacing the
// notes. The caller must be an admin or a member of the pairing's team.
func (s *Service) UpdateStatus(ctx context.Context, caller common.Identity, id uuid.UUID, status string, notes *string) (*CoffeeChatPairing, error) {
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	current, err := s.repo.GetPairingByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrPairingNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get pairing: %w", err)
	}
	if err := authorize(ctx, s.repo, caller, current.TeamID); err != nil {
		return nil, err
	}

	p, err := s.repo.UpdatePairing(ctx, id, status, notes)
	if err != nil {
		if errors.Is(err, ErrPairingNotFound) || errors.Is(err, ErrInvalidStatus) {
			return nil, err
		}
		return nil, fmt.Errorf("update pairing: %w", err)
	}
	return p, nil
}

func authorize(ctx context.Context, repo PairingRepository, caller common.Identity, teamID uuid.UUID) error {
	if caller.HasRole(common.RoleAdmin) {
		return nil
	}
	member, err := repo.IsTeamMember(ctx, teamID, caller.UserID)
	if err != nil {
		return fmt.Errorf("check membership: %w", err)
	}
	if !member {
		return ErrNotTeamMember
	}
	return nil
}
