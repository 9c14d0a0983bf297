package coffeechat

import (
	"context"
	"errors"
	"testing"

	"github.com/DhavalSuthar-24/internhub/internal/common"
	"github.com/DhavalSuthar-24/internhub/internal/team"
	"github.com/DhavalSuthar-24/internhub/internal/testutil"
	"github.com/DhavalSuthar-24/internhub/internal/user"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func seedTeam(t *testing.T, size int) (*gorm.DB, uuid.UUID, []uuid.UUID) {
	t.Helper()
	db := testutil.SetupTestDB(t, &user.Profile{}, &team.Team{}, &team.TeamMember{}, &CoffeeChatPairing{})

	squad := &team.Team{Name: "Design"}
	testutil.MustCreate(t, db, squad)
	members := roster(size)
	for _, id := range members {
		testutil.MustCreate(t, db, &team.TeamMember{TeamID: squad.ID, ProfileID: id})
	}
	return db, squad.ID, members
}

// failingRepo fails every CreatePairing after the first `allow` calls.
type failingRepo struct {
	PairingRepository
	allow int
	calls *int
}

func (f *failingRepo) CreatePairing(ctx context.Context, p *CoffeeChatPairing) error {
	*f.calls++
	if *f.calls > f.allow {
		return errors.New("insert failed")
	}
	return f.PairingRepository.CreatePairing(ctx, p)
}

func (f *failingRepo) WithTransaction(ctx context.Context, txFunc func(PairingRepository) error) error {
	return f.PairingRepository.WithTransaction(ctx, func(tx PairingRepository) error {
		return txFunc(&failingRepo{PairingRepository: tx, allow: f.allow, calls: f.calls})
	})
}

func TestGeneratePairingsPersistsRound(t *testing.T) {
	db, teamID, members := seedTeam(t, 4)
	ctx := context.Background()
	caller := common.Identity{UserID: members[0], Role: common.RoleIntern}

	pairings, err := NewService(NewPairingRepository(db), zap.NewNop()).GeneratePairings(ctx, caller, teamID)
	require.NoError(t, err)
	require.Len(t, pairings, 2)

	var covered []uuid.UUID
	for _, p := range pairings {
		covered = append(covered, p.MemberAID, p.MemberBID)
	}
	assert.ElementsMatch(t, members, covered)

	var stored []CoffeeChatPairing
	require.NoError(t, db.Where("team_id = ?", teamID).Find(&stored).Error)
	require.Len(t, stored, 2)
	for _, p := range stored {
		assert.Equal(t, StatusPending, p.Status)
		assert.Equal(t, caller.UserID, p.CreatedBy)
	}
}

func TestGeneratePairingsRollsBack(t *testing.T) {
	db, teamID, _ := seedTeam(t, 6)
	calls := 0
	repo := &failingRepo{PairingRepository: NewPairingRepository(db), allow: 2, calls: &calls}

	caller := common.Identity{UserID: uuid.New(), Role: common.RoleAdmin}

	_, err := NewService(repo, zap.NewNop()).GeneratePairings(context.Background(), caller, teamID)
	require.Error(t, err)
	assert.Equal(t, 3, calls)

	var count int64
	require.NoError(t, db.Model(&CoffeeChatPairing{}).Count(&count).Error)
	assert.Zero(t, count, "a failed round must leave no pairings behind")
}

func TestGeneratePairingsUnknownTeamWritesNothing(t *testing.T) {
	db, _, _ := seedTeam(t, 2)

	_, err := NewService(NewPairingRepository(db), zap.NewNop()).GeneratePairings(context.Background(), common.Identity{UserID: uuid.New()}, uuid.New())
	require.ErrorIs(t, err, team.ErrTeamNotFound)

	var count int64
	require.NoError(t, db.Model(&CoffeeChatPairing{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGeneratePairingsNonMemberWritesNothing(t *testing.T) {
	db, teamID, _ := seedTeam(t, 4)
	outsider := common.Identity{UserID: uuid.New(), Role: common.RoleIntern}

	_, err := NewService(NewPairingRepository(db), zap.NewNop()).GeneratePairings(context.Background(), outsider, teamID)
	require.ErrorIs(t, err, ErrNotTeamMember)

	var count int64
	require.NoError(t, db.Model(&CoffeeChatPairing{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdatePairing(t *testing.T) {
	db, teamID, members := seedTeam(t, 2)
	ctx := context.Background()
	repo := NewPairingRepository(db)

	p := &CoffeeChatPairing{TeamID: teamID, MemberAID: members[0], MemberBID: members[1], Status: StatusPending, CreatedBy: members[0]}
	require.NoError(t, repo.CreatePairing(ctx, p))

	_, err := repo.UpdatePairing(ctx, p.ID, "archived", nil)
	require.ErrorIs(t, err, ErrInvalidStatus)
	unchanged, err := repo.GetPairingByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, unchanged.Status)

	notes := "Met over lunch"
	updated, err := repo.UpdatePairing(ctx, p.ID, StatusCompleted, &notes)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, updated.Status)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, notes, *updated.Notes)

	// Omitted notes are left alone.
	updated, err = repo.UpdatePairing(ctx, p.ID, StatusScheduled, nil)
	require.NoError(t, err)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, notes, *updated.Notes)

	_, err = repo.UpdatePairing(ctx, uuid.New(), StatusSkipped, nil)
	require.ErrorIs(t, err, ErrPairingNotFound)
}

func TestGetPairingsByTeamFiltersStatus(t *testing.T) {
	db, teamID, members := seedTeam(t, 2)
	ctx := context.Background()
	repo := NewPairingRepository(db)

	testutil.MustCreate(t, db,
		&CoffeeChatPairing{TeamID: teamID, MemberAID: members[0], MemberBID: members[1], Status: StatusPending, CreatedBy: members[0]},
		&CoffeeChatPairing{TeamID: teamID, MemberAID: members[1], MemberBID: members[0], Status: StatusSkipped, CreatedBy: members[0]},
		&CoffeeChatPairing{TeamID: uuid.New(), MemberAID: members[0], MemberBID: members[1], Status: StatusPending, CreatedBy: members[0]},
	)

	all, err := repo.GetPairingsByTeam(ctx, teamID, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	skipped, err := repo.GetPairingsByTeam(ctx, teamID, StatusSkipped)
	require.NoError(t, err)
	require.Len(t, skipped, 1)
	assert.Equal(t, StatusSkipped, skipped[0].Status)
}
