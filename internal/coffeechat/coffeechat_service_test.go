package coffeechat

import (
	"context"
	"errors"
	"testing"

	"github.com/DhavalSuthar-24/internhub/internal/common"
	"github.com/DhavalSuthar-24/internhub/internal/team"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type repoMock struct{ mock.Mock }

var _ PairingRepository = (*repoMock)(nil)

func (m *repoMock) TeamExists(ctx context.Context, teamID uuid.UUID) (bool, error) {
	args := m.Called(ctx, teamID)
	return args.Bool(0), args.Error(1)
}

func (m *repoMock) GetRoster(ctx context.Context, teamID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *repoMock) IsTeamMember(ctx context.Context, teamID, profileID uuid.UUID) (bool, error) {
	args := m.Called(ctx, teamID, profileID)
	return args.Bool(0), args.Error(1)
}

func (m *repoMock) CreatePairing(ctx context.Context, p *CoffeeChatPairing) error {
	return m.Called(ctx, p).Error(0)
}

func (m *repoMock) GetPairingByID(ctx context.Context, id uuid.UUID) (*CoffeeChatPairing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CoffeeChatPairing), args.Error(1)
}

func (m *repoMock) GetPairingsByTeam(ctx context.Context, teamID uuid.UUID, status string) ([]CoffeeChatPairing, error) {
	args := m.Called(ctx, teamID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]CoffeeChatPairing), args.Error(1)
}

func (m *repoMock) UpdatePairing(ctx context.Context, id uuid.UUID, status string, notes *string) (*CoffeeChatPairing, error) {
	args := m.Called(ctx, id, status, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CoffeeChatPairing), args.Error(1)
}

// WithTransaction runs txFunc against the mock itself.
func (m *repoMock) WithTransaction(_ context.Context, txFunc func(PairingRepository) error) error {
	return txFunc(m)
}

func TestGeneratePairingsUnknownTeam(t *testing.T) {
	ctx := context.Background()
	teamID := uuid.New()
	repo := &repoMock{}
	repo.On("TeamExists", ctx, teamID).Return(false, nil).Once()

	_, err := NewService(repo, zap.NewNop()).GeneratePairings(ctx, common.Identity{UserID: uuid.New()}, teamID)
	require.ErrorIs(t, err, team.ErrTeamNotFound)
	repo.AssertNotCalled(t, "GetRoster", mock.Anything, mock.Anything)
}

func TestGeneratePairingsSmallTeam(t *testing.T) {
	ctx := context.Background()
	teamID := uuid.New()
	caller := common.Identity{UserID: uuid.New(), Role: common.RoleIntern}
	repo := &repoMock{}
	repo.On("TeamExists", ctx, teamID).Return(true, nil).Once()
	repo.On("IsTeamMember", ctx, teamID, caller.UserID).Return(true, nil).Once()
	repo.On("GetRoster", ctx, teamID).Return([]uuid.UUID{caller.UserID}, nil).Once()

	pairings, err := NewService(repo, zap.NewNop()).GeneratePairings(ctx, caller, teamID)
	require.NoError(t, err)
	assert.NotNil(t, pairings)
	assert.Empty(t, pairings)
	repo.AssertNotCalled(t, "CreatePairing", mock.Anything, mock.Anything)
}

func TestGeneratePairingsStampsCallerAndStatus(t *testing.T) {
	ctx := context.Background()
	teamID := uuid.New()
	caller := common.Identity{UserID: uuid.New(), Role: common.RoleAdmin}
	members := roster(4)

	repo := &repoMock{}
	repo.On("TeamExists", ctx, teamID).Return(true, nil).Once()
	repo.On("GetRoster", ctx, teamID).Return(members, nil).Once()
	repo.On("CreatePairing", ctx, mock.AnythingOfType("*coffeechat.CoffeeChatPairing")).Return(nil).Twice()

	svc := NewService(repo, zap.NewNop())
	svc.shuffle = func(int, func(i, j int)) {}

	pairings, err := svc.GeneratePairings(ctx, caller, teamID)
	require.NoError(t, err)
	require.Len(t, pairings, 2)
	for i, p := range pairings {
		assert.Equal(t, teamID, p.TeamID)
		assert.Equal(t, StatusPending, p.Status)
		assert.Nil(t, p.Notes)
		assert.Equal(t, caller.UserID, p.CreatedBy)
		assert.Equal(t, members[2*i], p.MemberAID)
		assert.Equal(t, members[2*i+1], p.MemberBID)
	}
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "IsTeamMember", mock.Anything, mock.Anything, mock.Anything)
}

func TestGeneratePairingsPropagatesInsertFailure(t *testing.T) {
	ctx := context.Background()
	teamID := uuid.New()
	caller := common.Identity{UserID: uuid.New(), Role: common.RoleAdmin}
	repo := &repoMock{}
	repo.On("TeamExists", ctx, teamID).Return(true, nil).Once()
	repo.On("GetRoster", ctx, teamID).Return(roster(4), nil).Once()
	repo.On("CreatePairing", ctx, mock.Anything).Return(nil).Once()
	repo.On("CreatePairing", ctx, mock.Anything).Return(errors.New("connection reset")).Once()

	pairings, err := NewService(repo, zap.NewNop()).GeneratePairings(ctx, caller, teamID)
	require.Error(t, err)
	assert.Nil(t, pairings)
}

func TestGeneratePairingsRejectsNonMember(t *testing.T) {
	ctx := context.Background()
	teamID := uuid.New()
	caller := common.Identity{UserID: uuid.New(), Role: common.RoleMentor}
	repo := &repoMock{}
	repo.On("TeamExists", ctx, teamID).Return(true, nil).Once()
	repo.On("IsTeamMember", ctx, teamID, caller.UserID).Return(false, nil).Once()

	pairings, err := NewService(repo, zap.NewNop()).GeneratePairings(ctx, caller, teamID)
	require.ErrorIs(t, err, ErrNotTeamMember)
	assert.Nil(t, pairings)
	repo.AssertNotCalled(t, "GetRoster", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "CreatePairing", mock.Anything, mock.Anything)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	repo := &repoMock{}

	_, err := NewService(repo, zap.NewNop()).UpdateStatus(context.Background(), common.Identity{UserID: uuid.New()}, uuid.New(), "archived", nil)
	require.ErrorIs(t, err, ErrInvalidStatus)
	repo.AssertNotCalled(t, "GetPairingByID", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "UpdatePairing", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatusRequiresMembership(t *testing.T) {
	ctx := context.Background()
	pairing := &CoffeeChatPairing{TeamID: uuid.New(), Status: StatusPending}
	pairing.ID = uuid.New()
	outsider := common.Identity{UserID: uuid.New(), Role: common.RoleIntern}
	member := common.Identity{UserID: uuid.New(), Role: common.RoleIntern}

	repo := &repoMock{}
	repo.On("GetPairingByID", ctx, pairing.ID).Return(pairing, nil)
	repo.On("IsTeamMember", ctx, pairing.TeamID, outsider.UserID).Return(false, nil).Once()
	repo.On("IsTeamMember", ctx, pairing.TeamID, member.UserID).Return(true, nil).Once()
	repo.On("UpdatePairing", ctx, pairing.ID, StatusScheduled, (*string)(nil)).
		Return(&CoffeeChatPairing{TeamID: pairing.TeamID, Status: StatusScheduled}, nil).Once()

	svc := NewService(repo, zap.NewNop())
	_, err := svc.UpdateStatus(ctx, outsider, pairing.ID, StatusScheduled, nil)
	require.ErrorIs(t, err, ErrNotTeamMember)

	updated, err := svc.UpdateStatus(ctx, member, pairing.ID, StatusScheduled, nil)
	require.NoError(t, err)
	assert.Equal(t, StatusScheduled, updated.Status)
	repo.AssertExpectations(t)
}

func TestListPairingsRejectsUnknownStatus(t *testing.T) {
	_, err := NewService(&repoMock{}, zap.NewNop()).ListPairings(context.Background(), uuid.New(), "archived")
	require.ErrorIs(t, err, ErrInvalidStatus)
}
