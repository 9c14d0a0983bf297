package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DhavalSuthar-24/internhub/internal/common"
	"github.com/DhavalSuthar-24/internhub/internal/highfive"
	"github.com/DhavalSuthar-24/internhub/internal/submission"
	"github.com/DhavalSuthar-24/internhub/internal/task"
	"github.com/DhavalSuthar-24/internhub/internal/team"
	"github.com/DhavalSuthar-24/internhub/internal/testutil"
	"github.com/DhavalSuthar-24/internhub/internal/user"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	return testutil.SetupTestDB(t,
		&user.Profile{}, &team.Team{}, &team.TeamMember{},
		&submission.Submission{}, &highfive.HighFive{}, &task.Task{},
	)
}

func intPtr(v int) *int { return &v }

// seedScenario builds a five-member team where three members submitted for the
// sprint with moods 2, 4 and none.
func seedScenario(t *testing.T, db *gorm.DB) (teamID, sprintID uuid.UUID) {
	t.Helper()
	squad := &team.Team{Name: "Search"}
	testutil.MustCreate(t, db, squad)
	sprintID = uuid.New()

	members := make([]uuid.UUID, 5)
	for i := range members {
		members[i] = uuid.New()
		testutil.MustCreate(t, db, &team.TeamMember{TeamID: squad.ID, ProfileID: members[i]})
	}
	testutil.MustCreate(t, db,
		&submission.Submission{TeamID: squad.ID, SprintID: sprintID, ProfileID: members[0], Mood: intPtr(2)},
		&submission.Submission{TeamID: squad.ID, SprintID: sprintID, ProfileID: members[1], Mood: intPtr(4)},
		&submission.Submission{TeamID: squad.ID, SprintID: sprintID, ProfileID: members[2]},
		// Another sprint, excluded when filtering by sprintID.
		&submission.Submission{TeamID: squad.ID, SprintID: uuid.New(), ProfileID: members[0], Mood: intPtr(5)},
		&highfive.HighFive{TeamID: squad.ID, SprintID: &sprintID, FromID: members[0], ToID: members[1]},
		&highfive.HighFive{TeamID: squad.ID, FromID: members[1], ToID: members[0]},
		&task.Task{TeamID: squad.ID, Title: "done", Column: task.ColumnDone},
		&task.Task{TeamID: squad.ID, Title: "open", Column: task.ColumnInProgress},
	)
	return squad.ID, sprintID
}

func TestComputeStatsForSprint(t *testing.T) {
	db := setupDB(t)
	teamID, sprintID := seedScenario(t, db)
	svc := NewService(NewStatsRepository(db), zap.NewNop())

	stats, err := svc.ComputeStats(context.Background(), common.Identity{UserID: uuid.New()}, teamID, &sprintID)
	require.NoError(t, err)

	assert.EqualValues(t, 5, stats.TotalInterns)
	assert.EqualValues(t, 3, stats.SubmittedThisSprint)
	assert.EqualValues(t, 2, stats.MissingSubmissions)
	assert.EqualValues(t, 3, stats.TotalSubmissions)
	assert.EqualValues(t, 1, stats.HighFivesGiven)
	assert.EqualValues(t, 1, stats.TasksCompleted)
	require.NotNil(t, stats.AverageMood)
	assert.InDelta(t, 3.0, *stats.AverageMood, 1e-9)
}

func TestComputeStatsAllSprints(t *testing.T) {
	db := setupDB(t)
	teamID, _ := seedScenario(t, db)
	svc := NewService(NewStatsRepository(db), zap.NewNop())

	stats, err := svc.ComputeStats(context.Background(), common.Identity{UserID: uuid.New()}, teamID, nil)
	require.NoError(t, err)

	assert.EqualValues(t, 3, stats.SubmittedThisSprint)
	assert.EqualValues(t, 4, stats.TotalSubmissions)
	assert.EqualValues(t, 2, stats.HighFivesGiven)
	require.NotNil(t, stats.AverageMood)
	assert.InDelta(t, 11.0/3.0, *stats.AverageMood, 1e-9)
}

func TestComputeStatsEmptyTeam(t *testing.T) {
	db := setupDB(t)
	squad := &team.Team{Name: "New"}
	testutil.MustCreate(t, db, squad)

	stats, err := NewService(NewStatsRepository(db), zap.NewNop()).
		ComputeStats(context.Background(), common.Identity{UserID: uuid.New()}, squad.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, DashboardStats{}, stats)
}

func TestComputeStatsUnknownTeam(t *testing.T) {
	db := setupDB(t)

	_, err := NewService(NewStatsRepository(db), zap.NewNop()).
		ComputeStats(context.Background(), common.Identity{UserID: uuid.New()}, uuid.New(), nil)
	require.ErrorIs(t, err, team.ErrTeamNotFound)
}

// driftRepo reports more submitters than members, as happens when a submitter
// later leaves the team.
type driftRepo struct{ StatsRepository }

func (driftRepo) TeamExists(context.Context, uuid.UUID) (bool, error) {
	return true, nil
}
func (driftRepo) CountMembers(context.Context, uuid.UUID) (int64, error) {
	return 2, nil
}
func (driftRepo) CountDistinctSubmitters(context.Context, uuid.UUID, *uuid.UUID) (int64, error) {
	return 3, nil
}
func (driftRepo) CountSubmissions(context.Context, uuid.UUID, *uuid.UUID) (int64, error) {
	return 3, nil
}
func (driftRepo) CountHighFives(context.Context, uuid.UUID, *uuid.UUID) (int64, error) {
	return 0, nil
}
func (driftRepo) CountCompletedTasks(context.Context, uuid.UUID) (int64, error) {
	return 0, nil
}
func (driftRepo) AverageMood(context.Context, uuid.UUID, *uuid.UUID) (*float64, error) {
	return nil, nil
}

func TestMissingSubmissionsNeverNegative(t *testing.T) {
	stats, err := NewService(driftRepo{}, zap.NewNop()).
		ComputeStats(context.Background(), common.Identity{}, uuid.New(), nil)
	require.NoError(t, err)
	assert.Zero(t, stats.MissingSubmissions)
}

type brokenRepo struct{ driftRepo }

func (brokenRepo) CountHighFives(context.Context, uuid.UUID, *uuid.UUID) (int64, error) {
	return 0, errors.New("relation \"high_fives\" does not exist")
}

func statsRouter(repo StatsRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		common.SetIdentity(c, common.Identity{UserID: uuid.New(), Role: common.RoleIntern})
	})
	ctrl := NewDashboardController(NewService(repo, zap.NewNop()), zap.NewNop())
	r.GET("/api/dashboard/stats", ctrl.GetStats)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestGetStatsEndpoint(t *testing.T) {
	db := setupDB(t)
	teamID, sprintID := seedScenario(t, db)
	r := statsRouter(NewStatsRepository(db))

	rec := get(r, "/api/dashboard/stats?teamId="+teamID.String()+"&sprintId="+sprintID.String())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var stats DashboardStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.EqualValues(t, 2, stats.MissingSubmissions)

	tests := []struct {
		name  string
		query string
		code  int
	}{
		{name: "missing teamId", query: "", code: http.StatusBadRequest},
		{name: "malformed teamId", query: "?teamId=abc", code: http.StatusBadRequest},
		{name: "malformed sprintId", query: "?teamId=" + teamID.String() + "&sprintId=abc", code: http.StatusBadRequest},
		{name: "unknown team", query: "?teamId=" + uuid.NewString(), code: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, get(r, "/api/dashboard/stats"+tt.query).Code)
		})
	}
}

func TestGetStatsNullMood(t *testing.T) {
	db := setupDB(t)
	squad := &team.Team{Name: "Quiet"}
	testutil.MustCreate(t, db, squad)

	rec := get(statsRouter(NewStatsRepository(db)), "/api/dashboard/stats?teamId="+squad.ID.String())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"totalInterns": 0,
		"submittedThisSprint": 0,
		"missingSubmissions": 0,
		"totalSubmissions": 0,
		"highFivesGiven": 0,
		"tasksCompleted": 0,
		"averageMood": null
	}`, rec.Body.String())
}

func TestGetStatsStoreFailure(t *testing.T) {
	rec := get(statsRouter(brokenRepo{}), "/api/dashboard/stats?teamId="+uuid.NewString())
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}
