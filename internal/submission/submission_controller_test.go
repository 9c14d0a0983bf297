package submission

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DhavalSuthar-24/internhub/internal/common"
	"github.com/DhavalSuthar-24/internhub/internal/sprint"
	"github.com/DhavalSuthar-24/internhub/internal/team"
	"github.com/DhavalSuthar-24/internhub/internal/testutil"
	"github.com/DhavalSuthar-24/internhub/internal/user"
	"github.com/DhavalSuthar-24/internhub/pkg/responses"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixture struct {
	db     *gorm.DB
	team   *team.Team
	sprint *sprint.Sprint
	intern uuid.UUID
}

func setup(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.SetupTestDB(t, &user.Profile{}, &team.Team{}, &team.TeamMember{}, &sprint.Sprint{}, &Submission{})

	squad := &team.Team{Name: "Platform"}
	testutil.MustCreate(t, db, squad)
	sp := &sprint.Sprint{
		TeamID:    squad.ID,
		Name:      "Sprint 3",
		StartDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC),
	}
	intern := uuid.New()
	testutil.MustCreate(t, db, sp, &team.TeamMember{TeamID: squad.ID, ProfileID: intern})
	return &fixture{db: db, team: squad, sprint: sp, intern: intern}
}

func (f *fixture) router(caller uuid.UUID) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		common.SetIdentity(c, common.Identity{UserID: caller, Role: common.RoleIntern})
	})
	RegisterSubmissionRoutes(r.Group("/api"), f.db, zap.NewNop())
	return r
}

func do(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) payload(mood interface{}) map[string]interface{} {
	return map[string]interface{}{
		"teamId":          f.team.ID.String(),
		"sprintId":        f.sprint.ID.String(),
		"accomplishments": "Shipped the importer",
		"mood":            mood,
	}
}

func TestCreateSubmissionUsesCaller(t *testing.T) {
	f := setup(t)
	r := f.router(f.intern)

	rec := do(r, http.MethodPost, "/api/submissions", f.payload(4))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var s Submission
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	assert.Equal(t, f.intern, s.ProfileID)
	require.NotNil(t, s.Mood)
	assert.Equal(t, 4, *s.Mood)
}

func TestCreateSubmissionRejects(t *testing.T) {
	f := setup(t)

	rec := do(f.router(f.intern), http.MethodPost, "/api/submissions", f.payload(9))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(f.router(uuid.New()), http.MethodPost, "/api/submissions", f.payload(3))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	other := &sprint.Sprint{TeamID: uuid.New(), Name: "Elsewhere"}
	testutil.MustCreate(t, f.db, other)
	body := f.payload(3)
	body["sprintId"] = other.ID.String()
	rec = do(f.router(f.intern), http.MethodPost, "/api/submissions", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body["sprintId"] = uuid.NewString()
	rec = do(f.router(f.intern), http.MethodPost, "/api/submissions", body)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListSubmissionsPaginates(t *testing.T) {
	f := setup(t)
	for i := 0; i < 3; i++ {
		testutil.MustCreate(t, f.db, &Submission{TeamID: f.team.ID, SprintID: f.sprint.ID, ProfileID: f.intern})
	}
	testutil.MustCreate(t, f.db, &Submission{TeamID: uuid.New(), SprintID: uuid.New(), ProfileID: f.intern})

	rec := do(f.router(f.intern), http.MethodGet, "/api/submissions?teamId="+f.team.ID.String()+"&limit=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data       []Submission         `json:"data"`
		Pagination responses.Pagination `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Data, 2)
	assert.EqualValues(t, 3, body.Pagination.TotalItems)
	assert.Equal(t, 2, body.Pagination.TotalPages)
	assert.True(t, body.Pagination.HasNextPage)

	rec = do(f.router(f.intern), http.MethodGet, "/api/submissions", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOnlyAuthorModifiesSubmission(t *testing.T) {
	f := setup(t)
	s := &Submission{TeamID: f.team.ID, SprintID: f.sprint.ID, ProfileID: f.intern, Accomplishments: "draft"}
	testutil.MustCreate(t, f.db, s)
	path := "/api/submissions/" + s.ID.String()

	rec := do(f.router(uuid.New()), http.MethodPut, path, map[string]string{"blockers": "none"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = do(f.router(uuid.New()), http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(f.router(f.intern), http.MethodPut, path, map[string]string{"blockers": "waiting on review"})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated Submission
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "waiting on review", updated.Blockers)
	assert.Equal(t, "draft", updated.Accomplishments)

	rec = do(f.router(f.intern), http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(f.router(f.intern), http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
