package sprint

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DhavalSuthar-24/internhub/internal/common"
	"github.com/DhavalSuthar-24/internhub/internal/team"
	"github.com/DhavalSuthar-24/internhub/internal/testutil"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newRouter(t *testing.T, role string) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.SetupTestDB(t, &team.Team{}, &Sprint{})

	r := gin.New()
	r.Use(func(c *gin.Context) {
		common.SetIdentity(c, common.Identity{UserID: uuid.New(), Role: role})
	})
	RegisterSprintRoutes(r.Group("/api"), db, zap.NewNop())
	return r, db
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

func TestCreateAndListSprints(t *testing.T) {
	r, db := newRouter(t, common.RoleMentor)
	squad := &team.Team{Name: "Data"}
	testutil.MustCreate(t, db, squad)

	rec := do(r, http.MethodPost, "/api/sprints", map[string]string{
		"teamId":    squad.ID.String(),
		"name":      "Sprint 1",
		"startDate": "2025-06-02T00:00:00Z",
		"endDate":   "2025-06-13T00:00:00Z",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created Sprint
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Equal(t, squad.ID, created.TeamID)

	rec = do(r, http.MethodGet, "/api/sprints?teamId="+squad.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []Sprint
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)

	rec = do(r, http.MethodDelete, "/api/sprints/"+created.ID.String(), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(r, http.MethodGet, "/api/sprints/"+created.ID.String(), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateSprintValidation(t *testing.T) {
	r, db := newRouter(t, common.RoleAdmin)
	squad := &team.Team{Name: "Data"}
	testutil.MustCreate(t, db, squad)

	rec := do(r, http.MethodPost, "/api/sprints", map[string]string{
		"teamId":    squad.ID.String(),
		"name":      "Backwards",
		"startDate": "2025-06-13T00:00:00Z",
		"endDate":   "2025-06-02T00:00:00Z",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(r, http.MethodPost, "/api/sprints", map[string]string{
		"teamId":    uuid.NewString(),
		"name":      "Orphan",
		"startDate": "2025-06-02T00:00:00Z",
		"endDate":   "2025-06-13T00:00:00Z",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateSprintRequiresMentor(t *testing.T) {
	r, _ := newRouter(t, common.RoleIntern)

	rec := do(r, http.MethodPost, "/api/sprints", map[string]string{"name": "x"})
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(r, http.MethodGet, "/api/sprints", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
