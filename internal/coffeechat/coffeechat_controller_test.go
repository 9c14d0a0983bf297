package coffeechat

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DhavalSuthar-24/internhub/internal/common"
	"github.com/DhavalSuthar-24/internhub/internal/testutil"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newRouter(db *gorm.DB, caller uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		common.SetIdentity(c, common.Identity{UserID: caller, Role: common.RoleIntern})
	})
	RegisterCoffeeChatRoutes(r.Group("/api"), db, zap.NewNop())
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

func TestGenerateEndpoint(t *testing.T) {
	db, teamID, members := seedTeam(t, 5)
	r := newRouter(db, members[0])

	rec := do(r, http.MethodPost, "/api/coffee-chats", map[string]string{"teamId": teamID.String(), "action": ActionGenerate})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var pairings []CoffeeChatPairing
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pairings))
	require.Len(t, pairings, 2)

	inRound := map[uuid.UUID]bool{}
	for _, p := range pairings {
		assert.NotEqual(t, p.MemberAID, p.MemberBID)
		inRound[p.MemberAID] = true
		inRound[p.MemberBID] = true
	}
	sittingOut := 0
	for _, id := range members {
		if !inRound[id] {
			sittingOut++
		}
	}
	assert.Equal(t, 1, sittingOut)
}

func TestGenerateEndpointRejects(t *testing.T) {
	db, teamID, members := seedTeam(t, 2)
	r := newRouter(db, members[0])

	tests := []struct {
		name string
		body map[string]string
		code int
	}{
		{name: "missing teamId", body: map[string]string{"action": ActionGenerate}, code: http.StatusBadRequest},
		{name: "malformed teamId", body: map[string]string{"teamId": "team-1", "action": ActionGenerate}, code: http.StatusBadRequest},
		{name: "unknown action", body: map[string]string{"teamId": teamID.String(), "action": "shuffle"}, code: http.StatusBadRequest},
		{name: "missing action", body: map[string]string{"teamId": teamID.String()}, code: http.StatusBadRequest},
		{name: "unknown team", body: map[string]string{"teamId": uuid.NewString(), "action": ActionGenerate}, code: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(r, http.MethodPost, "/api/coffee-chats", tt.body)
			assert.Equal(t, tt.code, rec.Code, rec.Body.String())
		})
	}

	var count int64
	require.NoError(t, db.Model(&CoffeeChatPairing{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGenerateEndpointSingleMember(t *testing.T) {
	db, teamID, members := seedTeam(t, 1)

	rec := do(newRouter(db, members[0]), http.MethodPost, "/api/coffee-chats", map[string]string{"teamId": teamID.String(), "action": ActionGenerate})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestPatchPairingStatus(t *testing.T) {
	db, teamID, members := seedTeam(t, 2)
	r := newRouter(db, members[1])
	p := &CoffeeChatPairing{TeamID: teamID, MemberAID: members[0], MemberBID: members[1], Status: StatusPending, CreatedBy: members[0]}
	testutil.MustCreate(t, db, p)
	path := "/api/coffee-chats/" + p.ID.String()

	rec := do(r, http.MethodPatch, path, map[string]string{"status": "archived"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var stored CoffeeChatPairing
	require.NoError(t, db.First(&stored, "id = ?", p.ID).Error)
	assert.Equal(t, StatusPending, stored.Status)

	rec = do(r, http.MethodPatch, path, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(r, http.MethodPatch, path, map[string]string{"status": StatusScheduled, "notes": "Thursday 3pm"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated CoffeeChatPairing
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, StatusScheduled, updated.Status)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "Thursday 3pm", *updated.Notes)

	rec = do(r, http.MethodPatch, "/api/coffee-chats/"+uuid.NewString(), map[string]string{"status": StatusSkipped})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(r, http.MethodPatch, "/api/coffee-chats/not-a-uuid", map[string]string{"status": StatusSkipped})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListPairingsEndpoint(t *testing.T) {
	db, teamID, members := seedTeam(t, 2)
	r := newRouter(db, uuid.New())
	testutil.MustCreate(t, db, &CoffeeChatPairing{TeamID: teamID, MemberAID: members[0], MemberBID: members[1], Status: StatusCompleted, CreatedBy: members[0]})

	rec := do(r, http.MethodGet, "/api/coffee-chats?teamId="+teamID.String()+"&status=completed", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []CoffeeChatPairing
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	rec = do(r, http.MethodGet, "/api/coffee-chats?teamId="+teamID.String()+"&status=archived", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(r, http.MethodGet, "/api/coffee-chats", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCoffeeChatMutationsRequireMembership(t *testing.T) {
	db, teamID, members := seedTeam(t, 2)
	outsider := newRouter(db, uuid.New())
	p := &CoffeeChatPairing{TeamID: teamID, MemberAID: members[0], MemberBID: members[1], Status: StatusPending, CreatedBy: members[0]}
	testutil.MustCreate(t, db, p)

	rec := do(outsider, http.MethodPost, "/api/coffee-chats", map[string]string{"teamId": teamID.String(), "action": ActionGenerate})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(outsider, http.MethodPatch, "/api/coffee-chats/"+p.ID.String(), map[string]string{"status": StatusSkipped})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var stored []CoffeeChatPairing
	require.NoError(t, db.Find(&stored).Error)
	require.Len(t, stored, 1)
	assert.Equal(t, StatusPending, stored[0].Status)
}
