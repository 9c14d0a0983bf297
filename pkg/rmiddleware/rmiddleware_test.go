package rmiddleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DhavalSuthar-24/internhub/internal/common"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func serve(guard gin.HandlerFunc, identity *common.Identity) int {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if identity != nil {
			common.SetIdentity(c, *identity)
		}
	})
	r.GET("/", guard, func(c *gin.Context) { c.Status(http.StatusNoContent) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	return rec.Code
}

func TestMentorOrAdminMiddleware(t *testing.T) {
	guard := MentorOrAdminMiddleware()
	assert.Equal(t, http.StatusUnauthorized, serve(guard, nil))
	assert.Equal(t, http.StatusForbidden, serve(guard, &common.Identity{UserID: uuid.New(), Role: common.RoleIntern}))
	assert.Equal(t, http.StatusNoContent, serve(guard, &common.Identity{UserID: uuid.New(), Role: common.RoleMentor}))
	assert.Equal(t, http.StatusNoContent, serve(guard, &common.Identity{UserID: uuid.New(), Role: "ADMIN"}))
}

func TestRoleMiddlewareSingleRole(t *testing.T) {
	guard := RoleMiddleware(common.RoleAdmin)
	assert.Equal(t, http.StatusForbidden, serve(guard, &common.Identity{UserID: uuid.New(), Role: common.RoleMentor}))
	assert.Equal(t, http.StatusForbidden, serve(guard, &common.Identity{UserID: uuid.New()}))
	assert.Equal(t, http.StatusNoContent, serve(guard, &common.Identity{UserID: uuid.New(), Role: common.RoleAdmin}))
}
