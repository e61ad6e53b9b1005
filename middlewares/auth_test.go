package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/utils"
)

const testSecret = "test-secret"

func newRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(testSecret, roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": utils.CurrentUserID(c), "role": utils.CurrentRole(c)})
	})
	return r
}

func request(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_NoToken(t *testing.T) {
	w := request(newRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	w := request(newRouter(), "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	token, err := utils.GenerateToken(7, "customer", testSecret, time.Hour)
	require.NoError(t, err)

	w := request(newRouter(), token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":7`)
	assert.Contains(t, w.Body.String(), `"role":"customer"`)
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	token, err := utils.GenerateToken(7, "customer", "other-secret", time.Hour)
	require.NoError(t, err)

	w := request(newRouter(), token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_RoleGate(t *testing.T) {
	customer, err := utils.GenerateToken(7, "customer", testSecret, time.Hour)
	require.NoError(t, err)
	admin, err := utils.GenerateToken(1, "admin", testSecret, time.Hour)
	require.NoError(t, err)

	r := newRouter("admin")
	assert.Equal(t, http.StatusForbidden, request(r, customer).Code)
	assert.Equal(t, http.StatusOK, request(r, admin).Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	token, err := utils.GenerateToken(7, "customer", testSecret, -time.Minute)
	require.NoError(t, err)

	w := request(newRouter(), token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
