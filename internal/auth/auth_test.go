package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerify_RoundTrip(t *testing.T) {
	tokens := NewTokenService("test-secret")

	signed, err := tokens.Issue("user1", RoleAdmin, time.Hour)
	require.NoError(t, err)

	p, err := tokens.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "user1", p.UserID)
	assert.True(t, p.IsAdmin())
}

func TestVerify_Failures(t *testing.T) {
	tokens := NewTokenService("test-secret")

	_, err := tokens.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// firmado con otro secreto
	other := NewTokenService("other-secret")
	signed, err := other.Issue("user1", "", time.Hour)
	require.NoError(t, err)
	_, err = tokens.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// expirado
	expired, err := tokens.Issue("user1", "", -time.Minute)
	require.NoError(t, err)
	_, err = tokens.Verify(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func setupRouter(tokens *TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	authed := router.Group("", Middleware(tokens))
	authed.GET("/me", func(c *gin.Context) {
		p, _ := FromContext(c)
		c.JSON(http.StatusOK, gin.H{"user_id": p.UserID})
	})
	admin := authed.Group("", RequireAdmin())
	admin.GET("/admin", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestMiddleware_RejectsMissingOrBadToken(t *testing.T) {
	tokens := NewTokenService("test-secret")
	router := setupRouter(tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddleware_SetsPrincipal(t *testing.T) {
	tokens := NewTokenService("test-secret")
	router := setupRouter(tokens)

	signed, err := tokens.Issue("user1", "", time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":"user1"}`, w.Body.String())
}

func TestRequireAdmin(t *testing.T) {
	tokens := NewTokenService("test-secret")
	router := setupRouter(tokens)

	userToken, err := tokens.Issue("user1", "", time.Hour)
	require.NoError(t, err)
	adminToken, err := tokens.Issue("boss", RoleAdmin, time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
