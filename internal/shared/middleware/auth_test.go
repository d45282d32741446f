package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/auth"
)

func setupAuthRouter(sessions *auth.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", SessionAuth(sessions), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetInt64(UserIDKey)})
	})
	return r
}

func TestSessionAuth_MissingToken(t *testing.T) {
	r := setupAuthRouter(auth.NewManager(nil, 0))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"invalid or missing token"}`, w.Body.String())
}

func TestSessionAuth_InvalidToken(t *testing.T) {
	r := setupAuthRouter(auth.NewManager(nil, 0))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer deadbeef")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSessionAuth_BearerToken(t *testing.T) {
	sessions := auth.NewManager(nil, 0)
	token, err := sessions.Create(context.Background(), 7)
	require.NoError(t, err)

	r := setupAuthRouter(sessions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":7}`, w.Body.String())
}

func TestSessionAuth_CookieToken(t *testing.T) {
	sessions := auth.NewManager(nil, time.Hour)
	token, err := sessions.Create(context.Background(), 3)
	require.NoError(t, err)

	r := setupAuthRouter(sessions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSessionAuth_ExpiredToken(t *testing.T) {
	sessions := auth.NewManager(nil, time.Nanosecond)
	token, err := sessions.Create(context.Background(), 3)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	r := setupAuthRouter(sessions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
