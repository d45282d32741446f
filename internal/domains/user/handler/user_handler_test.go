package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/auth"
	"library-backend/internal/domains/user"
)

type stubUserService struct {
	token    string
	loginErr error
}

func (s *stubUserService) Login(_ context.Context, _ user.LoginRequest) (string, error) {
	return s.token, s.loginErr
}

func (s *stubUserService) Logout(_ context.Context, _ string) error {
	return nil
}

func setupRouter(svc user.Service, sessions *auth.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewUserHandler(svc, sessions)
	r := gin.New()
	r.PUT("/auth/login", h.Login)
	r.PUT("/auth/logout", h.Logout)
	return r
}

func TestUserHandler_Login(t *testing.T) {
	r := setupRouter(&stubUserService{token: "abc123"}, auth.NewManager(nil, 0))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/auth/login",
		strings.NewReader(`{"username":"alice","password":"hunter2"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"token":"abc123"}`, w.Body.String())

	cookies := w.Result().Cookies()
	var tokenCookie, loggedInCookie *http.Cookie
	for _, c := range cookies {
		switch c.Name {
		case "token":
			tokenCookie = c
		case "loggedIn":
			loggedInCookie = c
		}
	}

	require.NotNil(t, tokenCookie)
	assert.Equal(t, "abc123", tokenCookie.Value)
	assert.True(t, tokenCookie.HttpOnly)

	require.NotNil(t, loggedInCookie)
	assert.Equal(t, "true", loggedInCookie.Value)
	assert.False(t, loggedInCookie.HttpOnly)
}

func TestUserHandler_Login_UnknownUser(t *testing.T) {
	r := setupRouter(&stubUserService{loginErr: user.ErrUserNotFound}, auth.NewManager(nil, 0))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/auth/login",
		strings.NewReader(`{"username":"bob","password":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"no user exists with that username"}`, w.Body.String())
}

func TestUserHandler_Login_WrongPassword(t *testing.T) {
	r := setupRouter(&stubUserService{loginErr: user.ErrPasswordIncorrect}, auth.NewManager(nil, 0))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/auth/login",
		strings.NewReader(`{"username":"alice","password":"nope"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"password is incorrect"}`, w.Body.String())
}

func TestUserHandler_Logout_ClearsCookies(t *testing.T) {
	r := setupRouter(&stubUserService{}, auth.NewManager(nil, 0))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "abc123"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	for _, c := range w.Result().Cookies() {
		assert.Less(t, c.MaxAge, 0, "cookie %s should be expired", c.Name)
	}
}
