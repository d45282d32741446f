package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"library-backend/internal/auth"
	"library-backend/internal/domains/user"
	"library-backend/internal/shared/response"
)

type UserHandler struct {
	service  user.Service
	sessions *auth.Manager
}

func NewUserHandler(service user.Service, sessions *auth.Manager) *UserHandler {
	return &UserHandler{service: service, sessions: sessions}
}

// Login handles PUT /auth/login. On success it returns the token in the body
// and also sets two cookies: "token" (httpOnly, holds the session token) and
// "loggedIn" (readable by frontends that only need to know a session exists).
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	maxAge := 0 // session cookie when no TTL is configured
	if ttl := h.sessions.TTL(); ttl > 0 {
		maxAge = int(ttl.Seconds())
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("token", token, maxAge, "/", "", false, true)
	c.SetCookie("loggedIn", "true", maxAge, "/", "", false, false)

	response.JSON(c, http.StatusOK, gin.H{"token": token})
}

// Logout handles PUT /auth/logout. Revoking an unknown token is not an
// error; the cookies are cleared either way.
func (h *UserHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie("token")

	if err := h.service.Logout(c.Request.Context(), token); err != nil {
		log.Error().Err(err).Msg("session revoke failed")
		response.InternalServerError(c)
		return
	}

	c.SetCookie("token", "", -1, "/", "", false, true)
	c.SetCookie("loggedIn", "", -1, "/", "", false, false)
	c.Status(http.StatusOK)
}

func (h *UserHandler) respondError(c *gin.Context, err error) {
	status := user.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("login failed")
		response.InternalServerError(c)
		return
	}
	response.Error(c, status, err.Error())
}
