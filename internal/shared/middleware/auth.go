package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"library-backend/internal/auth"
	"library-backend/internal/shared/response"
)

const UserIDKey = "userID"

// SessionAuth guards the mutation routes when write protection is enabled.
// The token is accepted either as a Bearer header or as the "token" cookie
// set at login. Anything that does not resolve to a live session gets a 403.
func SessionAuth(sessions *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)

		userID, ok, err := sessions.Validate(c.Request.Context(), token)
		if err != nil {
			log.Error().Err(err).Msg("session lookup failed")
			c.Abort()
			response.Error(c, http.StatusInternalServerError, "internal server error")
			return
		}
		if !ok {
			c.Abort()
			response.Error(c, http.StatusForbidden, "invalid or missing token")
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	if cookie, err := c.Cookie("token"); err == nil {
		return cookie
	}
	return ""
}
