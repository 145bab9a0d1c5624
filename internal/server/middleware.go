package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/techzen-dev/techzen/internal/auth"
)

const sessionKey = "session"

// unauthorizedMessage is the fixed body for every auth failure on gated routes.
var unauthorizedMessage = gin.H{"message": "unauthorized access"}

// verifyToken gates a route on a validly-signed, non-expired session cookie.
// The decoded claims are attached to the request context for downstream
// handlers; possession of the token is the sole authorization signal.
func (s *Server) verifyToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessionCookieName)
		if err != nil || token == "" {
			s.logger.Warn().Str("path", c.Request.URL.Path).Msg("Missing session cookie")
			c.AbortWithStatusJSON(http.StatusUnauthorized, unauthorizedMessage)
			return
		}

		claims, err := auth.Verify(token)
		if err != nil {
			s.logger.Warn().Err(err).Str("path", c.Request.URL.Path).Msg("Invalid session token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, unauthorizedMessage)
			return
		}

		c.Set(sessionKey, claims)
		c.Next()
	}
}

// sessionClaims returns the decoded token payload attached by verifyToken.
func sessionClaims(c *gin.Context) (map[string]any, bool) {
	v, exists := c.Get(sessionKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(map[string]any)
	return claims, ok
}
