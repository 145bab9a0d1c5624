package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/techzen-dev/techzen/internal/auth"
)

// issueToken signs whatever the client posted into a session token and sets
// it as the session cookie. The claimed identity is not cross-checked against
// the user store; the storefront authenticates against its identity provider
// before calling this route.
func (s *Server) issueToken(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := auth.Issue(payload)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to issue token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	s.setSessionCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// logout clears the session cookie.
func (s *Server) logout(c *gin.Context) {
	s.clearSessionCookie(c)
	s.logger.Info().Msg("Logout successful")
	c.JSON(http.StatusOK, gin.H{"success": true})
}
