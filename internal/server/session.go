package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/techzen-dev/techzen/internal/auth"
)

const sessionCookieName = "token"

// setSessionCookie attaches the signed token as the HTTP-only session cookie.
// In production the cookie is Secure with SameSite=None so the cross-site
// storefront can send it; otherwise SameSite=Strict.
func (s *Server) setSessionCookie(c *gin.Context, token string) {
	s.applyCookieAttributes(c)
	c.SetCookie(sessionCookieName, token, int(auth.TokenTTL/time.Second), "/", "", s.config.IsProduction(), true)
}

// clearSessionCookie expires the session cookie. Attributes must match the
// ones used when setting it or some clients ignore the deletion.
func (s *Server) clearSessionCookie(c *gin.Context) {
	s.applyCookieAttributes(c)
	c.SetCookie(sessionCookieName, "", -1, "/", "", s.config.IsProduction(), true)
}

func (s *Server) applyCookieAttributes(c *gin.Context) {
	if s.config.IsProduction() {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteStrictMode)
	}
}
