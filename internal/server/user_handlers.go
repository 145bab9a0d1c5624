package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/techzen-dev/techzen/internal/models"
)

// UpsertUserRequest is the profile posted on first login. Email is the
// document key; the rest is optional profile data.
type UpsertUserRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
	Role  string `json:"role"`
}

// upsertUser saves a user keyed by email. If the user already exists the
// pre-existing document is returned unchanged and no write happens; otherwise
// the upsert outcome is returned.
func (s *Server) upsertUser(c *gin.Context) {
	var req UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	existing, err := s.store.FindUserByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Error().Err(err).Str("email", req.Email).Msg("Failed to look up user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusOK, existing)
		return
	}

	result, err := s.store.UpsertUser(ctx, models.User{
		Email: req.Email,
		Name:  req.Name,
		Photo: req.Photo,
		Role:  req.Role,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("email", req.Email).Msg("Failed to upsert user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	s.logger.Info().Str("email", req.Email).Msg("User created")
	c.JSON(http.StatusOK, result)
}

// getUserByEmail returns the user document, or a null body when absent.
// Absence is not an error; the response is still 200.
func (s *Server) getUserByEmail(c *gin.Context) {
	email := c.Param("email")

	user, err := s.store.FindUserByEmail(c.Request.Context(), email)
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("Failed to look up user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// listUsers returns every user. Gated by verifyToken.
func (s *Server) listUsers(c *gin.Context) {
	if claims, ok := sessionClaims(c); ok {
		if email, _ := claims["email"].(string); email != "" {
			s.logger.Debug().Str("caller", email).Msg("Listing users")
		}
	}

	users, err := s.store.ListUsers(c.Request.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list users")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, users)
}
