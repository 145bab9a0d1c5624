package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// uploadImage forwards the raw request body to the image hosting API and
// relays its response verbatim, whatever the upstream status. Transport
// failures collapse into a generic 500.
func (s *Server) uploadImage(c *gin.Context) {
	status, body, err := s.uploader.Relay(c.Request.Context(), c.GetHeader("Content-Type"), c.Request.Body)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to relay upload to image host")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error uploading image"})
		return
	}

	c.Data(status, "application/json", body)
}
