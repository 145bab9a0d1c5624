package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/techzen-dev/techzen/internal/catalog"
)

// listProducts returns every product in the store's natural order.
func (s *Server) listProducts(c *gin.Context) {
	products, err := s.store.ListProducts(c.Request.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list products")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, products)
}

// filterProducts runs the catalog filter form: build a store query from the
// optional fields, fetch matches, then sort in memory.
func (s *Server) filterProducts(c *gin.Context) {
	var form catalog.FormQuery
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	products, err := s.store.FilterProducts(c.Request.Context(), catalog.BuildFilter(form))
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to filter products")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to filter products"})
		return
	}

	catalog.SortProducts(products, form.SortBy)

	c.JSON(http.StatusOK, products)
}

// searchProducts filters products by case-insensitive substring match on the
// name field only.
func (s *Server) searchProducts(c *gin.Context) {
	query := c.Query("query")

	products, err := s.store.SearchProducts(c.Request.Context(), query)
	if err != nil {
		s.logger.Error().Err(err).Str("query", query).Msg("Failed to search products")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search products"})
		return
	}

	c.JSON(http.StatusOK, products)
}
