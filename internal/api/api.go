// Package api contains the HTTP handlers for the recipe and meal planning
// endpoints. Handlers translate service results to status codes: validation
// failures become 400, missing entities 404.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/raju8309/recipe-manager/internal/service"
)

func respondError(c *gin.Context, err error) {
	switch {
	case service.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
