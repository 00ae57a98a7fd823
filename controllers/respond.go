package controllers

import (
	"errors"
	"log"
	"net/http"

	"nutritrack/services"
	"nutritrack/store"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors to status codes. Anything unexpected is
// logged and hidden behind a generic 500.
func respondError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidDate),
		errors.Is(err, services.ErrMissingUser),
		errors.Is(err, services.ErrMissingFoodItems),
		errors.Is(err, services.ErrInvalidGoals):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	default:
		log.Printf("%s: %v", op, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
