package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const Version = "1.0.0"

// Health reports liveness and whether a database backs the store.
func Health(databaseEnabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":           "healthy",
			"timestamp":        time.Now().UTC().Format(time.RFC3339),
			"version":          Version,
			"database_enabled": databaseEnabled,
		})
	}
}
