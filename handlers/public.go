package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports liveness
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "Car Marketplace API",
		"version": "1.0.0",
	})
}

// Welcome
func Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the Car Marketplace API",
		"health":  "/health",
		"metrics": "/metrics",
		"roles":   []string{"REGULAR", "ADMIN"},
	})
}
