package middleware

import (
	"car-marketplace-api/apperror"
	"car-marketplace-api/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var errAtCapacity = apperror.New(apperror.ErrRateLimited, "The API is at capacity, try again later.")

// RateLimit rejects requests once the shared token bucket is empty
func RateLimit(limiter *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow() {
			response.Error(c, errAtCapacity)
			return
		}
		c.Next()
	}
}
