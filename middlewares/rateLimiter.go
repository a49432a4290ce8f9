package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit applies a shared token bucket to the routes it is mounted on.
func RateLimit(r rate.Limit, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(r, burst)
	return func(ctx *gin.Context) {
		if !limiter.Allow() {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "Too many requests. Please try again later."})
			return
		}
		ctx.Next()
	}
}
