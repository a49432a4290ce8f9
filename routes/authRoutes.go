package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sushmaharika/vegetable-dhukan-api/controllers"
	"github.com/sushmaharika/vegetable-dhukan-api/middlewares"
	"golang.org/x/time/rate"
)

func AuthRoutes(server *gin.Engine) {
	// Shared bucket across both endpoints keeps credential stuffing slow.
	limiter := middlewares.RateLimit(rate.Limit(5), 10)
	server.POST("/signupDetails", limiter, controllers.Signup)
	server.POST("/signinDetails", limiter, controllers.Signin)
}
