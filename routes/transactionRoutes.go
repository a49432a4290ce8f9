package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sushmaharika/vegetable-dhukan-api/controllers"
	"github.com/sushmaharika/vegetable-dhukan-api/middlewares"
)

func TransactionRoutes(server *gin.Engine) {
	server.POST("/saveTransaction", middlewares.RequireAuth(), controllers.SaveTransaction)
}
