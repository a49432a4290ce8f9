package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sushmaharika/vegetable-dhukan-api/controllers"
	"github.com/sushmaharika/vegetable-dhukan-api/middlewares"
)

func UserRoutes(server *gin.Engine) {
	user := server.Group("/api", middlewares.RequireAuth())
	{
		user.GET("/v2/get-user-details", controllers.GetUserDetails)
		user.GET("/v2/exchange-rate", controllers.GetExchangeRate)
		user.GET("/user/orders", controllers.GetMyOrders)
	}
}
