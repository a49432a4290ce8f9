package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sushmaharika/vegetable-dhukan-api/controllers"
	"github.com/sushmaharika/vegetable-dhukan-api/middlewares"
)

func CartRoutes(server *gin.Engine) {
	server.GET("/getCart", middlewares.RequireAuth(), controllers.GetCart)
	server.POST("/saveCart", middlewares.RequireAuth(), controllers.SaveCart)
}
