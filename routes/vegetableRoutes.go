package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sushmaharika/vegetable-dhukan-api/controllers"
	"github.com/sushmaharika/vegetable-dhukan-api/middlewares"
)

func VegetableRoutes(server *gin.Engine) {
	server.GET("/getVegetables", middlewares.RequireAuth(), controllers.GetVegetables)
}
