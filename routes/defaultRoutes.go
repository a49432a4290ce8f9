package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sushmaharika/vegetable-dhukan-api/controllers"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
}
