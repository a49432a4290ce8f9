package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sushmaharika/vegetable-dhukan-api/initializers"
	"github.com/sushmaharika/vegetable-dhukan-api/routes"
)

func init() {
	initializers.InitLogger()
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
}

func main() {
	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://vegetable-dhukhan.onrender.com"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server)
	routes.UserRoutes(server)
	routes.VegetableRoutes(server)
	routes.CartRoutes(server)
	routes.TransactionRoutes(server)
	routes.AdminRoutes(server)

	server.Run()
}
