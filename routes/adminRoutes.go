package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sushmaharika/vegetable-dhukan-api/controllers"
	"github.com/sushmaharika/vegetable-dhukan-api/middlewares"
)

func AdminRoutes(server *gin.Engine) {
	admin := server.Group("/api/admin", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.GET("/products", controllers.GetAdminProducts)
		admin.POST("/products", controllers.CreateProduct)
		admin.PUT("/products/:id", controllers.UpdateProduct)
		admin.DELETE("/products/:id", controllers.DeleteProduct)
		admin.POST("/products/:id/images", controllers.UploadProductImage)

		admin.GET("/orders", controllers.GetAdminOrders)
		admin.GET("/orders/:id", controllers.GetAdminOrder)
		admin.PUT("/orders/:id/status", controllers.UpdateOrderStatus)

		admin.GET("/customers", controllers.GetCustomers)
		admin.GET("/customers/:id", controllers.GetCustomer)

		admin.GET("/dashboard/stats", controllers.GetDashboardStats)
		admin.GET("/analytics", controllers.GetAnalytics)
	}
}
