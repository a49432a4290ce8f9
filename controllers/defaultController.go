package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Vegetable Dhukan API.

AUTH
- POST "/signupDetails" - Create an account
- POST "/signinDetails" - Sign in and receive a token

STORE (bearer token required)
- GET "/getVegetables" - Browse the catalog
- GET "/getCart" - Fetch your cart
- POST "/saveCart" - Replace your cart
- POST "/saveTransaction" - Check out
- GET "/api/user/orders" - Your order history
- GET "/api/v2/get-user-details" - Your profile
- GET "/api/v2/exchange-rate" - Display currency rate

ADMIN (admin token required)
- CRUD "/api/admin/products"
- GET "/api/admin/orders", PUT "/api/admin/orders/{id}/status"
- GET "/api/admin/customers"
- GET "/api/admin/dashboard/stats"
- GET "/api/admin/analytics"`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
