package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sushmaharika/vegetable-dhukan-api/initializers"
	"github.com/sushmaharika/vegetable-dhukan-api/models"
	"gorm.io/gorm"
)

func customerOrderTotals(userID uint) (int64, float64, error) {
	var count int64
	if err := initializers.DB.Model(&models.Transaction{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, 0, err
	}

	var spent float64
	row := initializers.DB.Model(&models.Transaction{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(total), 0)").
		Row()
	if err := row.Scan(&spent); err != nil {
		return 0, 0, err
	}

	return count, spent, nil
}

// GetCustomers serves GET /api/admin/customers: every customer with their
// order count and lifetime spend.
func GetCustomers(ctx *gin.Context) {
	var users []models.User
	result := initializers.DB.
		Where("role = ?", models.RoleUser).
		Order("name").
		Find(&users)
	if result.Error != nil {
		initializers.Log.Error().Err(result.Error).Msg("Unable to fetch customers")
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch customers")
		return
	}

	customers := make([]gin.H, 0, len(users))
	for _, user := range users {
		totalOrders, totalSpent, err := customerOrderTotals(user.ID)
		if err != nil {
			initializers.Log.Error().Err(err).Uint("userId", user.ID).Msg("Failed to aggregate customer orders")
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}

		customers = append(customers, gin.H{
			"id":          user.ID,
			"name":        user.Name,
			"email":       user.Email,
			"phoneNumber": user.PhoneNumber,
			"totalOrders": totalOrders,
			"totalSpent":  totalSpent,
		})
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"customers": customers})
}

// GetCustomer serves GET /api/admin/customers/:id with the customer's full
// order history.
func GetCustomer(ctx *gin.Context) {
	customerId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse customer id")
		return
	}

	var user models.User
	result := initializers.DB.
		Where("id = ? AND role = ?", customerId, models.RoleUser).
		First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Customer not found")
		} else {
			initializers.Log.Error().Err(result.Error).Msg("Failed to fetch customer")
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch customer")
		}
		return
	}

	var transactions []models.Transaction
	if err := initializers.DB.
		Where("user_id = ?", user.ID).
		Order("created_at desc").
		Find(&transactions).Error; err != nil {
		initializers.Log.Error().Err(err).Msg("Failed to fetch customer orders")
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch customer orders")
		return
	}

	orderHistory := make([]gin.H, 0, len(transactions))
	for _, transaction := range transactions {
		orderHistory = append(orderHistory, transactionView(transaction))
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"id":           user.ID,
		"name":         user.Name,
		"email":        user.Email,
		"phoneNumber":  user.PhoneNumber,
		"totalOrders":  len(orderHistory),
		"orderHistory": orderHistory,
	})
}
