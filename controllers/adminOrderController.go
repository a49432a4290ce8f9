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

// adminOrderView joins a ledger row with the owning customer's identity.
// One lookup per row; fine at this store's volume.
func adminOrderView(transaction models.Transaction) gin.H {
	view := transactionView(transaction)

	var customer models.User
	if err := initializers.DB.First(&customer, transaction.UserID).Error; err == nil {
		view["customerName"] = customer.Name
		view["customerEmail"] = customer.Email
	} else {
		// Deleted users orphan historical transactions; the ledger keeps them.
		view["customerName"] = "Unknown"
		view["customerEmail"] = ""
	}
	return view
}

// GetAdminOrders serves GET /api/admin/orders: every ledger entry, newest
// first.
func GetAdminOrders(ctx *gin.Context) {
	var transactions []models.Transaction
	result := initializers.DB.Order("created_at desc").Find(&transactions)
	if result.Error != nil {
		initializers.Log.Error().Err(result.Error).Msg("Unable to fetch orders")
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch orders")
		return
	}

	orders := make([]gin.H, 0, len(transactions))
	for _, transaction := range transactions {
		orders = append(orders, adminOrderView(transaction))
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}

// GetAdminOrder serves GET /api/admin/orders/:id.
func GetAdminOrder(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	var transaction models.Transaction
	result := initializers.DB.First(&transaction, orderId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			initializers.Log.Error().Err(result.Error).Msg("Failed to fetch order")
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch order")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"order": adminOrderView(transaction)})
}

// UpdateOrderStatus serves PUT /api/admin/orders/:id/status. A value
// outside the allowed set is coerced to "processing" rather than
// rejected; longstanding API behavior that clients rely on.
func UpdateOrderStatus(ctx *gin.Context) {
	var orderStatusData struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&orderStatusData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	orderId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	status := orderStatusData.Status
	if !models.OrderStatuses[status] {
		status = models.StatusProcessing
	}

	result := initializers.DB.Model(&models.Transaction{}).
		Where("id = ?", orderId).
		Update("status", status)
	if result.Error != nil {
		initializers.Log.Error().Err(result.Error).Msg("Failed to update order status")
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update order status")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Order status updated successfully.",
		"status":  status,
	})
}
