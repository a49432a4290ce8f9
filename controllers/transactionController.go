package controllers

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sushmaharika/vegetable-dhukan-api/initializers"
	"github.com/sushmaharika/vegetable-dhukan-api/middlewares"
	"github.com/sushmaharika/vegetable-dhukan-api/models"
	"github.com/sushmaharika/vegetable-dhukan-api/utils"
	"gorm.io/gorm"
)

// Checkout prices may drift by at most one cent between what the client
// saw and what the catalog holds now.
const priceTolerance = 0.01

type checkoutBody struct {
	TransactionID string            `json:"transactionId"`
	CartItems     []models.CartItem `json:"cartItems" binding:"required,min=1"`
	Address       string            `json:"address"`
}

// pricedLine is a cart line re-read from the catalog at checkout time.
type pricedLine struct {
	item    models.CartItem
	product models.Product
}

// repriceCart validates every line against the live catalog. Client
// prices are never trusted into the ledger: the catalog price wins, and a
// drift beyond the tolerance aborts the checkout.
func repriceCart(db *gorm.DB, items []models.CartItem) ([]pricedLine, float64, int, string) {
	lines := make([]pricedLine, 0, len(items))
	total := 0.0

	for _, item := range items {
		if item.Quantity < 1 {
			return nil, 0, http.StatusBadRequest, "Item quantity must be at least 1"
		}

		var product models.Product
		err := db.First(&product, item.ItemID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, http.StatusNotFound, "Product no longer available: " + item.Name
		}
		if err != nil {
			return nil, 0, http.StatusInternalServerError, msgInternalServerError
		}

		if math.Abs(product.Price-item.Price) > priceTolerance {
			return nil, 0, http.StatusConflict, "Price has changed for " + product.Name + ", please review your cart"
		}
		if product.Stock < item.Quantity {
			return nil, 0, http.StatusConflict, "Insufficient stock for " + product.Name
		}

		snapshot := models.CartItem{
			ItemID:   product.ID,
			Name:     product.Name,
			Price:    product.Price,
			Quantity: item.Quantity,
			ImageURL: product.ImageURL,
		}
		lines = append(lines, pricedLine{item: snapshot, product: product})
		total += product.Price * float64(item.Quantity)
	}

	return lines, total, 0, ""
}

// SaveTransaction serves POST /saveTransaction: it snapshots the cart into
// the ledger, decrements stock and clears the cart in a single database
// transaction, so a failed step leaves no half-recorded checkout.
func SaveTransaction(ctx *gin.Context) {
	claims, ok := middlewares.GetClaims(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var body checkoutBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	lines, total, errStatus, errMsg := repriceCart(initializers.DB, body.CartItems)
	if errMsg != "" {
		sendErrorResponse(ctx, errStatus, errMsg)
		return
	}

	paymentRef := body.TransactionID
	if paymentRef == "" {
		paymentRef = "PAY-" + uuid.NewString()
	}

	address := body.Address
	if address == "" {
		address = "Not provided"
	}

	snapshot := make([]models.CartItem, 0, len(lines))
	for _, line := range lines {
		snapshot = append(snapshot, line.item)
	}
	rawItems, err := json.Marshal(snapshot)
	if err != nil {
		initializers.Log.Error().Err(err).Msg("Failed to encode cart snapshot")
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	transaction := models.Transaction{
		UserID:     claims.UserID,
		PaymentRef: paymentRef,
		CartItems:  rawItems,
		Address:    address,
		Status:     models.StatusCompleted,
		Total:      total,
	}

	tx := initializers.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&transaction).Error; err != nil {
		tx.Rollback()
		initializers.Log.Error().Err(err).Msg("Failed to record transaction")
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to record transaction")
		return
	}

	for _, line := range lines {
		result := tx.Model(&models.Product{}).
			Where("id = ? AND stock >= ?", line.product.ID, line.item.Quantity).
			Update("stock", gorm.Expr("stock - ?", line.item.Quantity))
		if result.Error != nil || result.RowsAffected == 0 {
			tx.Rollback()
			sendErrorResponse(ctx, http.StatusConflict, "Insufficient stock for "+line.product.Name)
			return
		}
	}

	if err := replaceCart(tx, claims.UserID, nil); err != nil {
		tx.Rollback()
		initializers.Log.Error().Err(err).Msg("Failed to clear cart")
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to clear cart")
		return
	}

	if err := tx.Commit().Error; err != nil {
		initializers.Log.Error().Err(err).Msg("Failed to commit checkout")
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to record transaction")
		return
	}

	sendOrderConfirmation(transaction, snapshot)

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Transaction recorded successfully.",
		"id":      transaction.ID,
	})
}

// sendOrderConfirmation emails the customer after a successful checkout.
// Mail failures are logged, never surfaced: the ledger entry already
// exists.
func sendOrderConfirmation(transaction models.Transaction, items []models.CartItem) {
	if os.Getenv("SMTP_ADDRESS") == "" {
		return
	}

	var user models.User
	if err := initializers.DB.First(&user, transaction.UserID).Error; err != nil {
		initializers.Log.Warn().Err(err).Msg("Order confirmation skipped, user lookup failed")
		return
	}

	data := utils.OrderEmailData{
		Name:       user.Name,
		OrderID:    strconv.FormatUint(uint64(transaction.ID), 10),
		PaymentRef: transaction.PaymentRef,
		Address:    transaction.Address,
		Total:      transaction.Total,
		Items:      items,
	}
	if err := utils.SendOrderConfirmation(user.Email, data); err != nil {
		initializers.Log.Warn().Err(err).Msg("Failed to send order confirmation email")
	} else {
		initializers.Log.Info().Str("email", user.Email).Msg("Order confirmation email sent")
	}
}

// transactionView shapes a ledger row the way the dashboard and order
// pages expect it.
func transactionView(transaction models.Transaction) gin.H {
	items := []models.CartItem{}
	if len(transaction.CartItems) > 0 {
		if err := json.Unmarshal(transaction.CartItems, &items); err != nil {
			initializers.Log.Warn().Err(err).Uint("transactionId", transaction.ID).Msg("Corrupt cart snapshot")
		}
	}

	return gin.H{
		"id":        transaction.ID,
		"orderId":   transaction.PaymentRef,
		"cartItems": items,
		"address":   transaction.Address,
		"status":    transaction.Status,
		"total":     transaction.Total,
		"date":      transaction.CreatedAt,
	}
}

// GetMyOrders serves GET /api/user/orders: the caller's own ledger
// entries, newest first.
func GetMyOrders(ctx *gin.Context) {
	claims, ok := middlewares.GetClaims(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var transactions []models.Transaction
	result := initializers.DB.
		Where("user_id = ?", claims.UserID).
		Order("created_at desc").
		Find(&transactions)
	if result.Error != nil {
		initializers.Log.Error().Err(result.Error).Msg("Failed to fetch orders")
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}

	orders := make([]gin.H, 0, len(transactions))
	for _, transaction := range transactions {
		orders = append(orders, transactionView(transaction))
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}
