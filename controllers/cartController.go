package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sushmaharika/vegetable-dhukan-api/initializers"
	"github.com/sushmaharika/vegetable-dhukan-api/middlewares"
	"github.com/sushmaharika/vegetable-dhukan-api/models"
	"gorm.io/gorm"
)

// replaceCart upserts the user's single cart row, overwriting the whole
// item sequence. No merge with prior contents, last writer wins.
func replaceCart(db *gorm.DB, userID uint, items []models.CartItem) error {
	if items == nil {
		items = []models.CartItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}

	var cart models.Cart
	err = db.Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{UserID: userID, Items: raw}
		return db.Create(&cart).Error
	}
	if err != nil {
		return err
	}
	return db.Model(&cart).Update("items", raw).Error
}

func loadCartItems(db *gorm.DB, userID uint) ([]models.CartItem, error) {
	var cart models.Cart
	err := db.Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []models.CartItem{}, nil
	}
	if err != nil {
		return nil, err
	}

	items := []models.CartItem{}
	if len(cart.Items) > 0 {
		if err := json.Unmarshal(cart.Items, &items); err != nil {
			return nil, err
		}
	}
	return items, nil
}

// GetCart serves GET /getCart. A user without a cart row gets an empty
// sequence, not a 404.
func GetCart(ctx *gin.Context) {
	claims, ok := middlewares.GetClaims(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	items, err := loadCartItems(initializers.DB, claims.UserID)
	if err != nil {
		initializers.Log.Error().Err(err).Uint("userId", claims.UserID).Msg("Failed to fetch cart")
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"cartItems": items})
}

// SaveCart serves POST /saveCart.
func SaveCart(ctx *gin.Context) {
	claims, ok := middlewares.GetClaims(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var body struct {
		CartItems []models.CartItem `json:"cartItems"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if err := replaceCart(initializers.DB, claims.UserID, body.CartItems); err != nil {
		initializers.Log.Error().Err(err).Uint("userId", claims.UserID).Msg("Failed to save cart")
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to save cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Cart saved successfully"})
}
