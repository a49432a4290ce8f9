package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sushmaharika/vegetable-dhukan-api/initializers"
	"github.com/sushmaharika/vegetable-dhukan-api/models"
)

// GetVegetables serves GET /getVegetables: the full catalog. Carts live in
// their own table, so a cart can never leak into this listing.
func GetVegetables(ctx *gin.Context) {
	var products []models.Product

	query := initializers.DB.Order("id")
	if category := ctx.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if search := ctx.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	if result := query.Find(&products); result.Error != nil {
		initializers.Log.Error().Err(result.Error).Msg("Unable to fetch vegetables")
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch vegetables")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"vegetables": products})
}
