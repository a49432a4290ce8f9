package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sushmaharika/vegetable-dhukan-api/initializers"
	"github.com/sushmaharika/vegetable-dhukan-api/middlewares"
	"github.com/sushmaharika/vegetable-dhukan-api/models"
)

// GetUserDetails serves GET /api/v2/get-user-details for the token's
// subject.
func GetUserDetails(ctx *gin.Context) {
	claims, ok := middlewares.GetClaims(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var user models.User
	if err := initializers.DB.First(&user, claims.UserID).Error; err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"data": gin.H{
			"username":    user.Name,
			"email":       user.Email,
			"phoneNumber": user.PhoneNumber,
			"role":        user.Role,
		},
	})
}
