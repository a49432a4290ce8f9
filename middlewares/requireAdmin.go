package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sushmaharika/vegetable-dhukan-api/initializers"
	"github.com/sushmaharika/vegetable-dhukan-api/models"
)

// RequireAdmin must run after RequireAuth. The role claim alone is not
// enough for admin routes: the subject must still exist as an admin in the
// users table, so a forged or stale claim gets a 403.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, ok := GetClaims(ctx)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User not found in context"})
			return
		}

		if claims.Role != models.RoleAdmin {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
			return
		}

		var admin models.User
		err := initializers.DB.
			Where("id = ? AND role = ?", claims.UserID, models.RoleAdmin).
			First(&admin).Error
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
			return
		}

		ctx.Next()
	}
}
