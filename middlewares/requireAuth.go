package middlewares

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload carried by every issued token: the subject's id
// and role, plus the registered expiry.
type Claims struct {
	UserID uint   `json:"id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// RequireAuth verifies the bearer token and stores the decoded claims in
// the gin context under "user". The role claim is trusted as-is here;
// admin routes re-check it against the database in RequireAdmin.
func RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token is missing"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid authorization header format"})
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !token.Valid {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid Token"})
			return
		}

		ctx.Set("user", claims)
		ctx.Next()
	}
}

// GetClaims returns the decoded token claims placed in the context by
// RequireAuth.
func GetClaims(ctx *gin.Context) (*Claims, bool) {
	value, exists := ctx.Get("user")
	if !exists {
		return nil, false
	}
	claims, ok := value.(*Claims)
	return claims, ok
}
