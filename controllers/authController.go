package controllers

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sushmaharika/vegetable-dhukan-api/initializers"
	"github.com/sushmaharika/vegetable-dhukan-api/middlewares"
	"github.com/sushmaharika/vegetable-dhukan-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	// Default cost for bcrypt password hashing
	bcryptCost = 10

	// Token lifetime; there is no refresh, clients sign in again after
	// expiry.
	tokenLifetime = 2 * time.Hour

	// Standard response messages
	msgInvalidInput          = "invalid input"
	msgUserAlreadyExists     = "User Already Exists!"
	msgFailedToHashPassword  = "failed to hash password"
	msgInvalidCredentials    = "invalid email or password"
	msgFailedToGenerateToken = "failed to generate token"
	msgInternalServerError   = "Internal server error"
	msgUserCreated           = "User Successfully inserted into the db"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func generateJWT(user models.User) (string, error) {
	claims := &middlewares.Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func findUserByEmail(email string) (models.User, error) {
	var user models.User
	result := initializers.DB.Where("email = ?", email).First(&user)
	return user, result.Error
}

// Signup handles user registration on POST /signupDetails.
func Signup(ctx *gin.Context) {
	var signUpData models.SignupData
	if err := ctx.ShouldBindJSON(&signUpData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	// A given email belongs to at most one principal, admin or customer.
	_, err := findUserByEmail(signUpData.Email)
	if err == nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgUserAlreadyExists)
		return
	}
	if err != gorm.ErrRecordNotFound {
		initializers.Log.Error().Err(err).Msg("Database error during user check")
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	hashedPassword, err := hashPassword(signUpData.Password)
	if err != nil {
		initializers.Log.Error().Err(err).Msg("Password hashing error")
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToHashPassword)
		return
	}

	// Role is fixed at creation. Anything that is not explicitly admin
	// becomes a regular user.
	role := signUpData.Role
	if role != models.RoleAdmin {
		role = models.RoleUser
	}

	user := models.User{
		Name:        signUpData.Name,
		PhoneNumber: signUpData.PhoneNumber,
		Email:       signUpData.Email,
		Password:    hashedPassword,
		Role:        role,
	}

	if result := initializers.DB.Create(&user); result.Error != nil {
		initializers.Log.Error().Err(result.Error).Msg("User creation error")
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": msgUserCreated,
		"role":    user.Role,
	})
}

// Signin handles authentication on POST /signinDetails.
func Signin(ctx *gin.Context) {
	var signinData models.SigninData
	if err := ctx.ShouldBindJSON(&signinData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, err := findUserByEmail(signinData.Email)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	if err := comparePasswords(user.Password, signinData.Password); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	tokenString, err := generateJWT(user)
	if err != nil {
		initializers.Log.Error().Err(err).Msg("JWT generation error")
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "User signed in successfully",
		"token":   tokenString,
		"role":    user.Role,
		"userId":  user.ID,
	})
}
