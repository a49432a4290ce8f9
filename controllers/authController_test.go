package controllers_test

import (
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sushmaharika/vegetable-dhukan-api/middlewares"
)

func TestSignupThenSigninRoundTrip(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()

	w := performRequest(router, http.MethodPost, "/signupDetails", map[string]any{
		"name":        "Asha",
		"phoneNumber": "9876543210",
		"email":       "asha@example.com",
		"password":    "secret123",
		"role":        "user",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user", decodeBody(t, w)["role"])

	w = performRequest(router, http.MethodPost, "/signinDetails", map[string]any{
		"email":    "asha@example.com",
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "user", body["role"])
	assert.NotEmpty(t, body["userId"])

	tokenString, ok := body["token"].(string)
	require.True(t, ok)

	claims := &middlewares.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)
	assert.Equal(t, "user", claims.Role)
}

func TestSignupAdminRole(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()

	w := performRequest(router, http.MethodPost, "/signupDetails", map[string]any{
		"name":        "Store Admin",
		"phoneNumber": "9876500000",
		"email":       "admin@example.com",
		"password":    "secret123",
		"role":        "admin",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin", decodeBody(t, w)["role"])
}

func TestSignupUnknownRoleDefaultsToUser(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()

	w := performRequest(router, http.MethodPost, "/signupDetails", map[string]any{
		"name":        "Odd Role",
		"phoneNumber": "9876500001",
		"email":       "odd@example.com",
		"password":    "secret123",
		"role":        "superuser",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user", decodeBody(t, w)["role"])
}

func TestSignupDuplicateEmailAcrossRoles(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter()

	// The original admin record must block a customer signup with the
	// same email, and vice versa.
	createUser(t, db, "Store Admin", "taken@example.com", "admin")

	w := performRequest(router, http.MethodPost, "/signupDetails", map[string]any{
		"name":        "Impostor",
		"phoneNumber": "9876500002",
		"email":       "taken@example.com",
		"password":    "secret123",
		"role":        "user",
	}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User Already Exists!", decodeBody(t, w)["message"])
}

func TestSigninWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter()

	createUser(t, db, "Asha", "asha@example.com", "user")

	w := performRequest(router, http.MethodPost, "/signinDetails", map[string]any{
		"email":    "asha@example.com",
		"password": "wrong-password",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSigninUnknownEmail(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()

	w := performRequest(router, http.MethodPost, "/signinDetails", map[string]any{
		"email":    "ghost@example.com",
		"password": "secret123",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUserDetails(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter()

	user := createUser(t, db, "Asha", "asha@example.com", "user")

	status, body := getJSON(t, router, "/api/v2/get-user-details", tokenFor(t, user))
	require.Equal(t, http.StatusOK, status)

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Asha", data["username"])
	assert.Equal(t, "asha@example.com", data["email"])
	assert.Equal(t, "9876543210", data["phoneNumber"])
	assert.Equal(t, "user", data["role"])
}
