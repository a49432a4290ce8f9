package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sushmaharika/vegetable-dhukan-api/models"
)

func TestExpiredTokenRejected(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter()

	user := createUser(t, db, "Asha", "asha@example.com", "user")
	expired := signToken(t, user.ID, user.Role, time.Now().Add(-time.Hour))

	w := performRequest(router, http.MethodGet, "/getCart", nil, expired)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMalformedTokenRejected(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()

	req := performRequest(router, http.MethodGet, "/getCart", nil, "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, req.Code)
}

func TestAdminRouteRejectsUserToken(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter()

	user := createUser(t, db, "Asha", "asha@example.com", "user")

	w := performRequest(router, http.MethodGet, "/api/admin/orders", nil, tokenFor(t, user))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminRouteRejectsForgedRoleClaim(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter()

	// Token claims admin, but no admin record backs it. The role claim
	// alone must not open admin routes.
	user := createUser(t, db, "Asha", "asha@example.com", "user")
	forged := signToken(t, user.ID, models.RoleAdmin, time.Now().Add(time.Hour))

	w := performRequest(router, http.MethodGet, "/api/admin/orders", nil, forged)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminRouteAcceptsRealAdmin(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter()

	admin := createUser(t, db, "Store Admin", "admin@example.com", "admin")

	w := performRequest(router, http.MethodGet, "/api/admin/orders", nil, tokenFor(t, admin))
	require.Equal(t, http.StatusOK, w.Code)
}

func TestUserRoleTrustedForNonAdminRoutes(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter()

	// Non-admin routes trust the token as-is: a token for a since-deleted
	// user still reads an (empty) cart.
	user := createUser(t, db, "Asha", "asha@example.com", "user")
	token := tokenFor(t, user)
	require.NoError(t, db.Unscoped().Delete(&models.User{}, user.ID).Error)

	w := performRequest(router, http.MethodGet, "/getCart", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
}
