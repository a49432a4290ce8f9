package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sushmaharika/vegetable-dhukan-api/models"
)

func TestCustomersListWithTotals(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter()

	admin := createUser(t, db, "Store Admin", "admin@example.com", "admin")
	asha := createUser(t, db, "Asha", "asha@example.com", "user")
	createUser(t, db, "Ravi", "ravi@example.com", "user")

	seedTransaction(t, db, asha.ID, models.StatusCompleted, []models.CartItem{
		{ItemID: 1, Name: "Spinach", Price: 10, Quantity: 2},
	})
	seedTransaction(t, db, asha.ID, models.StatusPending, []models.CartItem{
		{ItemID: 2, Name: "Tomato", Price: 5, Quantity: 1},
	})

	status, body := getJSON(t, router, "/api/admin/customers", tokenFor(t, admin))
	require.Equal(t, http.StatusOK, status)

	customers := body["customers"].([]any)
	// Admins are not customers.
	require.Len(t, customers, 2)

	byName := map[string]map[string]any{}
	for _, c := range customers {
		customer := c.(map[string]any)
		byName[customer["name"].(string)] = customer
	}

	require.Contains(t, byName, "Asha")
	assert.Equal(t, float64(2), byName["Asha"]["totalOrders"])
	assert.InDelta(t, 25.0, byName["Asha"]["totalSpent"].(float64), 0.001)

	require.Contains(t, byName, "Ravi")
	assert.Equal(t, float64(0), byName["Ravi"]["totalOrders"])
	assert.Equal(t, float64(0), byName["Ravi"]["totalSpent"])
}

func TestCustomerDetailWithOrderHistory(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter()

	admin := createUser(t, db, "Store Admin", "admin@example.com", "admin")
	asha := createUser(t, db, "Asha", "asha@example.com", "user")

	seedTransaction(t, db, asha.ID, models.StatusCompleted, []models.CartItem{
		{ItemID: 1, Name: "Spinach", Price: 10, Quantity: 2},
	})

	status, body := getJSON(t, router, fmt.Sprintf("/api/admin/customers/%d", asha.ID), tokenFor(t, admin))
	require.Equal(t, http.StatusOK, status)

	assert.Equal(t, "Asha", body["name"])
	assert.Equal(t, "asha@example.com", body["email"])
	assert.Equal(t, float64(1), body["totalOrders"])

	history := body["orderHistory"].([]any)
	require.Len(t, history, 1)
	order := history[0].(map[string]any)
	assert.Equal(t, "completed", order["status"])
	assert.InDelta(t, 20.0, order["total"].(float64), 0.001)
}

func TestCustomerDetailNotFound(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter()

	admin := createUser(t, db, "Store Admin", "admin@example.com", "admin")

	w := performRequest(router, http.MethodGet, "/api/admin/customers/999", nil, tokenFor(t, admin))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCustomerDetailExcludesAdmins(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter()

	admin := createUser(t, db, "Store Admin", "admin@example.com", "admin")

	w := performRequest(router, http.MethodGet,
		fmt.Sprintf("/api/admin/customers/%d", admin.ID), nil, tokenFor(t, admin))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
