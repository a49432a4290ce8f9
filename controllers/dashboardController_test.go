package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sushmaharika/vegetable-dhukan-api/models"
)

func TestDashboardStatsRevenueOnlyFromCompleted(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter()

	admin := createUser(t, db, "Store Admin", "admin@example.com", "admin")
	asha := createUser(t, db, "Asha", "asha@example.com", "user")

	// completed: 10*2 = 20
	seedTransaction(t, db, asha.ID, models.StatusCompleted, []models.CartItem{
		{ItemID: 1, Name: "Spinach", Price: 10, Quantity: 2},
	})
	// legacy record with no status counts as completed: 5*1 = 5
	seedTransaction(t, db, asha.ID, "", []models.CartItem{
		{ItemID: 2, Name: "Tomato", Price: 5, Quantity: 1},
	})
	// pending and cancelled are excluded from revenue
	seedTransaction(t, db, asha.ID, models.StatusPending, []models.CartItem{
		{ItemID: 3, Name: "Carrot", Price: 100, Quantity: 1},
	})
	seedTransaction(t, db, asha.ID, models.StatusCancelled, []models.CartItem{
		{ItemID: 4, Name: "Beet", Price: 50, Quantity: 2},
	})

	status, body := getJSON(t, router, "/api/admin/dashboard/stats", tokenFor(t, admin))
	require.Equal(t, http.StatusOK, status)

	assert.Equal(t, float64(4), body["totalOrders"])
	assert.Equal(t, float64(1), body["pendingOrders"])
	assert.InDelta(t, 25.0, body["totalRevenue"].(float64), 0.001)
	assert.Equal(t, float64(1), body["totalCustomers"])
	assert.Equal(t, float64(1), body["newCustomers"])

	distribution := body["statusDistribution"].(map[string]any)
	assert.Equal(t, float64(2), distribution["completed"])
	assert.Equal(t, float64(1), distribution["pending"])
	assert.Equal(t, float64(1), distribution["cancelled"])
	assert.Equal(t, float64(0), distribution["processing"])
}

func TestDashboardNewCustomersWindow(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter()

	admin := createUser(t, db, "Store Admin", "admin@example.com", "admin")
	recent := createUser(t, db, "Recent", "recent@example.com", "user")
	_ = recent
	old := createUser(t, db, "Old Timer", "old@example.com", "user")
	require.NoError(t, db.Model(&old).Update("created_at", time.Now().AddDate(0, 0, -45)).Error)

	status, body := getJSON(t, router, "/api/admin/dashboard/stats", tokenFor(t, admin))
	require.Equal(t, http.StatusOK, status)

	assert.Equal(t, float64(2), body["totalCustomers"])
	assert.Equal(t, float64(1), body["newCustomers"])
}

func TestAnalyticsTopProductsAndTrend(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter()

	admin := createUser(t, db, "Store Admin", "admin@example.com", "admin")
	asha := createUser(t, db, "Asha", "asha@example.com", "user")

	seedTransaction(t, db, asha.ID, models.StatusCompleted, []models.CartItem{
		{ItemID: 1, Name: "Spinach", Price: 10, Quantity: 5},
		{ItemID: 2, Name: "Tomato", Price: 5, Quantity: 2},
	})
	seedTransaction(t, db, asha.ID, models.StatusCompleted, []models.CartItem{
		{ItemID: 2, Name: "Tomato", Price: 5, Quantity: 9},
	})

	status, body := getJSON(t, router, "/api/admin/analytics", tokenFor(t, admin))
	require.Equal(t, http.StatusOK, status)

	trends := body["salesTrends"].([]any)
	require.Len(t, trends, 7)
	todayBucket := trends[6].(map[string]any)
	assert.Equal(t, time.Now().Format("2006-01-02"), todayBucket["date"])
	assert.Equal(t, float64(2), todayBucket["orders"])
	assert.InDelta(t, 105.0, todayBucket["revenue"].(float64), 0.001)

	top := body["topProducts"].([]any)
	require.Len(t, top, 2)
	first := top[0].(map[string]any)
	assert.Equal(t, "Tomato", first["name"])
	assert.Equal(t, float64(11), first["quantity"])
	assert.Equal(t, "Spinach", top[1].(map[string]any)["name"])
}
