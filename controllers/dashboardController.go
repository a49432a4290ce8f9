package controllers

import (
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sushmaharika/vegetable-dhukan-api/initializers"
	"github.com/sushmaharika/vegetable-dhukan-api/models"
)

// countsAsRevenue reports whether a ledger row contributes to revenue.
// Records written before the status column existed carry an empty status
// and are treated as completed.
func countsAsRevenue(status string) bool {
	return status == models.StatusCompleted || status == ""
}

func snapshotItems(transaction models.Transaction) []models.CartItem {
	items := []models.CartItem{}
	if len(transaction.CartItems) > 0 {
		if err := json.Unmarshal(transaction.CartItems, &items); err != nil {
			initializers.Log.Warn().Err(err).Uint("transactionId", transaction.ID).Msg("Corrupt cart snapshot")
		}
	}
	return items
}

// GetDashboardStats serves GET /api/admin/dashboard/stats. Everything is
// derived from full scans of the ledger and the users table; the store is
// small enough that this stays cheap.
func GetDashboardStats(ctx *gin.Context) {
	var transactions []models.Transaction
	if err := initializers.DB.Find(&transactions).Error; err != nil {
		initializers.Log.Error().Err(err).Msg("Failed to scan transactions")
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	totalRevenue := 0.0
	pendingOrders := 0
	statusDistribution := gin.H{
		models.StatusPending:    0,
		models.StatusProcessing: 0,
		models.StatusCompleted:  0,
		models.StatusCancelled:  0,
	}

	for _, transaction := range transactions {
		status := transaction.Status
		if status == "" {
			status = models.StatusCompleted
		}
		if n, ok := statusDistribution[status].(int); ok {
			statusDistribution[status] = n + 1
		}
		if status == models.StatusPending {
			pendingOrders++
		}
		if countsAsRevenue(transaction.Status) {
			for _, item := range snapshotItems(transaction) {
				totalRevenue += item.Price * float64(item.Quantity)
			}
		}
	}

	var totalCustomers int64
	if err := initializers.DB.Model(&models.User{}).
		Where("role = ?", models.RoleUser).
		Count(&totalCustomers).Error; err != nil {
		initializers.Log.Error().Err(err).Msg("Failed to count customers")
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	var newCustomers int64
	monthAgo := time.Now().AddDate(0, 0, -30)
	if err := initializers.DB.Model(&models.User{}).
		Where("role = ? AND created_at >= ?", models.RoleUser, monthAgo).
		Count(&newCustomers).Error; err != nil {
		initializers.Log.Error().Err(err).Msg("Failed to count new customers")
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"totalOrders":        len(transactions),
		"pendingOrders":      pendingOrders,
		"totalRevenue":       totalRevenue,
		"newCustomers":       newCustomers,
		"totalCustomers":     totalCustomers,
		"statusDistribution": statusDistribution,
	})
}

type productSales struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// GetAnalytics serves GET /api/admin/analytics: a 7-day sales trend and
// the top 5 products by quantity sold, both from a full ledger scan.
func GetAnalytics(ctx *gin.Context) {
	var transactions []models.Transaction
	if err := initializers.DB.Find(&transactions).Error; err != nil {
		initializers.Log.Error().Err(err).Msg("Failed to scan transactions")
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	type bucket struct {
		orders  int
		revenue float64
	}
	days := map[string]*bucket{}
	today := time.Now()
	for i := 0; i < 7; i++ {
		day := today.AddDate(0, 0, -i).Format("2006-01-02")
		days[day] = &bucket{}
	}

	sales := map[string]*productSales{}

	for _, transaction := range transactions {
		items := snapshotItems(transaction)

		day := transaction.CreatedAt.Format("2006-01-02")
		if b, ok := days[day]; ok {
			b.orders++
			if countsAsRevenue(transaction.Status) {
				for _, item := range items {
					b.revenue += item.Price * float64(item.Quantity)
				}
			}
		}

		for _, item := range items {
			s, ok := sales[item.Name]
			if !ok {
				s = &productSales{Name: item.Name}
				sales[item.Name] = s
			}
			s.Quantity += item.Quantity
			s.Revenue += item.Price * float64(item.Quantity)
		}
	}

	salesTrends := make([]gin.H, 0, 7)
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i).Format("2006-01-02")
		b := days[day]
		salesTrends = append(salesTrends, gin.H{
			"date":    day,
			"orders":  b.orders,
			"revenue": b.revenue,
		})
	}

	topProducts := make([]productSales, 0, len(sales))
	for _, s := range sales {
		topProducts = append(topProducts, *s)
	}
	sort.Slice(topProducts, func(i, j int) bool {
		if topProducts[i].Quantity != topProducts[j].Quantity {
			return topProducts[i].Quantity > topProducts[j].Quantity
		}
		return topProducts[i].Name < topProducts[j].Name
	})
	if len(topProducts) > 5 {
		topProducts = topProducts[:5]
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"salesTrends": salesTrends,
		"topProducts": topProducts,
	})
}
