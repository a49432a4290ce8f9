package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"github.com/sushmaharika/vegetable-dhukan-api/initializers"
)

// GetExchangeRate serves GET /api/v2/exchange-rate. The rate is fetched
// from an external service and returned for display only; nothing about
// it is persisted or used in pricing.
func GetExchangeRate(ctx *gin.Context) {
	currency := ctx.DefaultQuery("currency", "USD")

	baseURL := os.Getenv("EXCHANGE_RATE_API")
	if baseURL == "" {
		baseURL = "https://api.exchangerate-api.com/v4/latest/INR"
	}

	resp, err := resty.New().SetTimeout(10 * time.Second).
		R().
		SetHeader("Accept", "application/json").
		Get(baseURL)
	if err != nil || resp.StatusCode() != http.StatusOK {
		initializers.Log.Warn().Err(err).Msg("Exchange rate lookup failed")
		sendErrorResponse(ctx, http.StatusBadGateway, "Failed to fetch exchange rate")
		return
	}

	var rateResp struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.Unmarshal(resp.Body(), &rateResp); err != nil {
		sendErrorResponse(ctx, http.StatusBadGateway, "Invalid response from rate service")
		return
	}

	rate, ok := rateResp.Rates[currency]
	if !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, fmt.Sprintf("Unknown currency: %s", currency))
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"currency": currency,
		"rate":     rate,
	})
}
