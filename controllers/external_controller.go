// File: /controllers/external_controller.go
package controllers

import (
	"fmt"
	"hash/fnv"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ExternalController serves in-source stand-ins for the third-party
// weather, currency and photo-storage providers. Responses are derived
// from the request so repeated calls stay stable; no network calls are
// ever made.
type ExternalController struct{}

func NewExternalController() *ExternalController {
	return &ExternalController{}
}

var weatherDescriptions = []string{"sunny", "cloudy", "rainy", "partly cloudy"}

// mockExchangeRates mirrors a handful of common currency pairs
var mockExchangeRates = map[string]map[string]float64{
	"USD": {"EUR": 0.85, "GBP": 0.73, "JPY": 110, "CAD": 1.25},
	"EUR": {"USD": 1.18, "GBP": 0.86, "JPY": 130, "CAD": 1.47},
	"GBP": {"USD": 1.37, "EUR": 1.16, "JPY": 151, "CAD": 1.71},
}

func seedFor(parts ...string) uint32 {
	h := fnv.New32a()
	for _, p := range parts {
		h.Write([]byte(p))
	}
	return h.Sum32()
}

// GetWeather returns a weather snapshot for a location and date
func (ec *ExternalController) GetWeather(c *gin.Context) {
	location := c.Param("location")
	date := c.Param("date")

	seed := seedFor(location, date)

	c.JSON(http.StatusOK, gin.H{
		"location":    location,
		"date":        date,
		"temperature": int(seed%30) + 10,   // 10-40 C
		"description": weatherDescriptions[seed%4],
		"humidity":    int(seed/7%50) + 30, // 30-80 %
		"wind_speed":  int(seed/11%20) + 5, // 5-25 km/h
	})
}

// GetCurrency returns a conversion rate between two currencies
func (ec *ExternalController) GetCurrency(c *gin.Context) {
	from := c.Param("from")
	to := c.Param("to")

	rate := 1.0
	if rates, ok := mockExchangeRates[from]; ok {
		if r, ok := rates[to]; ok {
			rate = r
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"from":      from,
		"to":        to,
		"rate":      rate,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// UploadPhotos pretends to store photos and hands back hosted URLs
func (ec *ExternalController) UploadPhotos(c *gin.Context) {
	now := time.Now().UnixMilli()

	photos := []gin.H{
		{
			"url":       "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800",
			"public_id": fmt.Sprintf("travel_journal_%d_1", now),
			"caption":   "Sample travel photo",
		},
		{
			"url":       "https://images.unsplash.com/photo-1488646953014-85cb44e25828?w=800",
			"public_id": fmt.Sprintf("travel_journal_%d_2", now),
			"caption":   "Another sample photo",
		},
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"photos":  photos,
	})
}
