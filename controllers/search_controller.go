// File: /controllers/search_controller.go
package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"wanderlog-api/models"
)

const searchResultCap = 50

// SearchController answers the public discovery queries. It only ever
// exposes public trips and their entries, even to their owner; private
// material is reachable through the direct fetch routes only.
type SearchController struct {
	db *gorm.DB
}

func NewSearchController(db *gorm.DB) *SearchController {
	return &SearchController{db: db}
}

// SearchTrips filters public trips by text, tags and start-date range
func (sc *SearchController) SearchTrips(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	tags := parseTags(c.Query("tags"))

	query := sc.db.Preload("User").
		Where("privacy = ?", models.VisibilityPublic).
		Order("created_at DESC")

	if q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(destination) LIKE ?",
			pattern, pattern, pattern)
	}

	if startDate, err := time.Parse(time.RFC3339, c.Query("start_date")); err == nil {
		query = query.Where("start_date >= ?", startDate)
	}
	if endDate, err := time.Parse(time.RFC3339, c.Query("end_date")); err == nil {
		query = query.Where("start_date <= ?", endDate)
	}

	var trips []models.Trip
	if err := query.Find(&trips).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search trips"})
		return
	}

	// Tag membership is matched in memory: tags live in a JSON column
	// and set-intersection over it is not portable SQL.
	results := make([]models.Trip, 0, len(trips))
	for _, trip := range trips {
		if !matchesAnyTag(trip.Tags, tags) {
			continue
		}
		trip.User.Email = ""
		results = append(results, trip)
		if len(results) == searchResultCap {
			break
		}
	}

	c.JSON(http.StatusOK, results)
}

// SearchEntries filters entries of public trips by text, mood and tags
func (sc *SearchController) SearchEntries(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	mood := c.Query("mood")
	tags := parseTags(c.Query("tags"))

	// Resolve the public trip set first; entry visibility is inherited
	// from the parent trip.
	var publicTripIDs []string
	if err := sc.db.Model(&models.Trip{}).
		Where("privacy = ?", models.VisibilityPublic).
		Pluck("id", &publicTripIDs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search entries"})
		return
	}
	if len(publicTripIDs) == 0 {
		c.JSON(http.StatusOK, []models.JournalEntry{})
		return
	}

	query := sc.db.Preload("Trip").Preload("Trip.User").
		Where("trip_id IN ?", publicTripIDs).
		Order("created_at DESC")

	if q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ? OR LOWER(location) LIKE ?",
			pattern, pattern, pattern)
	}

	if mood != "" {
		query = query.Where("mood = ?", mood)
	}

	var entries []models.JournalEntry
	if err := query.Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search entries"})
		return
	}

	results := make([]models.JournalEntry, 0, len(entries))
	for _, entry := range entries {
		if !matchesAnyTag(entry.PersonalTags, tags) {
			continue
		}
		entry.Trip.User.Email = ""
		results = append(results, entry)
		if len(results) == searchResultCap {
			break
		}
	}

	c.JSON(http.StatusOK, results)
}

// parseTags splits a comma separated tag list, dropping empty segments
func parseTags(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// matchesAnyTag reports whether the resource carries at least one of the
// requested tags. An empty request matches everything.
func matchesAnyTag(have models.StringSlice, want []string) bool {
	if len(want) == 0 {
		return true
	}
	for _, tag := range want {
		if have.Contains(tag) {
			return true
		}
	}
	return false
}
