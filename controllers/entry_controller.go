// File: /controllers/entry_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"wanderlog-api/models"
	"wanderlog-api/services"
	"wanderlog-api/utils"
)

type EntryController struct {
	db    *gorm.DB
	graph *services.GraphService
}

func NewEntryController(db *gorm.DB, graph *services.GraphService) *EntryController {
	return &EntryController{db: db, graph: graph}
}

type CreateEntryRequest struct {
	TripID              string                 `json:"trip_id" binding:"required"`
	Title               string                 `json:"title" binding:"required"`
	Content             string                 `json:"content" binding:"required"`
	Location            string                 `json:"location"`
	LocationCoordinates *Coordinates           `json:"location_coordinates"`
	Photos              []models.Photo         `json:"photos"`
	Weather             models.WeatherSnapshot `json:"weather"`
	Mood                string                 `json:"mood"`
	PersonalTags        []string               `json:"personal_tags"`
	Date                *time.Time             `json:"date"`
}

type UpdateEntryRequest struct {
	Title               string         `json:"title" binding:"required"`
	Content             string         `json:"content" binding:"required"`
	Location            string         `json:"location"`
	LocationCoordinates *Coordinates   `json:"location_coordinates"`
	Photos              []models.Photo `json:"photos"`
	Mood                string         `json:"mood"`
	PersonalTags        []string       `json:"personal_tags"`
}

// GetEntriesByTrip lists a trip's entries in journal date order
func (ec *EntryController) GetEntriesByTrip(c *gin.Context) {
	userID := c.GetString("user_id")
	tripID := c.Param("tripId")

	var trip models.Trip
	if err := ec.db.First(&trip, "id = ?", tripID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		return
	}

	if !services.CanReadTrip(&trip, userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	var entries []models.JournalEntry
	if err := ec.db.
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Preload("Comments.User").
		Preload("Likes.User").
		Where("trip_id = ?", tripID).
		Order("date ASC").
		Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch entries"})
		return
	}

	scrubEntryUsers(entries)
	c.JSON(http.StatusOK, entries)
}

func (ec *EntryController) CreateEntry(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mood := req.Mood
	if mood == "" {
		mood = "happy"
	}
	if !models.IsValidMood(mood) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid mood"})
		return
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	entry := models.JournalEntry{
		ID:           uuid.New().String(),
		TripID:       req.TripID,
		Title:        req.Title,
		Content:      req.Content,
		Location:     req.Location,
		Photos:       models.PhotoList(req.Photos),
		Weather:      req.Weather,
		Mood:         mood,
		PersonalTags: models.StringSlice(req.PersonalTags),
		Date:         date,
	}
	if req.LocationCoordinates != nil {
		entry.LocationLat = &req.LocationCoordinates.Latitude
		entry.LocationLng = &req.LocationCoordinates.Longitude
	}

	if err := ec.graph.CreateEntry(&entry, userID); err != nil {
		utils.SendServiceError(c, err, "Trip", "Failed to create entry")
		return
	}

	ec.db.Preload("Comments").Preload("Likes.User").First(&entry, "id = ?", entry.ID)

	c.JSON(http.StatusCreated, entry)
}

// GetEntry returns one entry with its comments and likes; access follows
// the parent trip's privacy.
func (ec *EntryController) GetEntry(c *gin.Context) {
	userID := c.GetString("user_id")
	entryID := c.Param("id")

	var entry models.JournalEntry
	err := ec.db.
		Preload("Trip").
		Preload("Trip.User").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Preload("Comments.User").
		Preload("Likes.User").
		First(&entry, "id = ?", entryID).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		return
	}

	if !services.CanReadTrip(&entry.Trip, userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	entry.Trip.User.Email = ""
	for i := range entry.Comments {
		entry.Comments[i].User.Email = ""
	}

	c.JSON(http.StatusOK, entry)
}

func (ec *EntryController) UpdateEntry(c *gin.Context) {
	userID := c.GetString("user_id")
	entryID := c.Param("id")

	var entry models.JournalEntry
	if err := ec.db.Preload("Trip").First(&entry, "id = ?", entryID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		return
	}

	if !services.CanWriteEntry(&entry.Trip, userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	var req UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mood := req.Mood
	if mood == "" {
		mood = entry.Mood
	}
	if !models.IsValidMood(mood) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid mood"})
		return
	}

	updates := map[string]interface{}{
		"title":         req.Title,
		"content":       req.Content,
		"location":      req.Location,
		"photos":        models.PhotoList(req.Photos),
		"mood":          mood,
		"personal_tags": models.StringSlice(req.PersonalTags),
	}
	if req.LocationCoordinates != nil {
		updates["location_lat"] = req.LocationCoordinates.Latitude
		updates["location_lng"] = req.LocationCoordinates.Longitude
	}

	if err := ec.db.Model(&entry).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update entry"})
		return
	}

	ec.db.Preload("Comments.User").Preload("Likes.User").First(&entry, "id = ?", entryID)

	c.JSON(http.StatusOK, entry)
}

func (ec *EntryController) DeleteEntry(c *gin.Context) {
	userID := c.GetString("user_id")
	entryID := c.Param("id")

	if err := ec.graph.DeleteEntry(entryID, userID); err != nil {
		utils.SendServiceError(c, err, "Entry", "Failed to delete entry")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Entry deleted successfully"})
}

// LikeEntry toggles the requester's like on an entry
func (ec *EntryController) LikeEntry(c *gin.Context) {
	userID := c.GetString("user_id")
	entryID := c.Param("id")

	liked, count, err := ec.graph.ToggleEntryLike(entryID, userID)
	if err != nil {
		utils.SendServiceError(c, err, "Entry", "Failed to like/unlike entry")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"liked":       liked,
		"likes_count": count,
	})
}

type AddCommentRequest struct {
	Content string  `json:"content" binding:"required"`
	ReplyTo *string `json:"reply_to"`
}

// AddComment attaches a comment to an entry; any authenticated user may
// comment on entries they can reach.
func (ec *EntryController) AddComment(c *gin.Context) {
	userID := c.GetString("user_id")
	entryID := c.Param("id")

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := ec.graph.AddComment(entryID, userID, req.Content, req.ReplyTo)
	if err != nil {
		if utils.StatusForError(err) == http.StatusBadRequest {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Reply target must be a comment on the same entry"})
			return
		}
		utils.SendServiceError(c, err, "Entry", "Failed to add comment")
		return
	}

	comment.User.Email = ""
	c.JSON(http.StatusCreated, comment)
}

func (ec *EntryController) DeleteComment(c *gin.Context) {
	userID := c.GetString("user_id")
	entryID := c.Param("id")
	commentID := c.Param("commentId")

	if err := ec.graph.DeleteComment(entryID, commentID, userID); err != nil {
		utils.SendServiceError(c, err, "Comment", "Failed to delete comment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

// scrubEntryUsers hides contact details of users embedded in entries
func scrubEntryUsers(entries []models.JournalEntry) {
	for i := range entries {
		for j := range entries[i].Comments {
			entries[i].Comments[j].User.Email = ""
		}
		for j := range entries[i].Likes {
			entries[i].Likes[j].User.Email = ""
		}
	}
}
