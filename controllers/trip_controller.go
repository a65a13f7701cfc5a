// File: /controllers/trip_controller.go
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

type TripController struct {
	db    *gorm.DB
	graph *services.GraphService
}

func NewTripController(db *gorm.DB, graph *services.GraphService) *TripController {
	return &TripController{db: db, graph: graph}
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type TripRequest struct {
	Title                  string      `json:"title" binding:"required"`
	Description            string      `json:"description"`
	Destination            string      `json:"destination" binding:"required"`
	DestinationCoordinates Coordinates `json:"destination_coordinates"`
	StartDate              time.Time   `json:"start_date" binding:"required"`
	EndDate                time.Time   `json:"end_date" binding:"required"`
	Privacy                string      `json:"privacy"`
	Tags                   []string    `json:"tags"`
	CoverPhoto             string      `json:"cover_photo"`
}

// mapPrivacy normalizes client privacy values, keeping the legacy
// "friends-only" alias accepted.
func mapPrivacy(privacy string) (string, bool) {
	switch privacy {
	case "", models.VisibilityPublic:
		return models.VisibilityPublic, true
	case models.VisibilityPrivate:
		return models.VisibilityPrivate, true
	case models.VisibilityFriends, "friends-only":
		return models.VisibilityFriends, true
	default:
		return "", false
	}
}

// scrubTripUsers hides contact details of embedded trip owners
func scrubTripUsers(trips []models.Trip) {
	for i := range trips {
		trips[i].User.Email = ""
	}
}

// GetTrips lists all public trips, plus the requester's own trips when a
// valid token was supplied.
func (tc *TripController) GetTrips(c *gin.Context) {
	userID := c.GetString("user_id")

	query := tc.db.Preload("User").Order("created_at DESC")
	if userID != "" {
		query = query.Where("privacy = ? OR user_id = ?", models.VisibilityPublic, userID)
	} else {
		query = query.Where("privacy = ?", models.VisibilityPublic)
	}

	var trips []models.Trip
	if err := query.Find(&trips).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch trips"})
		return
	}

	scrubTripUsers(trips)
	c.JSON(http.StatusOK, trips)
}

// GetTripsByUser lists one user's trips. The owner sees private trips,
// everyone else gets the public ones only.
func (tc *TripController) GetTripsByUser(c *gin.Context) {
	requesterID := c.GetString("user_id")
	targetID := c.Param("userId")

	query := tc.db.Preload("User").Where("user_id = ?", targetID).Order("created_at DESC")
	if requesterID != targetID {
		query = query.Where("privacy = ?", models.VisibilityPublic)
	}

	var trips []models.Trip
	if err := query.Find(&trips).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user trips"})
		return
	}

	scrubTripUsers(trips)
	c.JSON(http.StatusOK, trips)
}

func (tc *TripController) CreateTrip(c *gin.Context) {
	userID := c.GetString("user_id")

	var req TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	privacy, ok := mapPrivacy(req.Privacy)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid privacy value"})
		return
	}

	if !utils.IsValidLatitude(req.DestinationCoordinates.Latitude) ||
		!utils.IsValidLongitude(req.DestinationCoordinates.Longitude) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid destination coordinates"})
		return
	}

	trip := models.Trip{
		ID:            uuid.New().String(),
		UserID:        userID,
		Title:         req.Title,
		Description:   req.Description,
		Destination:   req.Destination,
		DestLatitude:  req.DestinationCoordinates.Latitude,
		DestLongitude: req.DestinationCoordinates.Longitude,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Privacy:       privacy,
		Tags:          models.StringSlice(req.Tags),
		CoverPhoto:    req.CoverPhoto,
	}

	if err := tc.graph.CreateTrip(&trip); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create trip"})
		return
	}

	tc.db.Preload("User").First(&trip, "id = ?", trip.ID)
	trip.User.Email = ""

	c.JSON(http.StatusCreated, trip)
}

// GetTrip returns one trip with its entries, their comments and likes.
// Privacy is checked after existence, so a missing trip is always 404.
func (tc *TripController) GetTrip(c *gin.Context) {
	userID := c.GetString("user_id")
	tripID := c.Param("id")

	var trip models.Trip
	err := tc.db.
		Preload("User").
		Preload("Entries", func(db *gorm.DB) *gorm.DB {
			return db.Order("journal_entries.date ASC")
		}).
		Preload("Entries.Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Preload("Entries.Comments.User").
		Preload("Entries.Likes").
		First(&trip, "id = ?", tripID).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		return
	}

	if !services.CanReadTrip(&trip, userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	trip.User.Email = ""
	for i := range trip.Entries {
		for j := range trip.Entries[i].Comments {
			trip.Entries[i].Comments[j].User.Email = ""
		}
	}

	c.JSON(http.StatusOK, trip)
}

func (tc *TripController) UpdateTrip(c *gin.Context) {
	userID := c.GetString("user_id")
	tripID := c.Param("id")

	var trip models.Trip
	if err := tc.db.First(&trip, "id = ?", tripID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		return
	}

	if !services.CanWriteTrip(&trip, userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	var req TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	privacy, ok := mapPrivacy(req.Privacy)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid privacy value"})
		return
	}

	updates := map[string]interface{}{
		"title":          req.Title,
		"description":    req.Description,
		"destination":    req.Destination,
		"dest_latitude":  req.DestinationCoordinates.Latitude,
		"dest_longitude": req.DestinationCoordinates.Longitude,
		"start_date":     req.StartDate,
		"end_date":       req.EndDate,
		"privacy":        privacy,
		"tags":           models.StringSlice(req.Tags),
		"cover_photo":    req.CoverPhoto,
	}

	if err := tc.db.Model(&trip).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update trip"})
		return
	}

	tc.db.Preload("User").First(&trip, "id = ?", tripID)
	trip.User.Email = ""

	c.JSON(http.StatusOK, trip)
}

func (tc *TripController) DeleteTrip(c *gin.Context) {
	userID := c.GetString("user_id")
	tripID := c.Param("id")

	if err := tc.graph.DeleteTrip(tripID, userID); err != nil {
		utils.SendServiceError(c, err, "Trip", "Failed to delete trip")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trip deleted successfully"})
}
