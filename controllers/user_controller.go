// File: /controllers/user_controller.go
package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"wanderlog-api/models"
	"wanderlog-api/services"
	"wanderlog-api/utils"
)

type UserController struct {
	db    *gorm.DB
	graph *services.GraphService
}

func NewUserController(db *gorm.DB, graph *services.GraphService) *UserController {
	return &UserController{db: db, graph: graph}
}

// ProfileResponse is a user record with its social edges resolved from
// the follow rows.
type ProfileResponse struct {
	models.User
	Followers []models.UserSummary `json:"followers"`
	Following []models.UserSummary `json:"following"`
}

func (uc *UserController) loadProfile(userID string) (*ProfileResponse, error) {
	var user models.User
	if err := uc.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}

	followers, err := uc.edgeSummaries("follower_id", "following_id", userID)
	if err != nil {
		return nil, err
	}
	following, err := uc.edgeSummaries("following_id", "follower_id", userID)
	if err != nil {
		return nil, err
	}

	return &ProfileResponse{User: user, Followers: followers, Following: following}, nil
}

// edgeSummaries resolves one direction of the follow graph into public
// user projections. selectCol is the side being collected, whereCol the
// side being matched.
func (uc *UserController) edgeSummaries(selectCol, whereCol, userID string) ([]models.UserSummary, error) {
	var users []models.User
	err := uc.db.
		Joins("JOIN follows ON follows."+selectCol+" = users.id").
		Where("follows."+whereCol+" = ?", userID).
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, u.Summary())
	}
	return summaries, nil
}

// GetProfile returns the authenticated user's own profile
func (uc *UserController) GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	profile, err := uc.loadProfile(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

type UpdateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Bio       *string `json:"bio"`
	Location  *string `json:"location"`
	Avatar    *string `json:"avatar"`

	PrivacySettings *struct {
		ProfileVisibility string `json:"profile_visibility"`
		TripsVisibility   string `json:"trips_visibility"`
	} `json:"privacy_settings"`
}

func (uc *UserController) UpdateProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}
	if req.PrivacySettings != nil {
		if !models.IsValidVisibility(req.PrivacySettings.ProfileVisibility) ||
			!models.IsValidVisibility(req.PrivacySettings.TripsVisibility) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid privacy setting"})
			return
		}
		updates["profile_visibility"] = req.PrivacySettings.ProfileVisibility
		updates["trips_visibility"] = req.PrivacySettings.TripsVisibility
	}

	if len(updates) > 0 {
		if err := uc.db.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}
	}

	profile, err := uc.loadProfile(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetUser returns another user's profile by id
func (uc *UserController) GetUser(c *gin.Context) {
	profile, err := uc.loadProfile(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// FollowUser toggles the follow edge towards the target user
func (uc *UserController) FollowUser(c *gin.Context) {
	userID := c.GetString("user_id")
	targetID := c.Param("id")

	following, err := uc.graph.ToggleFollow(userID, targetID)
	if err != nil {
		if utils.StatusForError(err) == http.StatusBadRequest {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot follow yourself"})
			return
		}
		utils.SendServiceError(c, err, "User", "Failed to follow/unfollow user")
		return
	}

	message := "Followed successfully"
	if !following {
		message = "Unfollowed successfully"
	}

	c.JSON(http.StatusOK, gin.H{
		"following": following,
		"message":   message,
	})
}

// GetFollowers lists the users following the given user
func (uc *UserController) GetFollowers(c *gin.Context) {
	userID := c.Param("id")

	var user models.User
	if err := uc.db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	followers, err := uc.edgeSummaries("follower_id", "following_id", userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch followers"})
		return
	}

	c.JSON(http.StatusOK, followers)
}

// GetFollowing lists the users the given user follows
func (uc *UserController) GetFollowing(c *gin.Context) {
	userID := c.Param("id")

	var user models.User
	if err := uc.db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	following, err := uc.edgeSummaries("following_id", "follower_id", userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch following"})
		return
	}

	c.JSON(http.StatusOK, following)
}

// SearchUsers matches the query against username and real name, and
// returns at most 20 public projections.
func (uc *UserController) SearchUsers(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Search query is required"})
		return
	}

	pattern := "%" + strings.ToLower(query) + "%"

	var users []models.User
	if err := uc.db.
		Where("LOWER(username) LIKE ? OR LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?",
			pattern, pattern, pattern).
		Limit(20).
		Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search users"})
		return
	}

	results := make([]models.UserSummary, 0, len(users))
	for _, u := range users {
		results = append(results, u.Summary())
	}

	c.JSON(http.StatusOK, results)
}
