// File: /controllers/comment_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"wanderlog-api/services"
	"wanderlog-api/utils"
)

type CommentController struct {
	db    *gorm.DB
	graph *services.GraphService
}

func NewCommentController(db *gorm.DB, graph *services.GraphService) *CommentController {
	return &CommentController{db: db, graph: graph}
}

// LikeComment toggles the requester's like on a comment
func (cc *CommentController) LikeComment(c *gin.Context) {
	userID := c.GetString("user_id")
	commentID := c.Param("id")

	liked, count, err := cc.graph.ToggleCommentLike(commentID, userID)
	if err != nil {
		utils.SendServiceError(c, err, "Comment", "Failed to like/unlike comment")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"liked":       liked,
		"likes_count": count,
	})
}
