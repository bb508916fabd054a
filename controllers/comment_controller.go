package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/openroam/travelblog/models"
	"github.com/openroam/travelblog/utils"
)

// CommentController manages comment submission and moderation.
type CommentController struct {
	db *gorm.DB
}

// NewCommentController creates a new CommentController instance.
func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{db: db}
}

// ListComments returns every comment regardless of status, newest first,
// with the referenced post joined. Admin only.
func (c *CommentController) ListComments(ctx *gin.Context) {
	var comments []models.Comment
	if err := c.db.Preload("Post", func(db *gorm.DB) *gorm.DB {
		return db.Select("id", "title", "slug")
	}).Order("created_at DESC").Find(&comments).Error; err != nil {
		utils.ServerError(ctx, 50070)
		return
	}
	utils.Success(ctx, comments)
}

// ListCommentsByPost returns approved comments for a post, newest first.
// This is the public listing shown under a post.
func (c *CommentController) ListCommentsByPost(ctx *gin.Context) {
	var comments []models.Comment
	if err := c.db.
		Where("post_id = ? AND status = ?", ctx.Param("postId"), models.CommentApproved).
		Order("created_at DESC").Find(&comments).Error; err != nil {
		utils.ServerError(ctx, 50071)
		return
	}
	utils.Success(ctx, comments)
}

// CreateComment stores a reader comment. The status is always pending
// regardless of input; only an explicit approve call changes it.
func (c *CommentController) CreateComment(ctx *gin.Context) {
	var req struct {
		PostID  uint   `json:"post_id" binding:"required"`
		Name    string `json:"name" binding:"required,min=1"`
		Email   string `json:"email" binding:"required,email"`
		Content string `json:"content" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40050, "invalid request payload")
		return
	}

	content := utils.Sanitize(req.Content)
	if strings.TrimSpace(content) == "" {
		utils.Error(ctx, http.StatusBadRequest, 40051, "content cannot be empty")
		return
	}

	if err := c.db.First(&models.Post{}, req.PostID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(ctx, 40401, "Post not found")
			return
		}
		utils.ServerError(ctx, 50072)
		return
	}

	comment := models.Comment{
		PostID:  req.PostID,
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Content: content,
		Status:  models.CommentPending,
	}
	if err := c.db.Create(&comment).Error; err != nil {
		utils.ServerError(ctx, 50073)
		return
	}

	utils.Created(ctx, comment)
}

// ApproveComment flips a comment to approved.
func (c *CommentController) ApproveComment(ctx *gin.Context) {
	c.setStatus(ctx, models.CommentApproved)
}

// RejectComment flips a comment to rejected.
func (c *CommentController) RejectComment(ctx *gin.Context) {
	c.setStatus(ctx, models.CommentRejected)
}

func (c *CommentController) setStatus(ctx *gin.Context, status string) {
	var comment models.Comment
	if err := c.db.First(&comment, ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(ctx, 40404, "Comment not found")
			return
		}
		utils.ServerError(ctx, 50074)
		return
	}

	comment.Status = status
	if err := c.db.Save(&comment).Error; err != nil {
		utils.ServerError(ctx, 50075)
		return
	}

	utils.Success(ctx, comment)
}

// DeleteComment removes a comment.
func (c *CommentController) DeleteComment(ctx *gin.Context) {
	var comment models.Comment
	if err := c.db.First(&comment, ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(ctx, 40404, "Comment not found")
			return
		}
		utils.ServerError(ctx, 50076)
		return
	}

	if err := c.db.Delete(&comment).Error; err != nil {
		utils.ServerError(ctx, 50077)
		return
	}

	utils.Success(ctx, gin.H{"message": "Comment removed"})
}
