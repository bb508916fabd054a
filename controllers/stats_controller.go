package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/openroam/travelblog/models"
	"github.com/openroam/travelblog/utils"
)

// StatsController provides the aggregate counts shown on the admin dashboard.
type StatsController struct {
	db *gorm.DB
}

// NewStatsController creates a new StatsController instance.
func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{db: db}
}

// GetStats returns collection counts. Individual failures fall back to zero
// instead of failing the whole endpoint.
func (s *StatsController) GetStats(ctx *gin.Context) {
	count := func(q *gorm.DB) int64 {
		var n int64
		if err := q.Count(&n).Error; err != nil {
			return 0
		}
		return n
	}

	utils.Success(ctx, gin.H{
		"posts":             count(s.db.Model(&models.Post{})),
		"published_posts":   count(s.db.Model(&models.Post{}).Where("published = ?", true)),
		"featured_posts":    count(s.db.Model(&models.Post{}).Where("featured = ?", true)),
		"authors":           count(s.db.Model(&models.Author{})),
		"categories":        count(s.db.Model(&models.Category{})),
		"comments":          count(s.db.Model(&models.Comment{})),
		"pending_comments":  count(s.db.Model(&models.Comment{}).Where("status = ?", models.CommentPending)),
		"approved_comments": count(s.db.Model(&models.Comment{}).Where("status = ?", models.CommentApproved)),
		"subscribers":       count(s.db.Model(&models.Subscriber{})),
	})
}
