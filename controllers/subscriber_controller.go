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

// SubscriberController manages newsletter signups.
type SubscriberController struct {
	db *gorm.DB
	// sendMail is swapped out in tests; defaults to utils.SendMail.
	sendMail func(to, subject, body string) error
}

// NewSubscriberController creates a new SubscriberController instance.
func NewSubscriberController(db *gorm.DB) *SubscriberController {
	return &SubscriberController{db: db, sendMail: utils.SendMail}
}

// ListSubscribers returns all subscribers, newest first. Admin only.
func (s *SubscriberController) ListSubscribers(ctx *gin.Context) {
	var subscribers []models.Subscriber
	if err := s.db.Order("created_at DESC").Find(&subscribers).Error; err != nil {
		utils.ServerError(ctx, 50080)
		return
	}
	utils.Success(ctx, subscribers)
}

// CreateSubscriber signs an email up, rejecting duplicates before insert.
func (s *SubscriberController) CreateSubscriber(ctx *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40060, "invalid request payload")
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	if err := s.db.Model(&models.Subscriber{}).Where("email = ?", email).Count(&count).Error; err != nil {
		utils.ServerError(ctx, 50081)
		return
	}
	if count > 0 {
		utils.Error(ctx, http.StatusBadRequest, 40061, "Email already subscribed")
		return
	}

	subscriber := models.Subscriber{Email: email}
	if err := s.db.Create(&subscriber).Error; err != nil {
		utils.ServerError(ctx, 50082)
		return
	}

	// Welcome mail is best-effort and must not delay or fail the signup.
	go func(to string) {
		defer func() { _ = recover() }()
		if err := s.sendMail(to, "Welcome to Travelling",
			"Thanks for subscribing! New travel stories will land in your inbox."); err != nil {
			if utils.Sugar != nil {
				utils.Sugar.Debugf("welcome mail skipped for %s: %v", to, err)
			}
		}
	}(email)

	utils.Created(ctx, subscriber)
}

// DeleteSubscriber removes a subscriber. Admin only.
func (s *SubscriberController) DeleteSubscriber(ctx *gin.Context) {
	var subscriber models.Subscriber
	if err := s.db.First(&subscriber, ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(ctx, 40405, "Subscriber not found")
			return
		}
		utils.ServerError(ctx, 50083)
		return
	}

	if err := s.db.Delete(&subscriber).Error; err != nil {
		utils.ServerError(ctx, 50084)
		return
	}

	utils.Success(ctx, gin.H{"message": "Subscriber removed"})
}
