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

// AuthorController manages CRUD operations for author profiles.
type AuthorController struct {
	db *gorm.DB
}

// NewAuthorController creates a new AuthorController instance.
func NewAuthorController(db *gorm.DB) *AuthorController {
	return &AuthorController{db: db}
}

// ListAuthors returns all authors, name ascending.
func (a *AuthorController) ListAuthors(ctx *gin.Context) {
	var authors []models.Author
	if err := a.db.Order("name ASC").Find(&authors).Error; err != nil {
		utils.ServerError(ctx, 50060)
		return
	}
	utils.Success(ctx, authors)
}

// GetAuthor returns a single author by id.
func (a *AuthorController) GetAuthor(ctx *gin.Context) {
	var author models.Author
	if err := a.db.First(&author, ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(ctx, 40403, "Author not found")
			return
		}
		utils.ServerError(ctx, 50061)
		return
	}
	utils.Success(ctx, author)
}

// CreateAuthor stores a new author profile.
func (a *AuthorController) CreateAuthor(ctx *gin.Context) {
	var req struct {
		Name   string `json:"name" binding:"required,min=1"`
		Avatar string `json:"avatar" binding:"required"`
		Bio    string `json:"bio" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40040, "invalid request payload")
		return
	}

	author := models.Author{
		Name:   strings.TrimSpace(req.Name),
		Avatar: req.Avatar,
		Bio:    req.Bio,
	}
	if err := a.db.Create(&author).Error; err != nil {
		utils.ServerError(ctx, 50062)
		return
	}

	utils.Created(ctx, author)
}

// UpdateAuthor merges the provided patch into the stored author.
func (a *AuthorController) UpdateAuthor(ctx *gin.Context) {
	var req struct {
		Name   string `json:"name"`
		Avatar string `json:"avatar"`
		Bio    string `json:"bio"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40041, "invalid request payload")
		return
	}

	var author models.Author
	if err := a.db.First(&author, ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(ctx, 40403, "Author not found")
			return
		}
		utils.ServerError(ctx, 50063)
		return
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		author.Name = name
	}
	if req.Avatar != "" {
		author.Avatar = req.Avatar
	}
	if req.Bio != "" {
		author.Bio = req.Bio
	}

	if err := a.db.Save(&author).Error; err != nil {
		utils.ServerError(ctx, 50064)
		return
	}

	utils.InvalidateByPrefix("cache:posts:")

	utils.Success(ctx, author)
}

// DeleteAuthor removes an author profile.
func (a *AuthorController) DeleteAuthor(ctx *gin.Context) {
	var author models.Author
	if err := a.db.First(&author, ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(ctx, 40403, "Author not found")
			return
		}
		utils.ServerError(ctx, 50065)
		return
	}

	if err := a.db.Delete(&author).Error; err != nil {
		utils.ServerError(ctx, 50066)
		return
	}

	// Cached post payloads embed the author profile.
	utils.InvalidateByPrefix("cache:posts:")

	utils.Success(ctx, gin.H{"message": "Author removed"})
}
