package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/openroam/travelblog/models"
	"github.com/openroam/travelblog/utils"
)

// CategoryController manages CRUD operations for categories.
type CategoryController struct {
	db *gorm.DB
}

// NewCategoryController creates a new CategoryController instance.
func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{db: db}
}

// ListCategories returns all categories, name ascending, each with its
// computed post count.
func (c *CategoryController) ListCategories(ctx *gin.Context) {
	const cacheKey = "cache:categories:list"
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	var categories []models.Category
	if err := c.db.Order("name ASC").Find(&categories).Error; err != nil {
		utils.ServerError(ctx, 50050)
		return
	}

	for i := range categories {
		if err := c.db.Table("post_categories").
			Where("category_id = ?", categories[i].ID).
			Count(&categories[i].Count).Error; err != nil {
			utils.ServerError(ctx, 50051)
			return
		}
	}

	utils.CacheEnvelope(cacheKey, categories, time.Hour)
	utils.Success(ctx, categories)
}

// GetCategoryBySlug returns a single category by slug.
func (c *CategoryController) GetCategoryBySlug(ctx *gin.Context) {
	slug := ctx.Param("slug")

	var category models.Category
	if err := c.db.Where("slug = ?", slug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(ctx, 40402, "Category not found")
			return
		}
		utils.ServerError(ctx, 50052)
		return
	}

	if err := c.db.Table("post_categories").
		Where("category_id = ?", category.ID).
		Count(&category.Count).Error; err != nil {
		utils.ServerError(ctx, 50053)
		return
	}

	utils.Success(ctx, category)
}

// CreateCategory stores a new category.
func (c *CategoryController) CreateCategory(ctx *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required,min=1"`
		Slug        string `json:"slug"`
		Description string `json:"description"`
		Image       string `json:"image"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40030, "invalid request payload")
		return
	}

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}

	category := models.Category{
		Name:        strings.TrimSpace(req.Name),
		Slug:        slug,
		Description: req.Description,
		Image:       req.Image,
	}
	if err := c.db.Create(&category).Error; err != nil {
		utils.ServerError(ctx, 50054)
		return
	}

	utils.InvalidateByPrefix("cache:categories:")

	utils.Created(ctx, category)
}

// UpdateCategory merges the provided patch into the stored category.
func (c *CategoryController) UpdateCategory(ctx *gin.Context) {
	var req struct {
		Name        string `json:"name"`
		Slug        string `json:"slug"`
		Description string `json:"description"`
		Image       string `json:"image"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40031, "invalid request payload")
		return
	}

	var category models.Category
	if err := c.db.First(&category, ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(ctx, 40402, "Category not found")
			return
		}
		utils.ServerError(ctx, 50055)
		return
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		category.Name = name
	}
	if slug := strings.TrimSpace(req.Slug); slug != "" {
		category.Slug = slug
	}
	if req.Description != "" {
		category.Description = req.Description
	}
	if req.Image != "" {
		category.Image = req.Image
	}

	if err := c.db.Save(&category).Error; err != nil {
		utils.ServerError(ctx, 50056)
		return
	}

	utils.InvalidateByPrefix("cache:categories:")
	utils.InvalidateByPrefix("cache:posts:")

	utils.Success(ctx, category)
}

// DeleteCategory removes a category and pulls its id from every post's
// category set. Both writes run in one transaction; the periodic repair
// sweep cleans up any historical partial failures.
func (c *CategoryController) DeleteCategory(ctx *gin.Context) {
	var category models.Category
	if err := c.db.First(&category, ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(ctx, 40402, "Category not found")
			return
		}
		utils.ServerError(ctx, 50057)
		return
	}

	err := c.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM post_categories WHERE category_id = ?", category.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
	if err != nil {
		utils.ServerError(ctx, 50058)
		return
	}

	utils.InvalidateByPrefix("cache:categories:")
	utils.InvalidateByPrefix("cache:posts:")

	utils.Success(ctx, gin.H{"message": "Category removed"})
}
