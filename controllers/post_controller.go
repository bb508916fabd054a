package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/openroam/travelblog/models"
	"github.com/openroam/travelblog/utils"
)

// PostController manages CRUD operations for posts.
type PostController struct {
	db *gorm.DB
}

// NewPostController creates a new PostController instance.
func NewPostController(db *gorm.DB) *PostController {
	return &PostController{db: db}
}

// ListPosts returns all posts, newest first, with author and category summaries.
func (p *PostController) ListPosts(ctx *gin.Context) {
	const cacheKey = "cache:posts:list"
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	var posts []models.Post
	if err := p.db.Preload("Author").Preload("Categories").
		Order("created_at DESC").Find(&posts).Error; err != nil {
		utils.ServerError(ctx, 50020)
		return
	}

	utils.CacheEnvelope(cacheKey, posts, time.Hour)
	utils.Success(ctx, posts)
}

// GetPostBySlug returns a single post by its slug.
func (p *PostController) GetPostBySlug(ctx *gin.Context) {
	slug := ctx.Param("slug")

	cacheKey := "cache:posts:slug:" + slug
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	var post models.Post
	err := p.db.Preload("Author").Preload("Categories").
		Where("slug = ?", slug).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(ctx, 40401, "Post not found")
			return
		}
		utils.ServerError(ctx, 50021)
		return
	}

	utils.CacheEnvelope(cacheKey, post, time.Hour)
	utils.Success(ctx, post)
}

// ListFeaturedPosts returns published posts flagged for homepage highlight.
func (p *PostController) ListFeaturedPosts(ctx *gin.Context) {
	var posts []models.Post
	if err := p.db.Preload("Author").Preload("Categories").
		Where("featured = ? AND published = ?", true, true).
		Order("created_at DESC").Find(&posts).Error; err != nil {
		utils.ServerError(ctx, 50022)
		return
	}
	utils.Success(ctx, posts)
}

// ListRecentPosts returns the most recently published posts.
func (p *PostController) ListRecentPosts(ctx *gin.Context) {
	limit := 5
	if n, err := strconv.Atoi(ctx.Query("limit")); err == nil && n > 0 && n <= 50 {
		limit = n
	}
	var posts []models.Post
	if err := p.db.Preload("Author").Preload("Categories").
		Where("published = ?", true).
		Order("created_at DESC").Limit(limit).Find(&posts).Error; err != nil {
		utils.ServerError(ctx, 50023)
		return
	}
	utils.Success(ctx, posts)
}

// ListPostsByCategory returns published posts belonging to a category slug.
func (p *PostController) ListPostsByCategory(ctx *gin.Context) {
	slug := ctx.Param("slug")

	var category models.Category
	if err := p.db.Where("slug = ?", slug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(ctx, 40402, "Category not found")
			return
		}
		utils.ServerError(ctx, 50024)
		return
	}

	var posts []models.Post
	if err := p.db.Preload("Author").Preload("Categories").
		Joins("JOIN post_categories pc ON pc.post_id = posts.id").
		Where("pc.category_id = ? AND posts.published = ?", category.ID, true).
		Order("posts.created_at DESC").Find(&posts).Error; err != nil {
		utils.ServerError(ctx, 50025)
		return
	}
	utils.Success(ctx, posts)
}

// ListRelatedPosts returns published posts sharing a category with the given post.
func (p *PostController) ListRelatedPosts(ctx *gin.Context) {
	postID := ctx.Param("id")

	var post models.Post
	if err := p.db.Preload("Categories").First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(ctx, 40401, "Post not found")
			return
		}
		utils.ServerError(ctx, 50026)
		return
	}

	if len(post.Categories) == 0 {
		utils.Success(ctx, []models.Post{})
		return
	}
	catIDs := make([]uint, 0, len(post.Categories))
	for _, c := range post.Categories {
		catIDs = append(catIDs, c.ID)
	}

	var related []models.Post
	if err := p.db.Preload("Author").Preload("Categories").
		Joins("JOIN post_categories pc ON pc.post_id = posts.id").
		Where("pc.category_id IN ? AND posts.id <> ? AND posts.published = ?", catIDs, post.ID, true).
		Group("posts.id").
		Order("posts.created_at DESC").Limit(3).Find(&related).Error; err != nil {
		utils.ServerError(ctx, 50027)
		return
	}
	utils.Success(ctx, related)
}

// SearchPosts performs a substring match over title, excerpt and content.
func (p *PostController) SearchPosts(ctx *gin.Context) {
	q := strings.TrimSpace(ctx.Query("q"))
	if len(q) < 2 {
		utils.Success(ctx, []models.Post{})
		return
	}

	like := "%" + q + "%"
	var posts []models.Post
	if err := p.db.Preload("Author").Preload("Categories").
		Where("published = ?", true).
		Where("title LIKE ? OR excerpt LIKE ? OR content LIKE ?", like, like, like).
		Order("created_at DESC").Find(&posts).Error; err != nil {
		utils.ServerError(ctx, 50028)
		return
	}
	utils.Success(ctx, posts)
}

// CreatePost stores a new post with defaults applied.
func (p *PostController) CreatePost(ctx *gin.Context) {
	var req struct {
		Title      string `json:"title" binding:"required,min=1"`
		Slug       string `json:"slug"`
		Excerpt    string `json:"excerpt" binding:"required"`
		Content    string `json:"content" binding:"required"`
		CoverImage string `json:"cover_image" binding:"required"`
		AuthorID   uint   `json:"author_id" binding:"required"`
		Featured   bool   `json:"featured"`
		Published  *bool  `json:"published"`
		ReadTime   int    `json:"read_time"`
		Categories []uint `json:"categories"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40020, "invalid request payload")
		return
	}

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = utils.Slugify(req.Title)
	}
	if slug == "" {
		utils.Error(ctx, http.StatusBadRequest, 40021, "slug cannot be empty")
		return
	}

	var count int64
	if err := p.db.Model(&models.Post{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		utils.ServerError(ctx, 50029)
		return
	}
	if count > 0 {
		utils.Error(ctx, http.StatusBadRequest, 40022, "A post with this slug already exists")
		return
	}

	var author models.Author
	if err := p.db.First(&author, req.AuthorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusBadRequest, 40023, "Author not found")
			return
		}
		utils.ServerError(ctx, 50030)
		return
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}
	readTime := req.ReadTime
	if readTime <= 0 {
		readTime = 5
	}

	post := models.Post{
		Title:      strings.TrimSpace(req.Title),
		Slug:       slug,
		Excerpt:    utils.Sanitize(req.Excerpt),
		Content:    utils.Sanitize(req.Content),
		CoverImage: req.CoverImage,
		AuthorID:   req.AuthorID,
		Featured:   req.Featured,
		Published:  published,
		ReadTime:   readTime,
	}

	categories, ok := p.resolveCategories(ctx, req.Categories)
	if !ok {
		return
	}
	post.Categories = categories

	if err := p.db.Create(&post).Error; err != nil {
		utils.ServerError(ctx, 50031)
		return
	}
	post.Author = author

	utils.InvalidateByPrefix("cache:posts:")
	utils.InvalidateByPrefix("cache:categories:")

	utils.Created(ctx, post)
}

// UpdatePost merges the provided patch into the stored post. A field present
// and non-empty in the request overrides the stored value, everything else
// keeps its prior value.
func (p *PostController) UpdatePost(ctx *gin.Context) {
	var req struct {
		Title      string  `json:"title"`
		Slug       string  `json:"slug"`
		Excerpt    string  `json:"excerpt"`
		Content    string  `json:"content"`
		CoverImage string  `json:"cover_image"`
		AuthorID   *uint   `json:"author_id"`
		Featured   *bool   `json:"featured"`
		Published  *bool   `json:"published"`
		ReadTime   *int    `json:"read_time"`
		Categories *[]uint `json:"categories"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40024, "invalid request payload")
		return
	}

	postID := ctx.Param("id")
	var post models.Post
	if err := p.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(ctx, 40401, "Post not found")
			return
		}
		utils.ServerError(ctx, 50032)
		return
	}

	if title := strings.TrimSpace(req.Title); title != "" {
		post.Title = title
	}
	if slug := strings.TrimSpace(req.Slug); slug != "" && slug != post.Slug {
		var count int64
		if err := p.db.Model(&models.Post{}).
			Where("slug = ? AND id <> ?", slug, post.ID).Count(&count).Error; err != nil {
			utils.ServerError(ctx, 50033)
			return
		}
		if count > 0 {
			utils.Error(ctx, http.StatusBadRequest, 40022, "A post with this slug already exists")
			return
		}
		post.Slug = slug
	}
	if req.Excerpt != "" {
		post.Excerpt = utils.Sanitize(req.Excerpt)
	}
	if req.Content != "" {
		post.Content = utils.Sanitize(req.Content)
	}
	if req.CoverImage != "" {
		post.CoverImage = req.CoverImage
	}
	if req.AuthorID != nil && *req.AuthorID != 0 {
		if err := p.db.First(&models.Author{}, *req.AuthorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Error(ctx, http.StatusBadRequest, 40023, "Author not found")
				return
			}
			utils.ServerError(ctx, 50034)
			return
		}
		post.AuthorID = *req.AuthorID
	}
	if req.Featured != nil {
		post.Featured = *req.Featured
	}
	if req.Published != nil {
		post.Published = *req.Published
	}
	if req.ReadTime != nil && *req.ReadTime > 0 {
		post.ReadTime = *req.ReadTime
	}

	if err := p.db.Save(&post).Error; err != nil {
		utils.ServerError(ctx, 50035)
		return
	}

	if req.Categories != nil {
		categories, ok := p.resolveCategories(ctx, *req.Categories)
		if !ok {
			return
		}
		if err := p.db.Model(&post).Association("Categories").Replace(categories); err != nil {
			utils.ServerError(ctx, 50036)
			return
		}
	}

	if err := p.db.Preload("Author").Preload("Categories").First(&post, post.ID).Error; err != nil {
		utils.ServerError(ctx, 50037)
		return
	}

	utils.InvalidateByPrefix("cache:posts:")
	utils.InvalidateByPrefix("cache:categories:")

	utils.Success(ctx, post)
}

// DeletePost removes a post and its category references.
func (p *PostController) DeletePost(ctx *gin.Context) {
	postID := ctx.Param("id")
	var post models.Post
	if err := p.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(ctx, 40401, "Post not found")
			return
		}
		utils.ServerError(ctx, 50038)
		return
	}

	err := p.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&post).Association("Categories").Clear(); err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
	if err != nil {
		utils.ServerError(ctx, 50039)
		return
	}

	utils.InvalidateByPrefix("cache:posts:")
	utils.InvalidateByPrefix("cache:categories:")

	utils.Success(ctx, gin.H{"message": "Post removed"})
}

// resolveCategories loads the referenced categories, replying with an error
// response when an id does not resolve.
func (p *PostController) resolveCategories(ctx *gin.Context, ids []uint) ([]models.Category, bool) {
	if len(ids) == 0 {
		return []models.Category{}, true
	}
	var categories []models.Category
	if err := p.db.Find(&categories, ids).Error; err != nil {
		utils.ServerError(ctx, 50040)
		return nil, false
	}
	if len(categories) != len(uniqueUint(ids)) {
		utils.Error(ctx, http.StatusBadRequest, 40025, "one or more categories not found")
		return nil, false
	}
	return categories, true
}

func uniqueUint(in []uint) []uint {
	seen := make(map[uint]struct{}, len(in))
	out := make([]uint, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}
