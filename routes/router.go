package routes

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/openroam/travelblog/config"
	"github.com/openroam/travelblog/controllers"
	"github.com/openroam/travelblog/middleware"
	"github.com/openroam/travelblog/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Access log goes to its own rolling file so it rotates independently
	// of the application log.
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	// An empty list means allow-all rather than a cors.New panic when the
	// config skipped defaulting.
	if len(cfg.AllowedOrigins) == 0 ||
		(len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.Static("/uploads", cfg.UploadDir)

	authController := controllers.NewAuthController()
	postController := controllers.NewPostController(db)
	categoryController := controllers.NewCategoryController(db)
	authorController := controllers.NewAuthorController(db)
	commentController := controllers.NewCommentController(db)
	subscriberController := controllers.NewSubscriberController(db)
	uploadController := controllers.NewUploadController(db)
	statsController := controllers.NewStatsController(db)

	api := r.Group("/api")

	api.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Server is running"})
	})

	authGroup := api.Group("/auth")
	authGroup.POST("/login", middleware.RateLimitMiddleware(), authController.Login)
	authGroup.POST("/logout", middleware.AuthRequired(), authController.Logout)
	authGroup.GET("/me", middleware.AuthRequired(), authController.Me)

	// Public read surface plus the two public write endpoints
	// (comment submission and newsletter signup), both rate limited.
	api.GET("/posts", postController.ListPosts)
	api.GET("/posts/featured", postController.ListFeaturedPosts)
	api.GET("/posts/recent", postController.ListRecentPosts)
	api.GET("/posts/search", postController.SearchPosts)
	api.GET("/posts/slug/:slug", postController.GetPostBySlug)
	api.GET("/posts/category/:slug", postController.ListPostsByCategory)
	api.GET("/posts/:id/related", postController.ListRelatedPosts)

	api.GET("/categories", categoryController.ListCategories)
	api.GET("/categories/slug/:slug", categoryController.GetCategoryBySlug)

	api.GET("/authors", authorController.ListAuthors)
	api.GET("/authors/:id", authorController.GetAuthor)

	api.GET("/comments/post/:postId", commentController.ListCommentsByPost)
	api.POST("/comments", middleware.RateLimitMiddleware(), commentController.CreateComment)

	api.POST("/subscribers", middleware.RateLimitMiddleware(), subscriberController.CreateSubscriber)

	// Admin surface, gated by the session token.
	admin := api.Group("")
	admin.Use(middleware.AuthRequired())

	admin.POST("/posts", postController.CreatePost)
	admin.PUT("/posts/:id", postController.UpdatePost)
	admin.DELETE("/posts/:id", postController.DeletePost)

	admin.POST("/categories", categoryController.CreateCategory)
	admin.PUT("/categories/:id", categoryController.UpdateCategory)
	admin.DELETE("/categories/:id", categoryController.DeleteCategory)

	admin.POST("/authors", authorController.CreateAuthor)
	admin.PUT("/authors/:id", authorController.UpdateAuthor)
	admin.DELETE("/authors/:id", authorController.DeleteAuthor)

	admin.GET("/comments", commentController.ListComments)
	admin.PUT("/comments/approve/:id", commentController.ApproveComment)
	admin.PUT("/comments/reject/:id", commentController.RejectComment)
	admin.DELETE("/comments/:id", commentController.DeleteComment)

	admin.GET("/subscribers", subscriberController.ListSubscribers)
	admin.DELETE("/subscribers/:id", subscriberController.DeleteSubscriber)

	admin.POST("/uploads", uploadController.Upload)

	admin.GET("/stats", statsController.GetStats)

	r.NoRoute(func(ctx *gin.Context) {
		path := ctx.Request.URL.Path
		if strings.HasPrefix(path, "/api/") {
			utils.Error(ctx, http.StatusNotFound, 40400, "api route not found")
			return
		}
		if strings.HasPrefix(path, "/uploads/") {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "file not found"})
			return
		}
		// In production the compiled front-end is served as a catch-all so
		// client-side routes like /post/:slug resolve to the SPA entry.
		if cfg.StaticDir != "" {
			if path != "/" && !strings.Contains(path, "..") {
				candidate := filepath.Join(cfg.StaticDir, filepath.Clean(path))
				if fileExists(candidate) {
					ctx.File(candidate)
					return
				}
			}
			ctx.Status(http.StatusOK)
			ctx.File(filepath.Join(cfg.StaticDir, "index.html"))
			return
		}
		ctx.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	})

	return r
}
