package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"news-backend/internal/shared/middleware"
	"news-backend/internal/shared/response"
	"news-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.Logger(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupArticleRoutes(v1, c)
		setupTagRoutes(v1, c)
		setupCategoryRoutes(v1, c)
		setupAccountRoutes(v1, c)
		setupReportRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.AuthHandler.Login)
		auth.POST("/refresh", c.AuthHandler.Refresh)
	}
}

// ========================================
// ARTICLE ROUTES
// ========================================
func setupArticleRoutes(v1 *gin.RouterGroup, c *container.Container) {
	articles := v1.Group("/articles")
	{
		// Public reads. GetByID parses the token when present so
		// authors and admins can open their drafts.
		articles.GET("", c.ArticleHandler.Search)
		articles.GET("/active", c.ArticleHandler.ListActive)
		articles.GET("/:id", middleware.OptionalAuth(c.JWTManager), c.ArticleHandler.GetByID)
		articles.GET("/:id/related", c.ArticleHandler.GetRelated)

		// Staff management
		staff := articles.Group("")
		staff.Use(middleware.AuthMiddleware(c.JWTManager), middleware.RequireStaff())
		{
			staff.GET("/my", c.ArticleHandler.ListMine)
			staff.POST("", c.ArticleHandler.Create)
			staff.PUT("/:id", c.ArticleHandler.Update)
			staff.DELETE("/:id", c.ArticleHandler.Delete)
			staff.POST("/:id/duplicate", c.ArticleHandler.Duplicate)
		}
	}
}

// ========================================
// TAG ROUTES
// ========================================
func setupTagRoutes(v1 *gin.RouterGroup, c *container.Container) {
	tags := v1.Group("/tags")
	{
		tags.GET("", c.TagHandler.GetAll)
		tags.GET("/:id", c.TagHandler.GetByID)

		staff := tags.Group("")
		staff.Use(middleware.AuthMiddleware(c.JWTManager), middleware.RequireStaff())
		{
			staff.POST("", c.TagHandler.Create)
			staff.PUT("/:id", c.TagHandler.Update)
			staff.DELETE("/:id", c.TagHandler.Delete)
		}
	}
}

// ========================================
// CATEGORY ROUTES
// ========================================
func setupCategoryRoutes(v1 *gin.RouterGroup, c *container.Container) {
	categories := v1.Group("/categories")
	{
		categories.GET("", c.CategoryHandler.GetAll)
		categories.GET("/:id", c.CategoryHandler.GetByID)
		categories.GET("/:id/articles", c.ArticleHandler.ListByCategory)

		staff := categories.Group("")
		staff.Use(middleware.AuthMiddleware(c.JWTManager), middleware.RequireStaff())
		{
			staff.POST("", c.CategoryHandler.Create)
			staff.PUT("/:id", c.CategoryHandler.Update)
			staff.DELETE("/:id", c.CategoryHandler.Delete)
		}
	}
}

// ========================================
// ACCOUNT ROUTES (admin only)
// ========================================
func setupAccountRoutes(v1 *gin.RouterGroup, c *container.Container) {
	accounts := v1.Group("/accounts")
	accounts.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		// Any authenticated caller can read their own profile.
		accounts.GET("/me", c.AccountHandler.Me)

		admin := accounts.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("", c.AccountHandler.GetAll)
			admin.GET("/:id", c.AccountHandler.GetByID)
			admin.POST("", c.AccountHandler.Create)
			admin.PUT("/:id", c.AccountHandler.Update)
			admin.DELETE("/:id", c.AccountHandler.Delete)
		}
	}
}

// ========================================
// REPORT ROUTES (admin only)
// ========================================
func setupReportRoutes(v1 *gin.RouterGroup, c *container.Container) {
	reports := v1.Group("/reports")
	reports.Use(middleware.AuthMiddleware(c.JWTManager), middleware.RequireAdmin())
	{
		reports.GET("/dashboard", c.ReportHandler.Dashboard)
		reports.GET("/statistics", c.ReportHandler.Statistics)
		reports.GET("/by-category", c.ReportHandler.ByCategory)
		reports.GET("/by-author", c.ReportHandler.ByAuthor)
		reports.GET("/export", c.ReportHandler.ExportArticles)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		health := gin.H{
			"status":   "ok",
			"database": "ok",
			"cache":    "ok",
		}
		status := http.StatusOK

		if err := c.DB.Ping(ctx.Request.Context()); err != nil {
			health["status"] = "degraded"
			health["database"] = err.Error()
			status = http.StatusServiceUnavailable
		}

		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			health["status"] = "degraded"
			health["cache"] = err.Error()
		}

		response.Success(ctx, status, health)
	}
}
