package container

import (
	"context"
	"fmt"
	"time"

	"news-backend/internal/config"
	infraCache "news-backend/internal/infrastructure/cache"
	"news-backend/internal/infrastructure/database"
	"news-backend/pkg/cache"
	"news-backend/pkg/jwt"
	"news-backend/pkg/logger"

	"news-backend/internal/domains/account"
	accountHandler "news-backend/internal/domains/account/handler"
	accountRepo "news-backend/internal/domains/account/repository"
	accountService "news-backend/internal/domains/account/service"

	"news-backend/internal/domains/article"
	articleHandler "news-backend/internal/domains/article/handler"
	articleRepo "news-backend/internal/domains/article/repository"
	articleService "news-backend/internal/domains/article/service"

	"news-backend/internal/domains/category"
	categoryHandler "news-backend/internal/domains/category/handler"
	categoryRepo "news-backend/internal/domains/category/repository"
	categoryService "news-backend/internal/domains/category/service"

	"news-backend/internal/domains/report"
	reportHandler "news-backend/internal/domains/report/handler"
	reportRepo "news-backend/internal/domains/report/repository"
	reportService "news-backend/internal/domains/report/service"

	"news-backend/internal/domains/tag"
	tagHandler "news-backend/internal/domains/tag/handler"
	tagRepo "news-backend/internal/domains/tag/repository"
	tagService "news-backend/internal/domains/tag/service"
)

// Container is the root of the dependency graph. Everything in it is
// a singleton living for the whole process.
type Container struct {
	// Infrastructure
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	// Repositories
	AccountRepo  account.Repository
	ArticleRepo  article.Repository
	CategoryRepo category.Repository
	ReportRepo   report.Repository
	TagRepo      tag.Repository

	// Services
	AccountService  account.Service
	ArticleService  article.Service
	CategoryService category.Service
	ReportService   report.Service
	TagService      tag.Service

	// Handlers
	AccountHandler  *accountHandler.AccountHandler
	AuthHandler     *accountHandler.AuthHandler
	ArticleHandler  *articleHandler.ArticleHandler
	CategoryHandler *categoryHandler.CategoryHandler
	ReportHandler   *reportHandler.ReportHandler
	TagHandler      *tagHandler.TagHandler
}

// NewContainer initializes the whole dependency graph in order:
// config, infrastructure, repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.NewPostgresDB(ctx, dbConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		// A missing Redis degrades caching, it does not block startup
		if err := rc.Connect(context.Background()); err != nil {
			logger.Warn("redis connection failed", map[string]interface{}{"error": err.Error()})
		}
	}
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Hour,
	)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.AccountRepo = accountRepo.NewPostgresRepository(pool)
	c.ArticleRepo = articleRepo.NewPostgresRepository(pool)
	c.CategoryRepo = categoryRepo.NewPostgresRepository(pool)
	c.ReportRepo = reportRepo.NewPostgresRepository(pool)
	c.TagRepo = tagRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.AccountService = accountService.NewAccountService(c.AccountRepo, c.JWTManager)
	c.ArticleService = articleService.NewArticleService(c.ArticleRepo, c.Cache)
	c.CategoryService = categoryService.NewCategoryService(c.CategoryRepo)
	c.ReportService = reportService.NewReportService(c.ReportRepo)
	c.TagService = tagService.NewTagService(c.TagRepo)
}

func (c *Container) initHandlers() {
	c.AccountHandler = accountHandler.NewAccountHandler(c.AccountService)
	c.AuthHandler = accountHandler.NewAuthHandler(c.AccountService)
	c.ArticleHandler = articleHandler.NewArticleHandler(c.ArticleService)
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)
	c.ReportHandler = reportHandler.NewReportHandler(c.ReportService)
	c.TagHandler = tagHandler.NewTagHandler(c.TagService)
}

// Cleanup releases infrastructure connections on shutdown
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Error("failed to close redis client", err)
		}
	}
}
