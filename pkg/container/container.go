package container

import (
	"context"
	"fmt"

	"ralhum-backend/internal/config"
	"ralhum-backend/internal/infrastructure/cache"
	"ralhum-backend/internal/infrastructure/database"
	"ralhum-backend/internal/infrastructure/storage"
	"ralhum-backend/pkg/jwt"
	"ralhum-backend/pkg/logger"

	brandhandler "ralhum-backend/internal/domains/brand/handler"
	brandrepo "ralhum-backend/internal/domains/brand/repository"
	brandservice "ralhum-backend/internal/domains/brand/service"
	categoryhandler "ralhum-backend/internal/domains/category/handler"
	categoryrepo "ralhum-backend/internal/domains/category/repository"
	categoryservice "ralhum-backend/internal/domains/category/service"
	mediahandler "ralhum-backend/internal/domains/media/handler"
	mediarepo "ralhum-backend/internal/domains/media/repository"
	mediaservice "ralhum-backend/internal/domains/media/service"
	newshandler "ralhum-backend/internal/domains/news/handler"
	newsrepo "ralhum-backend/internal/domains/news/repository"
	newsservice "ralhum-backend/internal/domains/news/service"
	producthandler "ralhum-backend/internal/domains/product/handler"
	productrepo "ralhum-backend/internal/domains/product/repository"
	productservice "ralhum-backend/internal/domains/product/service"
	sitecontenthandler "ralhum-backend/internal/domains/sitecontent/handler"
	sitecontentrepo "ralhum-backend/internal/domains/sitecontent/repository"
	sitecontentservice "ralhum-backend/internal/domains/sitecontent/service"
	userhandler "ralhum-backend/internal/domains/user/handler"
	userrepo "ralhum-backend/internal/domains/user/repository"
	userservice "ralhum-backend/internal/domains/user/service"
)

// Container wires configuration, infrastructure and every domain together.
type Container struct {
	Config *config.Config

	DB    *database.PostgresDB
	Cache *cache.RedisCache
	JWT   *jwt.Manager

	ProductHandler     *producthandler.ProductHandler
	CategoryHandler    *categoryhandler.CategoryHandler
	BrandHandler       *brandhandler.BrandHandler
	NewsHandler        *newshandler.NewsHandler
	MediaHandler       *mediahandler.MediaHandler
	UserHandler        *userhandler.UserHandler
	SiteContentHandler *sitecontenthandler.SiteContentHandler
}

func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	c.DB = database.NewPostgresDB(&cfg.Database)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	c.Cache = cache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.Cache.Connect(ctx); err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}

	objectStore, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("object storage: %w", err)
	}

	c.JWT = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.TokenExpiry)

	pool := c.DB.Pool

	categoryRepo := categoryrepo.NewPostgresRepository(pool)
	brandRepo := brandrepo.NewPostgresRepository(pool)
	productRepo := productrepo.NewPostgresRepository(pool, c.Cache)
	newsRepo := newsrepo.NewPostgresRepository(pool)
	mediaRepo := mediarepo.NewPostgresRepository(pool)
	userRepo := userrepo.NewPostgresRepository(pool)
	siteRepo := sitecontentrepo.NewPostgresRepository(pool)

	categorySvc := categoryservice.NewCategoryService(categoryRepo)
	brandSvc := brandservice.NewBrandService(brandRepo)
	productSvc := productservice.NewProductService(productRepo, categoryRepo, brandRepo)
	newsSvc := newsservice.NewNewsService(newsRepo)
	mediaSvc := mediaservice.NewMediaService(mediaRepo, objectStore, storage.NewImageProcessor())
	userSvc := userservice.NewUserService(userRepo, c.JWT)
	siteSvc := sitecontentservice.NewSiteContentService(siteRepo)

	c.CategoryHandler = categoryhandler.NewCategoryHandler(categorySvc)
	c.BrandHandler = brandhandler.NewBrandHandler(brandSvc)
	c.ProductHandler = producthandler.NewProductHandler(productSvc)
	c.NewsHandler = newshandler.NewNewsHandler(newsSvc)
	c.MediaHandler = mediahandler.NewMediaHandler(mediaSvc)
	c.UserHandler = userhandler.NewUserHandler(userSvc)
	c.SiteContentHandler = sitecontenthandler.NewSiteContentHandler(siteSvc)

	logger.Info("container initialized", map[string]interface{}{"env": cfg.App.Environment})
	return c, nil
}

func (c *Container) Cleanup() {
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			logger.Error("redis close failed", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
