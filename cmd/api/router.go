package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ralhum-backend/internal/shared/middleware"
	"ralhum-backend/pkg/container"
)

func setupRouter(c *container.Container) *gin.Engine {
	if c.Config.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
		middleware.Actor(c.JWT),
	)

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": c.Config.App.Version,
		})
	})

	api := router.Group("/api/v1")

	auth := api.Group("/auth")
	{
		auth.POST("/login", c.UserHandler.Login)
		auth.GET("/me", c.UserHandler.Me)
	}

	users := api.Group("/users")
	users.Use(middleware.RequireStaff())
	{
		users.POST("", c.UserHandler.Create)
		users.GET("", c.UserHandler.GetAll)
		users.GET("/:id", c.UserHandler.GetByID)
		users.PUT("/:id", c.UserHandler.Update)
		users.PUT("/:id/role", c.UserHandler.UpdateRole)
		users.DELETE("/:id", c.UserHandler.Delete)
	}

	products := api.Group("/products")
	{
		products.GET("", c.ProductHandler.GetAll)
		products.GET("/:id", c.ProductHandler.GetByID)
		products.GET("/slug/:slug", c.ProductHandler.GetBySlug)
		products.GET("/export", c.ProductHandler.Export)
		products.POST("", c.ProductHandler.Create)
		products.PUT("/:id", c.ProductHandler.Update)
		products.PUT("/:id/stock", c.ProductHandler.UpdateStock)
		products.DELETE("/:id", c.ProductHandler.Delete)
	}

	categories := api.Group("/categories")
	{
		categories.GET("", c.CategoryHandler.GetAll)
		categories.GET("/:id", c.CategoryHandler.GetByID)
		categories.GET("/slug/:slug", c.CategoryHandler.GetBySlug)
		categories.POST("", c.CategoryHandler.Create)
		categories.PUT("/:id", c.CategoryHandler.Update)
		categories.DELETE("/:id", c.CategoryHandler.Delete)
	}

	brands := api.Group("/brands")
	{
		brands.GET("", c.BrandHandler.GetAll)
		brands.GET("/:id", c.BrandHandler.GetByID)
		brands.GET("/slug/:slug", c.BrandHandler.GetBySlug)
		brands.POST("", c.BrandHandler.Create)
		brands.PUT("/:id", c.BrandHandler.Update)
		brands.DELETE("/:id", c.BrandHandler.Delete)
	}

	newsGroup := api.Group("/news")
	{
		newsGroup.GET("", c.NewsHandler.GetAll)
		newsGroup.GET("/:id", c.NewsHandler.GetByID)
		newsGroup.GET("/slug/:slug", c.NewsHandler.GetBySlug)
		newsGroup.POST("", c.NewsHandler.Create)
		newsGroup.PUT("/:id", c.NewsHandler.Update)
		newsGroup.POST("/:id/publish", c.NewsHandler.Publish)
		newsGroup.POST("/:id/archive", c.NewsHandler.Archive)
		newsGroup.DELETE("/:id", c.NewsHandler.Delete)
	}

	mediaGroup := api.Group("/media")
	{
		mediaGroup.GET("", c.MediaHandler.GetAll)
		mediaGroup.GET("/:id", c.MediaHandler.GetByID)
		mediaGroup.POST("", c.MediaHandler.Upload)
		mediaGroup.PUT("/:id", c.MediaHandler.Update)
		mediaGroup.DELETE("/:id", c.MediaHandler.Delete)
	}

	companyInfo := api.Group("/company-info")
	{
		companyInfo.GET("", c.SiteContentHandler.GetAllSections)
		companyInfo.GET("/:id", c.SiteContentHandler.GetSectionByID)
		companyInfo.GET("/slug/:slug", c.SiteContentHandler.GetSectionBySlug)
		companyInfo.POST("", c.SiteContentHandler.CreateSection)
		companyInfo.PUT("/:id", c.SiteContentHandler.UpdateSection)
		companyInfo.DELETE("/:id", c.SiteContentHandler.DeleteSection)
	}

	homepage := api.Group("/homepage-content")
	{
		homepage.GET("", c.SiteContentHandler.GetHomepage)
		homepage.PUT("", c.SiteContentHandler.SaveHomepage)
	}

	return router
}
