package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pressroom-backend/internal/shared/middleware"
	"pressroom-backend/pkg/container"
)

// SetupRouter builds the gin engine with the middleware chain and all
// API routes.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestLogger(),
		middleware.CORS(c.Config.CORS.AllowedOrigin),
		middleware.ErrorTranslator(),
	)

	health := func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/health", health)

	api := router.Group("/api")
	api.GET("/health", health)

	authors := api.Group("/authors")
	{
		authors.POST("", c.AuthorHandler.Register)
		authors.POST("/login", c.AuthorHandler.Login)
		authors.GET("/by-name/:name", c.AuthorHandler.GetByName)
		authors.GET("/:id", c.AuthorHandler.GetByID)
	}

	articles := api.Group("/articles")
	{
		createAuth := middleware.RequireAuth(c.Tokens)
		if c.Config.Articles.AllowAnonymousCreate {
			createAuth = middleware.OptionalAuth(c.Tokens)
		}

		articles.POST("", createAuth, c.ArticleHandler.Create)
		articles.GET("/published", c.ArticleHandler.ListPublished)
		articles.GET("/:id", c.ArticleHandler.GetByID)

		articles.PUT("/:id", middleware.RequireAuth(c.Tokens), c.ArticleHandler.Update)
		articles.PATCH("/:id/publish", middleware.RequireAuth(c.Tokens), c.ArticleHandler.Publish)
		articles.PATCH("/:id/unpublish", middleware.RequireAuth(c.Tokens), c.ArticleHandler.Unpublish)
	}

	return router
}
