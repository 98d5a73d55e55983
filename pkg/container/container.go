package container

import (
	"context"
	"fmt"

	"pressroom-backend/internal/config"
	articlehandler "pressroom-backend/internal/domains/article/handler"
	articlerepo "pressroom-backend/internal/domains/article/repository"
	articleservice "pressroom-backend/internal/domains/article/service"
	authorhandler "pressroom-backend/internal/domains/author/handler"
	authorrepo "pressroom-backend/internal/domains/author/repository"
	authorservice "pressroom-backend/internal/domains/author/service"
	"pressroom-backend/internal/infrastructure/database"
	"pressroom-backend/pkg/jwt"
	"pressroom-backend/pkg/logger"
)

// Container wires configuration, infrastructure and the domain layers
// together once at startup.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Tokens *jwt.Manager

	AuthorHandler  *authorhandler.AuthorHandler
	ArticleHandler *articlehandler.ArticleHandler
}

func New(ctx context.Context) (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	db := database.NewPostgresDB(&cfg.Database)
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	tokens := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.ExpiresIn)

	authorRepository := authorrepo.NewPostgresRepository(db.Pool)
	articleRepository := articlerepo.NewPostgresRepository(db.Pool)

	authorService := authorservice.NewAuthorService(authorRepository, tokens)
	articleService := articleservice.NewArticleService(articleRepository, authorRepository)

	return &Container{
		Config:         cfg,
		DB:             db,
		Tokens:         tokens,
		AuthorHandler:  authorhandler.NewAuthorHandler(authorService),
		ArticleHandler: articlehandler.NewArticleHandler(articleService),
	}, nil
}

// Cleanup releases infrastructure resources. Safe to call once at shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
		logger.Info("database connection closed", nil)
	}
}
