package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pressroom-backend/internal/domains/article"
	"pressroom-backend/internal/shared/apperr"
	"pressroom-backend/internal/shared/middleware"
)

type ArticleHandler struct {
	service article.Service
}

func NewArticleHandler(svc article.Service) *ArticleHandler {
	return &ArticleHandler{service: svc}
}

// Create handles POST /api/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var req article.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperr.Field("body", "Invalid JSON payload"))
		return
	}
	req.Normalize()

	resp, err := h.service.Create(c.Request.Context(), req, middleware.AuthorID(c))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Update handles PUT /api/articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	var req article.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperr.Field("body", "Invalid JSON payload"))
		return
	}
	req.Normalize()

	authorID := middleware.AuthorID(c)
	if authorID == nil {
		_ = c.Error(apperr.Unauthorized("Missing or invalid Authorization header"))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req, *authorID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Publish handles PATCH /api/articles/:id/publish
func (h *ArticleHandler) Publish(c *gin.Context) {
	h.setStatus(c, h.service.Publish)
}

// Unpublish handles PATCH /api/articles/:id/unpublish
func (h *ArticleHandler) Unpublish(c *gin.Context) {
	h.setStatus(c, h.service.Unpublish)
}

// ListPublished handles GET /api/articles/published
func (h *ArticleHandler) ListPublished(c *gin.Context) {
	q, err := article.ParseListPublishedQuery(c.Request.URL.Query())
	if err != nil {
		_ = c.Error(err)
		return
	}

	resp, err := h.service.ListPublished(c.Request.Context(), *q)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetByID handles GET /api/articles/:id (any status)
func (h *ArticleHandler) GetByID(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

type statusFunc func(ctx context.Context, id uuid.UUID, authorID uuid.UUID) (*article.WithAuthor, error)

func (h *ArticleHandler) setStatus(c *gin.Context, op statusFunc) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	authorID := middleware.AuthorID(c)
	if authorID == nil {
		_ = c.Error(apperr.Unauthorized("Missing or invalid Authorization header"))
		return
	}

	resp, err := op(c.Request.Context(), id, *authorID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// articleID parses the :id path parameter; a malformed id is a validation
// failure, not a 404.
func articleID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		_ = c.Error(apperr.Field("id", "Invalid article id"))
		return uuid.Nil, false
	}
	return id, true
}
