package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pressroom-backend/internal/domains/author"
	"pressroom-backend/internal/shared/apperr"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// Register handles POST /api/authors
func (h *AuthorHandler) Register(c *gin.Context) {
	var req author.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperr.Field("body", "Invalid JSON payload"))
		return
	}
	req.Normalize()

	resp, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /api/authors/login
func (h *AuthorHandler) Login(c *gin.Context) {
	var req author.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperr.Field("body", "Invalid JSON payload"))
		return
	}
	req.Normalize()

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetByID handles GET /api/authors/:id
func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		_ = c.Error(apperr.Field("id", "Invalid author id"))
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetByName handles GET /api/authors/by-name/:name (case-insensitive)
func (h *AuthorHandler) GetByName(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		_ = c.Error(apperr.Field("name", "name is required"))
		return
	}

	resp, err := h.service.GetByName(c.Request.Context(), name)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
