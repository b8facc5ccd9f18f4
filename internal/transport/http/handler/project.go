package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/scenescore/scenescore/internal/domain"
	"github.com/scenescore/scenescore/internal/usecase"
)

type projectUsecaser interface {
	List(ctx context.Context, ownerID string) ([]*domain.Project, error)
	Get(ctx context.Context, id, ownerID string) (*domain.Project, error)
	Create(ctx context.Context, ownerID string, input usecase.ProjectInput) (*domain.Project, error)
	Update(ctx context.Context, id, ownerID string, input usecase.ProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id, ownerID string) error
}

type ProjectHandler struct {
	projectUsecase projectUsecaser
	logger         *slog.Logger
}

func NewProjectHandler(projectUsecase projectUsecaser, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectUsecase: projectUsecase,
		logger:         logger.With("component", "project_handler"),
	}
}

type projectListItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
}

type projectResponse struct {
	ID                  string    `json:"id"`
	UserID              string    `json:"user_id"`
	Title               string    `json:"title"`
	Slug                string    `json:"slug"`
	Description         string    `json:"description"`
	SpotifyClientID     *string   `json:"spotify_client_id"`
	SpotifyClientSecret *string   `json:"spotify_client_secret"`
	IsPublished         bool      `json:"is_published"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func toProjectResponse(p *domain.Project) projectResponse {
	return projectResponse{
		ID:                  p.ID,
		UserID:              p.OwnerID,
		Title:               p.Title,
		Slug:                p.Slug,
		Description:         p.Description,
		SpotifyClientID:     p.SpotifyClientID,
		SpotifyClientSecret: p.SpotifyClientSecret,
		IsPublished:         p.IsPublished,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

// GET /api/admin/projects
func (h *ProjectHandler) List(c *gin.Context) {
	ownerID := c.GetString("userID")

	projects, err := h.projectUsecase.List(c.Request.Context(), ownerID)
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "list projects", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	out := make([]projectListItem, 0, len(projects))
	for _, p := range projects {
		out = append(out, projectListItem{
			ID:          p.ID,
			Title:       p.Title,
			Slug:        p.Slug,
			Description: p.Description,
			IsPublished: p.IsPublished,
			CreatedAt:   p.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/admin/projects/:id
// The full row, credentials included — this is the owner's own project.
func (h *ProjectHandler) Get(c *gin.Context) {
	ownerID := c.GetString("userID")

	p, err := h.projectUsecase.Get(c.Request.Context(), c.Param("id"), ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errProjectNotFound})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "get project", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, toProjectResponse(p))
}

type createProjectRequest struct {
	Title               string  `json:"title" binding:"required"`
	Slug                string  `json:"slug"  binding:"required"`
	Description         string  `json:"description"`
	SpotifyClientID     *string `json:"spotify_client_id"`
	SpotifyClientSecret *string `json:"spotify_client_secret"`
}

// POST /api/admin/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ownerID := c.GetString("userID")
	p, err := h.projectUsecase.Create(c.Request.Context(), ownerID, usecase.ProjectInput{
		Title:               req.Title,
		Slug:                req.Slug,
		Description:         req.Description,
		SpotifyClientID:     req.SpotifyClientID,
		SpotifyClientSecret: req.SpotifyClientSecret,
	})
	if err != nil {
		if errors.Is(err, domain.ErrSlugTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": errSlugTaken})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "create project", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, toProjectResponse(p))
}

type updateProjectRequest struct {
	Title               string  `json:"title" binding:"required"`
	Slug                string  `json:"slug"  binding:"required"`
	Description         string  `json:"description"`
	SpotifyClientID     *string `json:"spotify_client_id"`
	SpotifyClientSecret *string `json:"spotify_client_secret"`
	IsPublished         bool    `json:"is_published"`
}

// PUT /api/admin/projects/:id — full replace of the mutable fields.
func (h *ProjectHandler) Update(c *gin.Context) {
	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ownerID := c.GetString("userID")
	p, err := h.projectUsecase.Update(c.Request.Context(), c.Param("id"), ownerID, usecase.ProjectInput{
		Title:               req.Title,
		Slug:                req.Slug,
		Description:         req.Description,
		SpotifyClientID:     req.SpotifyClientID,
		SpotifyClientSecret: req.SpotifyClientSecret,
		IsPublished:         req.IsPublished,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": errProjectNotFound})
		case errors.Is(err, domain.ErrSlugTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": errSlugTaken})
		default:
			h.logger.ErrorContext(c.Request.Context(), "update project", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		}
		return
	}

	c.JSON(http.StatusOK, toProjectResponse(p))
}

// DELETE /api/admin/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	ownerID := c.GetString("userID")

	err := h.projectUsecase.Delete(c.Request.Context(), c.Param("id"), ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errProjectNotFound})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "delete project", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
