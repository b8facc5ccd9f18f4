package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scenescore/scenescore/internal/domain"
)

type searchUsecaser interface {
	Search(ctx context.Context, query, projectID, ownerID string) ([]domain.TrackResult, error)
}

type SearchHandler struct {
	searchUsecase searchUsecaser
	logger        *slog.Logger
}

func NewSearchHandler(searchUsecase searchUsecaser, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{
		searchUsecase: searchUsecase,
		logger:        logger.With("component", "search_handler"),
	}
}

type searchRequest struct {
	Query     string `json:"query"     binding:"required"`
	ProjectID string `json:"projectId" binding:"required"`
}

// POST /api/spotify/search
func (h *SearchHandler) Search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ownerID := c.GetString("userID")
	tracks, err := h.searchUsecase.Search(c.Request.Context(), req.Query, req.ProjectID, ownerID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": errProjectNotFound})
		case errors.Is(err, domain.ErrCredentialsMissing):
			c.JSON(http.StatusBadRequest, gin.H{"error": errCredentialsNotSet})
		case errors.Is(err, domain.ErrUpstream):
			c.JSON(http.StatusInternalServerError, gin.H{"error": errSearchFailed})
		default:
			h.logger.ErrorContext(c.Request.Context(), "spotify search", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		}
		return
	}

	c.JSON(http.StatusOK, tracks)
}
