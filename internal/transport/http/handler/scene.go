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

type sceneUsecaser interface {
	List(ctx context.Context, projectID, ownerID string) ([]*domain.Scene, error)
	Create(ctx context.Context, projectID, ownerID string, input usecase.SceneInput) (*domain.Scene, error)
	Update(ctx context.Context, id, ownerID string, input usecase.SceneInput) (*domain.Scene, error)
	Delete(ctx context.Context, id, ownerID string) error
}

type SceneHandler struct {
	sceneUsecase sceneUsecaser
	logger       *slog.Logger
}

func NewSceneHandler(sceneUsecase sceneUsecaser, logger *slog.Logger) *SceneHandler {
	return &SceneHandler{
		sceneUsecase: sceneUsecase,
		logger:       logger.With("component", "scene_handler"),
	}
}

type sceneRequest struct {
	SceneNumber        int     `json:"scene_number"`
	SceneHeading       string  `json:"scene_heading"`
	SceneText          string  `json:"scene_text"`
	SongTitle          *string `json:"song_title"`
	SongArtist         *string `json:"song_artist"`
	SpotifyTrackID     *string `json:"spotify_track_id"`
	SpotifyAlbumArtURL *string `json:"spotify_album_art_url"`
}

func (r sceneRequest) toInput() usecase.SceneInput {
	return usecase.SceneInput{
		SceneNumber:        r.SceneNumber,
		SceneHeading:       r.SceneHeading,
		SceneText:          r.SceneText,
		SongTitle:          r.SongTitle,
		SongArtist:         r.SongArtist,
		SpotifyTrackID:     r.SpotifyTrackID,
		SpotifyAlbumArtURL: r.SpotifyAlbumArtURL,
	}
}

type sceneResponse struct {
	ID                 string    `json:"id"`
	ProjectID          string    `json:"project_id"`
	SceneNumber        int       `json:"scene_number"`
	SceneHeading       string    `json:"scene_heading"`
	SceneText          string    `json:"scene_text"`
	SongTitle          *string   `json:"song_title"`
	SongArtist         *string   `json:"song_artist"`
	SpotifyTrackID     *string   `json:"spotify_track_id"`
	SpotifyAlbumArtURL *string   `json:"spotify_album_art_url"`
	CreatedAt          time.Time `json:"created_at"`
}

func toSceneResponse(s *domain.Scene) sceneResponse {
	return sceneResponse{
		ID:                 s.ID,
		ProjectID:          s.ProjectID,
		SceneNumber:        s.SceneNumber,
		SceneHeading:       s.SceneHeading,
		SceneText:          s.SceneText,
		SongTitle:          s.SongTitle,
		SongArtist:         s.SongArtist,
		SpotifyTrackID:     s.SpotifyTrackID,
		SpotifyAlbumArtURL: s.SpotifyAlbumArtURL,
		CreatedAt:          s.CreatedAt,
	}
}

// GET /api/admin/projects/:id/scenes
func (h *SceneHandler) List(c *gin.Context) {
	ownerID := c.GetString("userID")

	scenes, err := h.sceneUsecase.List(c.Request.Context(), c.Param("id"), ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errProjectNotFound})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "list scenes", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	out := make([]sceneResponse, 0, len(scenes))
	for _, s := range scenes {
		out = append(out, toSceneResponse(s))
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/admin/projects/:id/scenes
func (h *SceneHandler) Create(c *gin.Context) {
	var req sceneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ownerID := c.GetString("userID")
	s, err := h.sceneUsecase.Create(c.Request.Context(), c.Param("id"), ownerID, req.toInput())
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errProjectNotFound})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "create scene", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, toSceneResponse(s))
}

// PUT /api/admin/scenes/:id — full replace of the mutable fields.
func (h *SceneHandler) Update(c *gin.Context) {
	var req sceneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ownerID := c.GetString("userID")
	s, err := h.sceneUsecase.Update(c.Request.Context(), c.Param("id"), ownerID, req.toInput())
	if err != nil {
		if errors.Is(err, domain.ErrSceneNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errSceneNotFound})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "update scene", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, toSceneResponse(s))
}

// DELETE /api/admin/scenes/:id
func (h *SceneHandler) Delete(c *gin.Context) {
	ownerID := c.GetString("userID")

	err := h.sceneUsecase.Delete(c.Request.Context(), c.Param("id"), ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrSceneNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errSceneNotFound})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "delete scene", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Scene deleted successfully"})
}
