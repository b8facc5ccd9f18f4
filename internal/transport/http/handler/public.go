package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scenescore/scenescore/internal/domain"
)

type publishedGetter interface {
	GetPublished(ctx context.Context, slug string) (*domain.Project, []*domain.Scene, error)
}

type PublicHandler struct {
	projects publishedGetter
	logger   *slog.Logger
}

func NewPublicHandler(projects publishedGetter, logger *slog.Logger) *PublicHandler {
	return &PublicHandler{
		projects: projects,
		logger:   logger.With("component", "public_handler"),
	}
}

// publicProject deliberately omits the owner and the Spotify credential
// pair; these must never leave the admin surface.
type publicProject struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type publicScene struct {
	SceneNumber        int     `json:"scene_number"`
	SceneHeading       string  `json:"scene_heading"`
	SceneText          string  `json:"scene_text"`
	SongTitle          *string `json:"song_title"`
	SongArtist         *string `json:"song_artist"`
	SpotifyTrackID     *string `json:"spotify_track_id"`
	SpotifyAlbumArtURL *string `json:"spotify_album_art_url"`
}

type publicProjectResponse struct {
	Project publicProject `json:"project"`
	Scenes  []publicScene `json:"scenes"`
}

// GET /api/public/:slug
// Unpublished and unknown slugs are the same 404.
func (h *PublicHandler) GetBySlug(c *gin.Context) {
	p, scenes, err := h.projects.GetPublished(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errProjectNotFound})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "get published project", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	out := publicProjectResponse{
		Project: publicProject{
			ID:          p.ID,
			Title:       p.Title,
			Slug:        p.Slug,
			Description: p.Description,
		},
		Scenes: make([]publicScene, 0, len(scenes)),
	}
	for _, s := range scenes {
		out.Scenes = append(out.Scenes, publicScene{
			SceneNumber:        s.SceneNumber,
			SceneHeading:       s.SceneHeading,
			SceneText:          s.SceneText,
			SongTitle:          s.SongTitle,
			SongArtist:         s.SongArtist,
			SpotifyTrackID:     s.SpotifyTrackID,
			SpotifyAlbumArtURL: s.SpotifyAlbumArtURL,
		})
	}

	c.JSON(http.StatusOK, out)
}
