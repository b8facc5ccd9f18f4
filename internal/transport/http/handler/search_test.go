package handler_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/scenescore/scenescore/internal/domain"
	"github.com/scenescore/scenescore/internal/transport/http/handler"
)

type fakeSearchUsecase struct {
	search func(ctx context.Context, query, projectID, ownerID string) ([]domain.TrackResult, error)
}

func (f *fakeSearchUsecase) Search(ctx context.Context, query, projectID, ownerID string) ([]domain.TrackResult, error) {
	return f.search(ctx, query, projectID, ownerID)
}

func newSearchEngine(uc *fakeSearchUsecase) *gin.Engine {
	h := handler.NewSearchHandler(uc, testLogger())

	r := gin.New()
	r.POST("/spotify/search", withUser("owner-1"), h.Search)
	return r
}

func TestSearch_MissingQuery_Returns400(t *testing.T) {
	w := postJSON(t, newSearchEngine(&fakeSearchUsecase{}), "/spotify/search", `{"projectId":"p-1"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSearch_ErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"foreign project", domain.ErrProjectNotFound, http.StatusNotFound, "Project not found"},
		{"no credentials", domain.ErrCredentialsMissing, http.StatusBadRequest, "Spotify credentials not configured for this project"},
		{"upstream failure", domain.ErrUpstream, http.StatusInternalServerError, "Spotify search failed"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := &fakeSearchUsecase{
				search: func(_ context.Context, _, _, _ string) ([]domain.TrackResult, error) {
					return nil, tc.err
				},
			}

			w := postJSON(t, newSearchEngine(uc), "/spotify/search", `{"query":"theme","projectId":"p-1"}`)

			if w.Code != tc.wantCode {
				t.Errorf("status = %d, want %d", w.Code, tc.wantCode)
			}
			if !strings.Contains(w.Body.String(), tc.wantMsg) {
				t.Errorf("body = %q, want %q", w.Body.String(), tc.wantMsg)
			}
		})
	}
}

func TestSearch_Success_ReturnsNormalizedTracks(t *testing.T) {
	art := "https://i.scdn.co/image/abc"
	uc := &fakeSearchUsecase{
		search: func(_ context.Context, query, projectID, ownerID string) ([]domain.TrackResult, error) {
			if query != "theme" || projectID != "p-1" || ownerID != "owner-1" {
				t.Errorf("args = %q/%q/%q", query, projectID, ownerID)
			}
			return []domain.TrackResult{{
				ID:         "track-1",
				Name:       "Main Theme",
				Artist:     "Composer One, Composer Two",
				Album:      "Original Score",
				AlbumArt:   &art,
				SpotifyURL: "https://open.spotify.com/track/track-1",
			}}, nil
		},
	}

	w := postJSON(t, newSearchEngine(uc), "/spotify/search", `{"query":"theme","projectId":"p-1"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{`"id":"track-1"`, `"artist":"Composer One, Composer Two"`, `"albumArt":"https://i.scdn.co/image/abc"`, `"spotifyUrl"`} {
		if !strings.Contains(body, want) {
			t.Errorf("body %q missing %q", body, want)
		}
	}
}
