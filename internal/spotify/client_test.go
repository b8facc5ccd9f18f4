package spotify_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/scenescore/scenescore/internal/spotify"
)

const searchBody = `{
  "tracks": {
    "items": [
      {
        "id": "track-1",
        "name": "Main Theme",
        "artists": [{"name": "Composer One"}, {"name": "Composer Two"}],
        "album": {
          "name": "Original Score",
          "images": [{"url": "https://img.example/large"}, {"url": "https://img.example/small"}]
        },
        "external_urls": {"spotify": "https://open.spotify.com/track/track-1"}
      },
      {
        "id": "track-2",
        "name": "End Credits",
        "artists": [{"name": "Composer One"}],
        "album": {"name": "Original Score", "images": []},
        "external_urls": {"spotify": "https://open.spotify.com/track/track-2"}
      }
    ]
  }
}`

// newProvider fakes both Spotify endpoints: the accounts token endpoint
// and the API search endpoint, on one test server.
func newProvider(t *testing.T, tokenCalls *atomic.Int64, searchStatus int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/token", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("token request method = %s, want POST", r.Method)
		}
		tokenCalls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"test-token","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/v1/search", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q, want issued bearer token", got)
		}
		if searchStatus != http.StatusOK {
			w.WriteHeader(searchStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(searchBody))
	})
	return httptest.NewServer(mux)
}

func newClient(srv *httptest.Server) *spotify.Client {
	return spotify.NewClient(5*time.Second,
		spotify.WithBaseURLs(srv.URL+"/api/token", srv.URL+"/v1"))
}

func TestSearchTracks_NormalizesResults(t *testing.T) {
	var tokenCalls atomic.Int64
	srv := newProvider(t, &tokenCalls, http.StatusOK)
	defer srv.Close()

	results, err := newClient(srv).SearchTracks(context.Background(), "cid", "secret", "theme", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}

	first := results[0]
	if first.ID != "track-1" || first.Name != "Main Theme" {
		t.Errorf("first = %+v", first)
	}
	if first.Artist != "Composer One, Composer Two" {
		t.Errorf("artist = %q, want joined names", first.Artist)
	}
	if first.AlbumArt == nil || *first.AlbumArt != "https://img.example/large" {
		t.Errorf("albumArt = %v, want first album image", first.AlbumArt)
	}
	if first.SpotifyURL != "https://open.spotify.com/track/track-1" {
		t.Errorf("spotifyUrl = %q", first.SpotifyURL)
	}

	if results[1].AlbumArt != nil {
		t.Errorf("albumArt = %v, want nil when album has no images", results[1].AlbumArt)
	}
}

func TestSearchTracks_FreshHandshakePerCall(t *testing.T) {
	var tokenCalls atomic.Int64
	srv := newProvider(t, &tokenCalls, http.StatusOK)
	defer srv.Close()

	c := newClient(srv)
	for range 2 {
		if _, err := c.SearchTracks(context.Background(), "cid", "secret", "theme", 10); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := tokenCalls.Load(); got != 2 {
		t.Errorf("token endpoint calls = %d, want one per search", got)
	}
}

func TestSearchTracks_UpstreamNon200_ReturnsError(t *testing.T) {
	var tokenCalls atomic.Int64
	srv := newProvider(t, &tokenCalls, http.StatusTooManyRequests)
	defer srv.Close()

	_, err := newClient(srv).SearchTracks(context.Background(), "cid", "secret", "theme", 10)
	if err == nil {
		t.Fatal("want error on non-200 search response")
	}
}

func TestSearchTracks_BadCredentials_ReturnsError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/token", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid_client"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	_, err := newClient(srv).SearchTracks(context.Background(), "bad", "bad", "theme", 10)
	if err == nil {
		t.Fatal("want error when the token exchange is rejected")
	}
}

func TestSearchTracks_RequestCarriesQueryAndLimit(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/token", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"test-token","token_type":"Bearer","expires_in":3600}`))
	})
	var gotQuery, gotType, gotLimit string
	mux.HandleFunc("/v1/search", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery, gotType, gotLimit = q.Get("q"), q.Get("type"), q.Get("limit")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"tracks":{"items":[]}}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	results, err := newClient(srv).SearchTracks(context.Background(), "cid", "secret", "main theme", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("len(results) = %d, want 0", len(results))
	}
	if gotQuery != "main theme" || gotType != "track" || gotLimit != "10" {
		t.Errorf("query params = %q/%q/%q, want main theme/track/10", gotQuery, gotType, gotLimit)
	}
}
