// Package spotify implements the thin search client used by the
// per-project search proxy. Endpoints follow
// https://developer.spotify.com/documentation/web-api/reference/
package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/scenescore/scenescore/internal/domain"
)

const (
	defaultTokenURL = "https://accounts.spotify.com/api/token"
	defaultAPIURL   = "https://api.spotify.com/v1"
)

type image struct {
	URL string `json:"url"`
}

type artist struct {
	Name string `json:"name"`
}

type album struct {
	Name   string  `json:"name"`
	Images []image `json:"images"`
}

type track struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Artists      []artist `json:"artists"`
	Album        album    `json:"album"`
	ExternalURLs struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
}

type searchResponse struct {
	Tracks struct {
		Items []track `json:"items"`
	} `json:"tracks"`
}

// Client performs a fresh client-credentials handshake on every search.
// Provider tokens are short-lived and per-project, so nothing is cached.
type Client struct {
	tokenURL string
	apiURL   string
	http     *http.Client
	timeout  time.Duration
}

type Option func(*Client)

// WithBaseURLs overrides the provider endpoints. Used in tests.
func WithBaseURLs(tokenURL, apiURL string) Option {
	return func(c *Client) {
		c.tokenURL = tokenURL
		c.apiURL = apiURL
	}
}

// NewClient returns a client whose full token-plus-search exchange is
// bounded by timeout.
func NewClient(timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		tokenURL: defaultTokenURL,
		apiURL:   defaultAPIURL,
		http:     &http.Client{},
		timeout:  timeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchTracks exchanges the credential pair for an access token and
// runs a track search, returning up to limit normalized results.
func (c *Client) SearchTracks(ctx context.Context, clientID, clientSecret, query string, limit int) ([]domain.TrackResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cfg := clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     c.tokenURL,
	}

	// oauth2 picks its transport off the context.
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.http)
	hc := cfg.Client(ctx)

	q := url.Values{}
	q.Set("q", query)
	q.Set("type", "track")
	q.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}

	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("spotify search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("spotify search: status %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	results := make([]domain.TrackResult, 0, len(body.Tracks.Items))
	for _, t := range body.Tracks.Items {
		names := make([]string, 0, len(t.Artists))
		for _, a := range t.Artists {
			names = append(names, a.Name)
		}

		var art *string
		if len(t.Album.Images) > 0 {
			art = &t.Album.Images[0].URL
		}

		results = append(results, domain.TrackResult{
			ID:         t.ID,
			Name:       t.Name,
			Artist:     strings.Join(names, ", "),
			Album:      t.Album.Name,
			AlbumArt:   art,
			SpotifyURL: t.ExternalURLs.Spotify,
		})
	}
	return results, nil
}
