package domain

import (
	"errors"
	"time"
)

var (
	// ErrProjectNotFound covers both a missing row and a row owned by
	// someone else, so callers cannot probe for other users' projects.
	ErrProjectNotFound = errors.New("project not found")
	ErrSlugTaken       = errors.New("slug already taken")
)

type Project struct {
	ID          string
	OwnerID     string
	Title       string
	Slug        string
	Description string

	// Per-project Spotify app credentials, used by the search proxy.
	SpotifyClientID     *string
	SpotifyClientSecret *string

	IsPublished bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasSpotifyCredentials reports whether both halves of the credential
// pair are configured.
func (p *Project) HasSpotifyCredentials() bool {
	return p.SpotifyClientID != nil && *p.SpotifyClientID != "" &&
		p.SpotifyClientSecret != nil && *p.SpotifyClientSecret != ""
}
