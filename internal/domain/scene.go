package domain

import (
	"errors"
	"time"
)

var ErrSceneNotFound = errors.New("scene not found")

// Scene is one ordered beat of a screenplay, optionally paired with a
// song. SceneNumber drives display order; duplicates among siblings are
// allowed and left to the caller.
type Scene struct {
	ID        string
	ProjectID string

	SceneNumber  int
	SceneHeading string
	SceneText    string

	SongTitle          *string
	SongArtist         *string
	SpotifyTrackID     *string
	SpotifyAlbumArtURL *string

	CreatedAt time.Time
}
