package domain

import "errors"

var (
	// ErrCredentialsMissing means the project has no Spotify credential
	// pair configured; no outbound call is made in that case.
	ErrCredentialsMissing = errors.New("spotify credentials not configured")

	// ErrUpstream covers any failure of the external provider, token
	// handshake and search alike.
	ErrUpstream = errors.New("upstream provider error")
)

// TrackResult is the normalized shape returned by the search proxy.
type TrackResult struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Artist     string  `json:"artist"`
	Album      string  `json:"album"`
	AlbumArt   *string `json:"albumArt"`
	SpotifyURL string  `json:"spotifyUrl"`
}
