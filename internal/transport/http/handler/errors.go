package handler

const (
	errInternalServer     = "Internal server error"
	errInvalidCredentials = "Invalid credentials"
	errCurrentPassword    = "Current password is incorrect"
	errTokenInvalid       = "Token is invalid or expired"
	errProjectNotFound    = "Project not found"
	errSceneNotFound      = "Scene not found"
	errSlugTaken          = "A project with this slug already exists"
	errCredentialsNotSet  = "Spotify credentials not configured for this project"
	errSearchFailed       = "Spotify search failed"
)
