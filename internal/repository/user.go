package repository

import (
	"context"
	"time"

	"github.com/scenescore/scenescore/internal/domain"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error

	CreateResetToken(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error
	// ClaimResetToken marks the token used and returns it, atomically.
	// Fails for unknown, expired and already-claimed tokens alike.
	ClaimResetToken(ctx context.Context, tokenHash string) (*domain.ResetToken, error)
	// PurgeResetTokens deletes expired and used tokens, returning the
	// number of rows removed.
	PurgeResetTokens(ctx context.Context) (int, error)
}
