package repository

import (
	"context"

	"github.com/scenescore/scenescore/internal/domain"
)

type SceneRepository interface {
	// ListByProject returns the project's scenes ordered by ascending
	// scene number. Ownership of the project is checked by the caller.
	ListByProject(ctx context.Context, projectID string) ([]*domain.Scene, error)

	Create(ctx context.Context, s *domain.Scene) (*domain.Scene, error)

	// Update replaces all mutable fields of the scene, but only when
	// its parent project belongs to ownerID. ErrSceneNotFound otherwise.
	Update(ctx context.Context, s *domain.Scene, ownerID string) (*domain.Scene, error)

	// Delete removes the scene under the same ownership rule as Update.
	Delete(ctx context.Context, id, ownerID string) error
}
