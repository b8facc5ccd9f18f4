package repository

import (
	"context"

	"github.com/scenescore/scenescore/internal/domain"
)

type ProjectRepository interface {
	// ListByOwner returns the owner's projects newest first. Credential
	// fields are not populated; listings never need them.
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Project, error)

	// GetByID returns the full row. ErrProjectNotFound when the id does
	// not exist or belongs to another owner.
	GetByID(ctx context.Context, id, ownerID string) (*domain.Project, error)

	// Create inserts the project. ErrSlugTaken when the slug is in use.
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)

	// Update replaces all mutable fields of the row matching
	// (p.ID, p.OwnerID). ErrSlugTaken when the new slug collides with
	// another project.
	Update(ctx context.Context, p *domain.Project) (*domain.Project, error)

	Delete(ctx context.Context, id, ownerID string) error

	// GetPublishedBySlug returns a published project regardless of
	// owner. Credential and owner fields are not populated.
	GetPublishedBySlug(ctx context.Context, slug string) (*domain.Project, error)

	SlugExists(ctx context.Context, slug string) (bool, error)
}
