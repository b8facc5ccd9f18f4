package usecase

import (
	"context"
	"fmt"

	"github.com/scenescore/scenescore/internal/domain"
	"github.com/scenescore/scenescore/internal/repository"
)

type ProjectUsecase struct {
	projects repository.ProjectRepository
	scenes   repository.SceneRepository
}

func NewProjectUsecase(projects repository.ProjectRepository, scenes repository.SceneRepository) *ProjectUsecase {
	return &ProjectUsecase{projects: projects, scenes: scenes}
}

type ProjectInput struct {
	Title               string
	Slug                string
	Description         string
	SpotifyClientID     *string
	SpotifyClientSecret *string
	IsPublished         bool
}

func (u *ProjectUsecase) List(ctx context.Context, ownerID string) ([]*domain.Project, error) {
	projects, err := u.projects.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

func (u *ProjectUsecase) Get(ctx context.Context, id, ownerID string) (*domain.Project, error) {
	return u.projects.GetByID(ctx, id, ownerID)
}

func (u *ProjectUsecase) Create(ctx context.Context, ownerID string, input ProjectInput) (*domain.Project, error) {
	// Pre-check gives a friendly error; the unique index on slug is the
	// real guarantee when two creates race.
	taken, err := u.projects.SlugExists(ctx, input.Slug)
	if err != nil {
		return nil, fmt.Errorf("check slug: %w", err)
	}
	if taken {
		return nil, domain.ErrSlugTaken
	}

	p := &domain.Project{
		OwnerID:             ownerID,
		Title:               input.Title,
		Slug:                input.Slug,
		Description:         input.Description,
		SpotifyClientID:     input.SpotifyClientID,
		SpotifyClientSecret: input.SpotifyClientSecret,
	}
	return u.projects.Create(ctx, p)
}

// Update is full-replace over the mutable fields. Slug collisions with
// other rows surface as ErrSlugTaken via the unique index.
func (u *ProjectUsecase) Update(ctx context.Context, id, ownerID string, input ProjectInput) (*domain.Project, error) {
	p := &domain.Project{
		ID:                  id,
		OwnerID:             ownerID,
		Title:               input.Title,
		Slug:                input.Slug,
		Description:         input.Description,
		SpotifyClientID:     input.SpotifyClientID,
		SpotifyClientSecret: input.SpotifyClientSecret,
		IsPublished:         input.IsPublished,
	}
	return u.projects.Update(ctx, p)
}

func (u *ProjectUsecase) Delete(ctx context.Context, id, ownerID string) error {
	return u.projects.Delete(ctx, id, ownerID)
}

// GetPublished serves the public player: the project must be published,
// and only public fields plus ordered scenes come back.
func (u *ProjectUsecase) GetPublished(ctx context.Context, slug string) (*domain.Project, []*domain.Scene, error) {
	p, err := u.projects.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}

	scenes, err := u.scenes.ListByProject(ctx, p.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("list scenes: %w", err)
	}
	return p, scenes, nil
}
