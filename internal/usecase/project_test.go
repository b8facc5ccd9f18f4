package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/scenescore/scenescore/internal/domain"
	"github.com/scenescore/scenescore/internal/usecase"
)

// ---- fakes shared by project, scene and search tests ----

type fakeProjectRepo struct {
	listByOwner        func(ctx context.Context, ownerID string) ([]*domain.Project, error)
	getByID            func(ctx context.Context, id, ownerID string) (*domain.Project, error)
	create             func(ctx context.Context, p *domain.Project) (*domain.Project, error)
	update             func(ctx context.Context, p *domain.Project) (*domain.Project, error)
	delete             func(ctx context.Context, id, ownerID string) error
	getPublishedBySlug func(ctx context.Context, slug string) (*domain.Project, error)
	slugExists         func(ctx context.Context, slug string) (bool, error)
}

func (r *fakeProjectRepo) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Project, error) {
	return r.listByOwner(ctx, ownerID)
}

func (r *fakeProjectRepo) GetByID(ctx context.Context, id, ownerID string) (*domain.Project, error) {
	return r.getByID(ctx, id, ownerID)
}

func (r *fakeProjectRepo) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	return r.create(ctx, p)
}

func (r *fakeProjectRepo) Update(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	return r.update(ctx, p)
}

func (r *fakeProjectRepo) Delete(ctx context.Context, id, ownerID string) error {
	return r.delete(ctx, id, ownerID)
}

func (r *fakeProjectRepo) GetPublishedBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	return r.getPublishedBySlug(ctx, slug)
}

func (r *fakeProjectRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	return r.slugExists(ctx, slug)
}

type fakeSceneRepo struct {
	listByProject func(ctx context.Context, projectID string) ([]*domain.Scene, error)
	create        func(ctx context.Context, s *domain.Scene) (*domain.Scene, error)
	update        func(ctx context.Context, s *domain.Scene, ownerID string) (*domain.Scene, error)
	delete        func(ctx context.Context, id, ownerID string) error
}

func (r *fakeSceneRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Scene, error) {
	return r.listByProject(ctx, projectID)
}

func (r *fakeSceneRepo) Create(ctx context.Context, s *domain.Scene) (*domain.Scene, error) {
	return r.create(ctx, s)
}

func (r *fakeSceneRepo) Update(ctx context.Context, s *domain.Scene, ownerID string) (*domain.Scene, error) {
	return r.update(ctx, s, ownerID)
}

func (r *fakeSceneRepo) Delete(ctx context.Context, id, ownerID string) error {
	return r.delete(ctx, id, ownerID)
}

// ---- Create ----

func TestCreateProject_SlugTaken_ReturnsConflict(t *testing.T) {
	created := false
	repo := &fakeProjectRepo{
		slugExists: func(_ context.Context, _ string) (bool, error) { return true, nil },
		create: func(_ context.Context, _ *domain.Project) (*domain.Project, error) {
			created = true
			return nil, nil
		},
	}

	u := usecase.NewProjectUsecase(repo, &fakeSceneRepo{})
	_, err := u.Create(context.Background(), "user-1", usecase.ProjectInput{Title: "X", Slug: "x"})
	if !errors.Is(err, domain.ErrSlugTaken) {
		t.Errorf("want ErrSlugTaken, got %v", err)
	}
	if created {
		t.Error("insert attempted despite taken slug")
	}
}

func TestCreateProject_RaceOnSlug_IndexViolationStillConflict(t *testing.T) {
	// The pre-check passes but the insert hits the unique index.
	repo := &fakeProjectRepo{
		slugExists: func(_ context.Context, _ string) (bool, error) { return false, nil },
		create: func(_ context.Context, _ *domain.Project) (*domain.Project, error) {
			return nil, domain.ErrSlugTaken
		},
	}

	u := usecase.NewProjectUsecase(repo, &fakeSceneRepo{})
	_, err := u.Create(context.Background(), "user-1", usecase.ProjectInput{Title: "X", Slug: "x"})
	if !errors.Is(err, domain.ErrSlugTaken) {
		t.Errorf("want ErrSlugTaken, got %v", err)
	}
}

func TestCreateProject_SetsOwner(t *testing.T) {
	var captured *domain.Project
	repo := &fakeProjectRepo{
		slugExists: func(_ context.Context, _ string) (bool, error) { return false, nil },
		create: func(_ context.Context, p *domain.Project) (*domain.Project, error) {
			captured = p
			return p, nil
		},
	}

	u := usecase.NewProjectUsecase(repo, &fakeSceneRepo{})
	_, err := u.Create(context.Background(), "user-1", usecase.ProjectInput{Title: "X", Slug: "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if captured.OwnerID != "user-1" {
		t.Errorf("OwnerID = %q, want user-1", captured.OwnerID)
	}
	if captured.IsPublished {
		t.Error("new project must start unpublished")
	}
}

// ---- Update ----

func TestUpdateProject_ForeignProject_ReturnsNotFound(t *testing.T) {
	repo := &fakeProjectRepo{
		update: func(_ context.Context, _ *domain.Project) (*domain.Project, error) {
			return nil, domain.ErrProjectNotFound
		},
	}

	u := usecase.NewProjectUsecase(repo, &fakeSceneRepo{})
	_, err := u.Update(context.Background(), "p-1", "attacker", usecase.ProjectInput{Title: "X", Slug: "x"})
	if !errors.Is(err, domain.ErrProjectNotFound) {
		t.Errorf("want ErrProjectNotFound, got %v", err)
	}
}

// ---- GetPublished ----

func TestGetPublished_Unpublished_ReturnsNotFound(t *testing.T) {
	repo := &fakeProjectRepo{
		getPublishedBySlug: func(_ context.Context, _ string) (*domain.Project, error) {
			return nil, domain.ErrProjectNotFound
		},
	}

	u := usecase.NewProjectUsecase(repo, &fakeSceneRepo{})
	_, _, err := u.GetPublished(context.Background(), "hidden")
	if !errors.Is(err, domain.ErrProjectNotFound) {
		t.Errorf("want ErrProjectNotFound, got %v", err)
	}
}

func TestGetPublished_ReturnsScenesFromRepo(t *testing.T) {
	scenes := []*domain.Scene{
		{ID: "s-1", SceneNumber: 1},
		{ID: "s-2", SceneNumber: 2},
	}
	repo := &fakeProjectRepo{
		getPublishedBySlug: func(_ context.Context, slug string) (*domain.Project, error) {
			return &domain.Project{ID: "p-1", Slug: slug, IsPublished: true}, nil
		},
	}
	sceneRepo := &fakeSceneRepo{
		listByProject: func(_ context.Context, projectID string) ([]*domain.Scene, error) {
			if projectID != "p-1" {
				t.Errorf("listed scenes for %q, want p-1", projectID)
			}
			return scenes, nil
		},
	}

	u := usecase.NewProjectUsecase(repo, sceneRepo)
	p, got, err := u.GetPublished(context.Background(), "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != "p-1" {
		t.Errorf("project ID = %q, want p-1", p.ID)
	}
	if len(got) != 2 || got[0].ID != "s-1" {
		t.Errorf("scenes = %v, want the repo's ordered list", got)
	}
}
