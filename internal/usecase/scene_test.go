package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/scenescore/scenescore/internal/domain"
	"github.com/scenescore/scenescore/internal/usecase"
)

func ownedProjectRepo(t *testing.T, projectID, ownerID string) *fakeProjectRepo {
	t.Helper()
	return &fakeProjectRepo{
		getByID: func(_ context.Context, id, owner string) (*domain.Project, error) {
			if id == projectID && owner == ownerID {
				return &domain.Project{ID: id, OwnerID: owner}, nil
			}
			return nil, domain.ErrProjectNotFound
		},
	}
}

func TestListScenes_ForeignProject_ReturnsNotFound(t *testing.T) {
	listed := false
	scenes := &fakeSceneRepo{
		listByProject: func(_ context.Context, _ string) ([]*domain.Scene, error) {
			listed = true
			return nil, nil
		},
	}

	u := usecase.NewSceneUsecase(scenes, ownedProjectRepo(t, "p-1", "owner"))
	_, err := u.List(context.Background(), "p-1", "attacker")
	if !errors.Is(err, domain.ErrProjectNotFound) {
		t.Errorf("want ErrProjectNotFound, got %v", err)
	}
	if listed {
		t.Error("scene query ran despite failed ownership check")
	}
}

func TestListScenes_OwnedProject_PassesThrough(t *testing.T) {
	want := []*domain.Scene{{ID: "s-1", SceneNumber: 1}, {ID: "s-2", SceneNumber: 2}}
	scenes := &fakeSceneRepo{
		listByProject: func(_ context.Context, _ string) ([]*domain.Scene, error) {
			return want, nil
		},
	}

	u := usecase.NewSceneUsecase(scenes, ownedProjectRepo(t, "p-1", "owner"))
	got, err := u.List(context.Background(), "p-1", "owner")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "s-1" {
		t.Errorf("scenes = %v, want the repo's list", got)
	}
}

func TestCreateScene_ForeignProject_ReturnsNotFound(t *testing.T) {
	inserted := false
	scenes := &fakeSceneRepo{
		create: func(_ context.Context, _ *domain.Scene) (*domain.Scene, error) {
			inserted = true
			return nil, nil
		},
	}

	u := usecase.NewSceneUsecase(scenes, ownedProjectRepo(t, "p-1", "owner"))
	_, err := u.Create(context.Background(), "p-1", "attacker", usecase.SceneInput{SceneNumber: 1})
	if !errors.Is(err, domain.ErrProjectNotFound) {
		t.Errorf("want ErrProjectNotFound, got %v", err)
	}
	if inserted {
		t.Error("insert ran despite failed ownership check")
	}
}

func TestCreateScene_SetsParentProject(t *testing.T) {
	var captured *domain.Scene
	scenes := &fakeSceneRepo{
		create: func(_ context.Context, s *domain.Scene) (*domain.Scene, error) {
			captured = s
			return s, nil
		},
	}

	u := usecase.NewSceneUsecase(scenes, ownedProjectRepo(t, "p-1", "owner"))
	_, err := u.Create(context.Background(), "p-1", "owner", usecase.SceneInput{
		SceneNumber:  3,
		SceneHeading: "INT. KITCHEN — NIGHT",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if captured.ProjectID != "p-1" {
		t.Errorf("ProjectID = %q, want p-1", captured.ProjectID)
	}
	if captured.SceneNumber != 3 {
		t.Errorf("SceneNumber = %d, want 3", captured.SceneNumber)
	}
}

func TestUpdateScene_OwnershipEnforcedByRepo(t *testing.T) {
	scenes := &fakeSceneRepo{
		update: func(_ context.Context, _ *domain.Scene, ownerID string) (*domain.Scene, error) {
			if ownerID != "owner" {
				return nil, domain.ErrSceneNotFound
			}
			return &domain.Scene{ID: "s-1"}, nil
		},
	}
	u := usecase.NewSceneUsecase(scenes, &fakeProjectRepo{})

	if _, err := u.Update(context.Background(), "s-1", "attacker", usecase.SceneInput{}); !errors.Is(err, domain.ErrSceneNotFound) {
		t.Errorf("want ErrSceneNotFound for foreign owner, got %v", err)
	}
	if _, err := u.Update(context.Background(), "s-1", "owner", usecase.SceneInput{}); err != nil {
		t.Errorf("unexpected error for owner: %v", err)
	}
}
