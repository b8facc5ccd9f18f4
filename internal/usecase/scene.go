package usecase

import (
	"context"
	"fmt"

	"github.com/scenescore/scenescore/internal/domain"
	"github.com/scenescore/scenescore/internal/repository"
)

type SceneUsecase struct {
	scenes repository.SceneRepository
	guard  ownershipGuard
}

func NewSceneUsecase(scenes repository.SceneRepository, projects repository.ProjectRepository) *SceneUsecase {
	return &SceneUsecase{
		scenes: scenes,
		guard:  ownershipGuard{projects: projects},
	}
}

type SceneInput struct {
	SceneNumber        int
	SceneHeading       string
	SceneText          string
	SongTitle          *string
	SongArtist         *string
	SpotifyTrackID     *string
	SpotifyAlbumArtURL *string
}

func (u *SceneUsecase) List(ctx context.Context, projectID, ownerID string) ([]*domain.Scene, error) {
	if _, err := u.guard.requireProject(ctx, projectID, ownerID); err != nil {
		return nil, err
	}

	scenes, err := u.scenes.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list scenes: %w", err)
	}
	return scenes, nil
}

func (u *SceneUsecase) Create(ctx context.Context, projectID, ownerID string, input SceneInput) (*domain.Scene, error) {
	if _, err := u.guard.requireProject(ctx, projectID, ownerID); err != nil {
		return nil, err
	}

	s := &domain.Scene{
		ProjectID:          projectID,
		SceneNumber:        input.SceneNumber,
		SceneHeading:       input.SceneHeading,
		SceneText:          input.SceneText,
		SongTitle:          input.SongTitle,
		SongArtist:         input.SongArtist,
		SpotifyTrackID:     input.SpotifyTrackID,
		SpotifyAlbumArtURL: input.SpotifyAlbumArtURL,
	}
	return u.scenes.Create(ctx, s)
}

// Update relies on the repository's scene→project join for the
// ownership check, so resolve-then-write stays a single statement.
func (u *SceneUsecase) Update(ctx context.Context, id, ownerID string, input SceneInput) (*domain.Scene, error) {
	s := &domain.Scene{
		ID:                 id,
		SceneNumber:        input.SceneNumber,
		SceneHeading:       input.SceneHeading,
		SceneText:          input.SceneText,
		SongTitle:          input.SongTitle,
		SongArtist:         input.SongArtist,
		SpotifyTrackID:     input.SpotifyTrackID,
		SpotifyAlbumArtURL: input.SpotifyAlbumArtURL,
	}
	return u.scenes.Update(ctx, s, ownerID)
}

func (u *SceneUsecase) Delete(ctx context.Context, id, ownerID string) error {
	return u.scenes.Delete(ctx, id, ownerID)
}
