package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/scenescore/scenescore/internal/domain"
)

const sceneColumns = `id, project_id, scene_number, scene_heading, scene_text,
	song_title, song_artist, spotify_track_id, spotify_album_art_url, created_at`

type SceneRepository struct {
	pool *pgxpool.Pool
}

func NewSceneRepository(pool *pgxpool.Pool) *SceneRepository {
	return &SceneRepository{pool: pool}
}

func (r *SceneRepository) ListByProject(ctx context.Context, projectID string) ([]*domain.Scene, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+sceneColumns+` FROM scenes
		WHERE project_id = $1
		ORDER BY scene_number ASC`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list scenes: %w", err)
	}
	defer rows.Close()

	var scenes []*domain.Scene
	for rows.Next() {
		s, err := scanScene(rows)
		if err != nil {
			return nil, err
		}
		scenes = append(scenes, s)
	}
	return scenes, rows.Err()
}

func (r *SceneRepository) Create(ctx context.Context, s *domain.Scene) (*domain.Scene, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO scenes (project_id, scene_number, scene_heading, scene_text,
			song_title, song_artist, spotify_track_id, spotify_album_art_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+sceneColumns,
		s.ProjectID, s.SceneNumber, s.SceneHeading, s.SceneText,
		s.SongTitle, s.SongArtist, s.SpotifyTrackID, s.SpotifyAlbumArtURL)
	return scanScene(row)
}

func (r *SceneRepository) Update(ctx context.Context, s *domain.Scene, ownerID string) (*domain.Scene, error) {
	// Ownership is enforced in the same statement via the join to
	// projects; a scene under someone else's project is simply not found.
	row := r.pool.QueryRow(ctx, `
		UPDATE scenes
		SET    scene_number          = $3,
		       scene_heading         = $4,
		       scene_text            = $5,
		       song_title            = $6,
		       song_artist           = $7,
		       spotify_track_id      = $8,
		       spotify_album_art_url = $9
		WHERE id = $1
		  AND project_id IN (SELECT id FROM projects WHERE user_id = $2)
		RETURNING `+sceneColumns,
		s.ID, ownerID, s.SceneNumber, s.SceneHeading, s.SceneText,
		s.SongTitle, s.SongArtist, s.SpotifyTrackID, s.SpotifyAlbumArtURL)
	return scanScene(row)
}

func (r *SceneRepository) Delete(ctx context.Context, id, ownerID string) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM scenes
		WHERE id = $1
		  AND project_id IN (SELECT id FROM projects WHERE user_id = $2)`,
		id, ownerID)
	if err != nil {
		if malformedID(err) {
			return domain.ErrSceneNotFound
		}
		return fmt.Errorf("delete scene: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSceneNotFound
	}
	return nil
}

func scanScene(row pgx.Row) (*domain.Scene, error) {
	var s domain.Scene
	err := row.Scan(&s.ID, &s.ProjectID, &s.SceneNumber, &s.SceneHeading, &s.SceneText,
		&s.SongTitle, &s.SongArtist, &s.SpotifyTrackID, &s.SpotifyAlbumArtURL, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || malformedID(err) {
			return nil, domain.ErrSceneNotFound
		}
		return nil, fmt.Errorf("scan scene: %w", err)
	}
	return &s, nil
}
