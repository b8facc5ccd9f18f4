package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/scenescore/scenescore/internal/domain"
)

const projectColumns = `id, user_id, title, slug, description,
	spotify_client_id, spotify_client_secret, is_published,
	created_at, updated_at`

type ProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

func (r *ProjectRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Project, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, title, slug, description, is_published, created_at, updated_at
		FROM projects
		WHERE user_id = $1
		ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		var p domain.Project
		err := rows.Scan(&p.ID, &p.OwnerID, &p.Title, &p.Slug, &p.Description,
			&p.IsPublished, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, &p)
	}
	return projects, rows.Err()
}

func (r *ProjectRepository) GetByID(ctx context.Context, id, ownerID string) (*domain.Project, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1 AND user_id = $2`,
		id, ownerID)
	return scanProject(row)
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO projects (user_id, title, slug, description,
			spotify_client_id, spotify_client_secret)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+projectColumns,
		p.OwnerID, p.Title, p.Slug, p.Description,
		p.SpotifyClientID, p.SpotifyClientSecret)

	created, err := scanProject(row)
	if err != nil {
		return nil, mapSlugConflict(err)
	}
	return created, nil
}

func (r *ProjectRepository) Update(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE projects
		SET    title                 = $3,
		       slug                  = $4,
		       description           = $5,
		       spotify_client_id     = $6,
		       spotify_client_secret = $7,
		       is_published          = $8,
		       updated_at            = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING `+projectColumns,
		p.ID, p.OwnerID, p.Title, p.Slug, p.Description,
		p.SpotifyClientID, p.SpotifyClientSecret, p.IsPublished)

	updated, err := scanProject(row)
	if err != nil {
		return nil, mapSlugConflict(err)
	}
	return updated, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id, ownerID string) error {
	// Scenes go with the project via ON DELETE CASCADE.
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM projects WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		if malformedID(err) {
			return domain.ErrProjectNotFound
		}
		return fmt.Errorf("delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepository) GetPublishedBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, title, slug, description, created_at, updated_at
		FROM projects
		WHERE slug = $1 AND is_published = true`, slug)

	var p domain.Project
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("scan published project: %w", err)
	}
	p.IsPublished = true
	return &p, nil
}

func (r *ProjectRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM projects WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check slug: %w", err)
	}
	return exists, nil
}

// mapSlugConflict translates the unique-index violation on slug into
// the domain error. The index is the backstop for the usecase's
// pre-check, so concurrent creates cannot race past it.
func mapSlugConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return domain.ErrSlugTaken
	}
	return err
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(&p.ID, &p.OwnerID, &p.Title, &p.Slug, &p.Description,
		&p.SpotifyClientID, &p.SpotifyClientSecret, &p.IsPublished,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || malformedID(err) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("scan project: %w", err)
	}
	return &p, nil
}
