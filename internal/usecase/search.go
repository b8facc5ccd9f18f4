package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/scenescore/scenescore/internal/domain"
	"github.com/scenescore/scenescore/internal/metrics"
	"github.com/scenescore/scenescore/internal/repository"
)

const searchLimit = 10

// trackSearcher is the subset of the spotify client the usecase needs.
type trackSearcher interface {
	SearchTracks(ctx context.Context, clientID, clientSecret, query string, limit int) ([]domain.TrackResult, error)
}

type SearchUsecase struct {
	guard    ownershipGuard
	searcher trackSearcher
	logger   *slog.Logger
}

func NewSearchUsecase(projects repository.ProjectRepository, searcher trackSearcher, logger *slog.Logger) *SearchUsecase {
	return &SearchUsecase{
		guard:    ownershipGuard{projects: projects},
		searcher: searcher,
		logger:   logger.With("component", "search_usecase"),
	}
}

// Search resolves the project, requires its credential pair, and proxies
// the query upstream. Each call performs a fresh provider handshake.
func (u *SearchUsecase) Search(ctx context.Context, query, projectID, ownerID string) ([]domain.TrackResult, error) {
	p, err := u.guard.requireProject(ctx, projectID, ownerID)
	if err != nil {
		return nil, err
	}

	if !p.HasSpotifyCredentials() {
		metrics.SearchRequestsTotal.WithLabelValues("missing_credentials").Inc()
		return nil, domain.ErrCredentialsMissing
	}

	start := time.Now()
	results, err := u.searcher.SearchTracks(ctx, *p.SpotifyClientID, *p.SpotifyClientSecret, query, searchLimit)
	metrics.SearchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SearchRequestsTotal.WithLabelValues("upstream_error").Inc()
		u.logger.ErrorContext(ctx, "spotify search", "project_id", projectID, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}

	metrics.SearchRequestsTotal.WithLabelValues("ok").Inc()
	return results, nil
}
