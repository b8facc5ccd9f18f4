package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/scenescore/scenescore/internal/domain"
	"github.com/scenescore/scenescore/internal/repository"
)

// ownershipGuard is the single place that answers "may this owner touch
// this project". Scene and search operations both go through it before
// acting, so the check-then-act pattern is not duplicated per call site.
type ownershipGuard struct {
	projects repository.ProjectRepository
}

// requireProject returns the project when it exists AND belongs to
// ownerID. Both failure modes collapse into ErrProjectNotFound so a
// caller cannot learn whether a foreign project exists.
func (g ownershipGuard) requireProject(ctx context.Context, projectID, ownerID string) (*domain.Project, error) {
	p, err := g.projects.GetByID(ctx, projectID, ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("resolve project: %w", err)
	}
	return p, nil
}
