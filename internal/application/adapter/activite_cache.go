package adapter

import (
	"context"

	"github.com/friendsofmine/backend/internal/domain/entity"
)

// ActiviteCache stores the activity listing served by /activitesWithResponsable.
type ActiviteCache interface {
	// GetAll returns the cached listing and whether it was present.
	GetAll(ctx context.Context) ([]*entity.Activite, bool, error)

	// Generation returns the current invalidation counter. Read it before
	// loading the listing from the store and hand it to SetAll.
	Generation(ctx context.Context) (int64, error)

	// SetAll replaces the cached listing unless an invalidation happened
	// since generation was read, in which case the listing is dropped.
	SetAll(ctx context.Context, generation int64, activites []*entity.Activite) error

	// Invalidate drops the cached listing and bumps the generation.
	Invalidate(ctx context.Context) error
}
