package adapter

import (
	"context"

	"github.com/friendsofmine/backend/internal/domain/entity"
)

// ActiviteRepository defines the interface for activity persistence operations.
type ActiviteRepository interface {
	// Save inserts the activity when it has no identifier yet, updates it otherwise.
	Save(ctx context.Context, activite *entity.Activite) error

	// FindByID retrieves an activity with its responsable.
	FindByID(ctx context.Context, id uint) (*entity.Activite, error)

	// FindAllWithResponsable retrieves every activity with its responsable, ordered by title.
	FindAllWithResponsable(ctx context.Context) ([]*entity.Activite, error)

	// Count returns the number of persisted activities.
	Count(ctx context.Context) (int64, error)
}
