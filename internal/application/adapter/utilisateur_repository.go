// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/friendsofmine/backend/internal/domain/entity"
)

// UtilisateurRepository defines the interface for user persistence operations.
type UtilisateurRepository interface {
	// Save inserts the user when it has no identifier yet, updates it otherwise.
	// On insert the assigned identifier is written back into user.ID.
	Save(ctx context.Context, user *entity.Utilisateur) error

	// FindByID retrieves a user by its identifier.
	FindByID(ctx context.Context, id uint) (*entity.Utilisateur, error)

	// FindAll retrieves every user ordered by identifier.
	FindAll(ctx context.Context) ([]*entity.Utilisateur, error)

	// Count returns the number of persisted users.
	Count(ctx context.Context) (int64, error)
}
