// Package utilisateur contains the user persistence use cases.
package utilisateur

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/friendsofmine/backend/internal/application/adapter"
	"github.com/friendsofmine/backend/internal/domain/entity"
	domainerror "github.com/friendsofmine/backend/internal/domain/error"
)

// Service handles saving, fetching and counting users.
type Service struct {
	utilisateurRepo adapter.UtilisateurRepository
	transactor      adapter.Transactor
	activiteCache   adapter.ActiviteCache
}

// NewService creates a new user Service instance.
func NewService(
	utilisateurRepo adapter.UtilisateurRepository,
	transactor adapter.Transactor,
	activiteCache adapter.ActiviteCache,
) *Service {
	return &Service{
		utilisateurRepo: utilisateurRepo,
		transactor:      transactor,
		activiteCache:   activiteCache,
	}
}

// SaveUtilisateur persists a new user, assigning its ID, or updates the stored
// user with the same ID. A nil user is rejected with ErrInvalidArgument.
func (s *Service) SaveUtilisateur(ctx context.Context, user *entity.Utilisateur) error {
	if user == nil {
		return domainerror.NewFriendsError(
			domainerror.ErrCodeInvalidArgument,
			"utilisateur must be provided",
			domainerror.ErrInvalidArgument,
		)
	}

	id, createdAt, updatedAt := user.ID, user.CreatedAt, user.UpdatedAt
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.utilisateurRepo.Save(ctx, user)
	})
	if err != nil {
		// Nothing was committed, so the user must not look persisted.
		user.ID, user.CreatedAt, user.UpdatedAt = id, createdAt, updatedAt

		if errors.Is(err, domainerror.ErrUtilisateurNotFound) {
			return domainerror.NewFriendsError(
				domainerror.ErrCodeUtilisateurNotFound,
				fmt.Sprintf("utilisateur %d does not exist", user.ID),
				err,
			)
		}
		return fmt.Errorf("failed to save utilisateur: %w", err)
	}

	// Responsables are embedded in the cached activity listing.
	if err := s.activiteCache.Invalidate(ctx); err != nil {
		slog.Warn("Failed to invalidate activites cache", "error", err, "utilisateur_id", user.ID)
	}
	return nil
}

// FindUtilisateurByID returns the user with the given ID, or nil without error
// when no user matches.
func (s *Service) FindUtilisateurByID(ctx context.Context, id uint) (*entity.Utilisateur, error) {
	user, err := s.utilisateurRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrUtilisateurNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find utilisateur: %w", err)
	}
	return user, nil
}

// FindAllUtilisateurs returns every user ordered by ID.
func (s *Service) FindAllUtilisateurs(ctx context.Context) ([]*entity.Utilisateur, error) {
	users, err := s.utilisateurRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list utilisateurs: %w", err)
	}
	return users, nil
}

// CountUtilisateur returns the number of persisted users.
func (s *Service) CountUtilisateur(ctx context.Context) (int64, error) {
	count, err := s.utilisateurRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count utilisateurs: %w", err)
	}
	return count, nil
}
