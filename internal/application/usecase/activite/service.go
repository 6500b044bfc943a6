// Package activite contains the activity use cases.
package activite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/friendsofmine/backend/internal/application/adapter"
	"github.com/friendsofmine/backend/internal/domain/entity"
	domainerror "github.com/friendsofmine/backend/internal/domain/error"
)

// Service handles saving, fetching, counting and listing activities.
type Service struct {
	activiteRepo    adapter.ActiviteRepository
	utilisateurRepo adapter.UtilisateurRepository
	transactor      adapter.Transactor
	cache           adapter.ActiviteCache
}

// NewService creates a new activity Service instance.
func NewService(
	activiteRepo adapter.ActiviteRepository,
	utilisateurRepo adapter.UtilisateurRepository,
	transactor adapter.Transactor,
	cache adapter.ActiviteCache,
) *Service {
	return &Service{
		activiteRepo:    activiteRepo,
		utilisateurRepo: utilisateurRepo,
		transactor:      transactor,
		cache:           cache,
	}
}

// SaveActivite persists a new activity or updates the stored one with the same ID.
// An unpersisted responsable is saved first, in the same transaction.
func (s *Service) SaveActivite(ctx context.Context, activite *entity.Activite) error {
	if activite == nil {
		return domainerror.NewFriendsError(
			domainerror.ErrCodeInvalidArgument,
			"activite must be provided",
			domainerror.ErrInvalidArgument,
		)
	}
	if activite.Responsable == nil && activite.ResponsableID == 0 {
		return domainerror.NewFriendsError(
			domainerror.ErrCodeResponsableRequired,
			"activite must have a responsable",
			domainerror.ErrResponsableRequired,
		)
	}

	snapshot := snapshotActivite(activite)
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.resolveResponsable(ctx, activite); err != nil {
			return err
		}
		return s.activiteRepo.Save(ctx, activite)
	})
	if err != nil {
		snapshot.restore()

		var fe *domainerror.FriendsError
		if errors.As(err, &fe) {
			return err
		}
		if errors.Is(err, domainerror.ErrActiviteNotFound) {
			return domainerror.NewFriendsError(
				domainerror.ErrCodeActiviteNotFound,
				fmt.Sprintf("activite %d does not exist", activite.ID),
				err,
			)
		}
		return fmt.Errorf("failed to save activite: %w", err)
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		slog.Warn("Failed to invalidate activites cache", "error", err, "activite_id", activite.ID)
	}
	return nil
}

// resolveResponsable makes sure the responsable is stored and loaded on activite.
func (s *Service) resolveResponsable(ctx context.Context, activite *entity.Activite) error {
	if r := activite.Responsable; r != nil && !r.IsPersisted() {
		if err := s.utilisateurRepo.Save(ctx, r); err != nil {
			return fmt.Errorf("failed to save responsable: %w", err)
		}
		activite.ResponsableID = r.ID
		return nil
	}

	id := activite.ResponsableID
	if activite.Responsable != nil {
		id = activite.Responsable.ID
	}

	responsable, err := s.utilisateurRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrUtilisateurNotFound) {
			return domainerror.NewFriendsError(
				domainerror.ErrCodeResponsableNotFound,
				fmt.Sprintf("responsable %d does not exist", id),
				domainerror.ErrResponsableNotFound,
			)
		}
		return fmt.Errorf("failed to load responsable: %w", err)
	}

	activite.Responsable = responsable
	activite.ResponsableID = responsable.ID
	return nil
}

// FindActiviteByID returns the activity with the given ID and its responsable,
// or nil without error when no activity matches.
func (s *Service) FindActiviteByID(ctx context.Context, id uint) (*entity.Activite, error) {
	activite, err := s.activiteRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrActiviteNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find activite: %w", err)
	}
	return activite, nil
}

// CountActivite returns the number of persisted activities.
func (s *Service) CountActivite(ctx context.Context) (int64, error) {
	count, err := s.activiteRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count activites: %w", err)
	}
	return count, nil
}

// FindAllActivites returns every activity with its responsable, ordered by title.
// The listing is served from the cache when present; cache failures fall back to the store.
func (s *Service) FindAllActivites(ctx context.Context) ([]*entity.Activite, error) {
	// The generation is read before the store so a save landing in between
	// keeps this listing out of the cache.
	generation, genErr := s.cache.Generation(ctx)
	if genErr != nil {
		slog.Warn("Failed to read activites cache generation", "error", genErr)
	} else {
		cached, found, err := s.cache.GetAll(ctx)
		if err != nil {
			slog.Warn("Failed to read activites cache", "error", err)
		} else if found {
			return cached, nil
		}
	}

	activites, err := s.activiteRepo.FindAllWithResponsable(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list activites: %w", err)
	}

	if genErr == nil {
		if err := s.cache.SetAll(ctx, generation, activites); err != nil {
			slog.Warn("Failed to populate activites cache", "error", err)
		}
	}
	return activites, nil
}
