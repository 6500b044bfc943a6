// Package seed contains the demo data initialisation use case.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/friendsofmine/backend/internal/application/adapter"
	"github.com/friendsofmine/backend/internal/application/usecase/activite"
	"github.com/friendsofmine/backend/internal/application/usecase/utilisateur"
	"github.com/friendsofmine/backend/internal/domain/entity"
)

// InitialisationOutput reports what Initialise stored.
type InitialisationOutput struct {
	Seeded       bool
	Utilisateurs []*entity.Utilisateur
	Activites    []*entity.Activite
}

// InitialisationService seeds an empty store with demo users and activities.
type InitialisationService struct {
	utilisateurService *utilisateur.Service
	activiteService    *activite.Service
	transactor         adapter.Transactor
}

// NewInitialisationService creates a new InitialisationService instance.
func NewInitialisationService(
	utilisateurService *utilisateur.Service,
	activiteService *activite.Service,
	transactor adapter.Transactor,
) *InitialisationService {
	return &InitialisationService{
		utilisateurService: utilisateurService,
		activiteService:    activiteService,
		transactor:         transactor,
	}
}

// Initialise stores the demo data set in one transaction. It does nothing when
// any user or activity already exists.
func (s *InitialisationService) Initialise(ctx context.Context) (*InitialisationOutput, error) {
	output := &InitialisationOutput{}

	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		users, err := s.utilisateurService.CountUtilisateur(ctx)
		if err != nil {
			return err
		}
		activites, err := s.activiteService.CountActivite(ctx)
		if err != nil {
			return err
		}
		if users > 0 || activites > 0 {
			return nil
		}

		mary := entity.NewUtilisateur("Dupont", "Mary", "mary@dupont.fr", entity.SexeFeminin)
		thom := entity.NewUtilisateur("Durand", "Thom", "thom@durand.fr", entity.SexeMasculin)
		gaby := entity.NewUtilisateur("Martin", "Gaby", "gaby@martin.fr", entity.SexeFeminin)
		for _, u := range []*entity.Utilisateur{mary, thom, gaby} {
			if err := s.utilisateurService.SaveUtilisateur(ctx, u); err != nil {
				return fmt.Errorf("failed to seed utilisateur %s: %w", u.Email, err)
			}
			output.Utilisateurs = append(output.Utilisateurs, u)
		}

		for _, a := range []*entity.Activite{
			entity.NewActivite("Guitare", "Pratique de la guitare, tous niveaux", mary),
			entity.NewActivite("Muscu", "Séances de musculation en salle", thom),
			entity.NewActivite("Pingpong", "Tournoi de tennis de table du jeudi", mary),
		} {
			if err := s.activiteService.SaveActivite(ctx, a); err != nil {
				return fmt.Errorf("failed to seed activite %s: %w", a.Titre, err)
			}
			output.Activites = append(output.Activites, a)
		}

		output.Seeded = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if output.Seeded {
		slog.Info("Demo data initialised",
			"utilisateurs", len(output.Utilisateurs),
			"activites", len(output.Activites),
		)
	}
	return output, nil
}
