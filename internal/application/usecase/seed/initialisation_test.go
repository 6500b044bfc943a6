package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/friendsofmine/backend/internal/application/usecase/activite"
	"github.com/friendsofmine/backend/internal/application/usecase/utilisateur"
	"github.com/friendsofmine/backend/internal/domain/entity"
	"github.com/friendsofmine/backend/internal/integration/cache"
	"github.com/friendsofmine/backend/internal/integration/persistence"
	"github.com/friendsofmine/backend/internal/integration/persistence/persistencetest"
)

func newTestInitialisation(t *testing.T) (*InitialisationService, *utilisateur.Service, *activite.Service) {
	t.Helper()
	gormDB := persistencetest.NewDB(t)
	users := persistence.NewUtilisateurRepository(gormDB)
	transactor := persistence.NewTransactor(gormDB)
	noop := cache.NewNoopActiviteCache()

	utilisateurService := utilisateur.NewService(users, transactor, noop)
	activiteService := activite.NewService(persistence.NewActiviteRepository(gormDB), users, transactor, noop)

	return NewInitialisationService(utilisateurService, activiteService, transactor), utilisateurService, activiteService
}

func TestInitialiseSeedsEmptyStore(t *testing.T) {
	initialisation, utilisateurService, activiteService := newTestInitialisation(t)
	ctx := context.Background()

	output, err := initialisation.Initialise(ctx)

	require.NoError(t, err)
	assert.True(t, output.Seeded)
	assert.Len(t, output.Utilisateurs, 3)
	assert.Len(t, output.Activites, 3)

	activites, err := activiteService.FindAllActivites(ctx)
	require.NoError(t, err)
	require.Len(t, activites, 3)
	assert.Equal(t, []string{"Guitare", "Muscu", "Pingpong"},
		[]string{activites[0].Titre, activites[1].Titre, activites[2].Titre})
	assert.Equal(t, "Mary", activites[0].Responsable.Prenom)

	count, err := utilisateurService.CountUtilisateur(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestInitialiseIsIdempotent(t *testing.T) {
	initialisation, utilisateurService, _ := newTestInitialisation(t)
	ctx := context.Background()

	_, err := initialisation.Initialise(ctx)
	require.NoError(t, err)

	output, err := initialisation.Initialise(ctx)
	require.NoError(t, err)
	assert.False(t, output.Seeded)

	count, err := utilisateurService.CountUtilisateur(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestInitialiseSkipsPopulatedStore(t *testing.T) {
	initialisation, utilisateurService, activiteService := newTestInitialisation(t)
	ctx := context.Background()
	require.NoError(t, utilisateurService.SaveUtilisateur(ctx,
		entity.NewUtilisateur("john", "john", "john@john.fr", entity.SexeMasculin)))

	output, err := initialisation.Initialise(ctx)

	require.NoError(t, err)
	assert.False(t, output.Seeded)
	count, err := activiteService.CountActivite(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
