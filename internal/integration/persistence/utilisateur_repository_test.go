package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/friendsofmine/backend/internal/domain/entity"
	domainerror "github.com/friendsofmine/backend/internal/domain/error"
)

func TestUtilisateurRepositorySaveInsertsAndAssignsID(t *testing.T) {
	repo := NewUtilisateurRepository(newTestDB(t))
	ctx := context.Background()
	user := entity.NewUtilisateur("nom", "prenom", "toto@toto.fr", entity.SexeFeminin)

	require.NoError(t, repo.Save(ctx, user))

	assert.NotZero(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUtilisateurRepositorySaveNil(t *testing.T) {
	repo := NewUtilisateurRepository(newTestDB(t))

	err := repo.Save(context.Background(), nil)

	assert.ErrorIs(t, err, domainerror.ErrInvalidArgument)
}

func TestUtilisateurRepositorySaveUpdatesExisting(t *testing.T) {
	repo := NewUtilisateurRepository(newTestDB(t))
	ctx := context.Background()
	user := entity.NewUtilisateur("nom", "prenom", "toto@toto.fr", entity.SexeFeminin)
	require.NoError(t, repo.Save(ctx, user))

	fetched, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	fetched.Email = "tyty@tyty.fr"
	require.NoError(t, repo.Save(ctx, fetched))

	updated, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "tyty@tyty.fr", updated.Email)
	assert.Equal(t, "nom", updated.Nom)
	assert.Equal(t, user.CreatedAt.Unix(), updated.CreatedAt.Unix())

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUtilisateurRepositorySaveUnknownID(t *testing.T) {
	repo := NewUtilisateurRepository(newTestDB(t))
	user := entity.NewUtilisateur("nom", "prenom", "toto@toto.fr", entity.SexeMasculin)
	user.ID = 1000

	err := repo.Save(context.Background(), user)

	assert.ErrorIs(t, err, domainerror.ErrUtilisateurNotFound)
}

func TestUtilisateurRepositoryFindByIDNotFound(t *testing.T) {
	repo := NewUtilisateurRepository(newTestDB(t))

	user, err := repo.FindByID(context.Background(), 1000)

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerror.ErrUtilisateurNotFound)
}

func TestUtilisateurRepositoryFindAll(t *testing.T) {
	repo := NewUtilisateurRepository(newTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, entity.NewUtilisateur("Dupont", "Mary", "mary@mary.com", entity.SexeFeminin)))
	require.NoError(t, repo.Save(ctx, entity.NewUtilisateur("Durand", "Thom", "thom@thom.com", entity.SexeMasculin)))

	users, err := repo.FindAll(ctx)

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Mary", users[0].Prenom)
	assert.Equal(t, "Thom", users[1].Prenom)
	assert.Less(t, users[0].ID, users[1].ID)
}
