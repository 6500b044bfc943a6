package utilisateur

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/friendsofmine/backend/internal/application/adapter"
	"github.com/friendsofmine/backend/internal/domain/entity"
	domainerror "github.com/friendsofmine/backend/internal/domain/error"
	"github.com/friendsofmine/backend/internal/integration/cache"
	"github.com/friendsofmine/backend/internal/integration/persistence"
	"github.com/friendsofmine/backend/internal/integration/persistence/persistencetest"
)

func newTestService(t *testing.T) (*Service, context.Context) {
	t.Helper()
	gormDB := persistencetest.NewDB(t)
	service := NewService(
		persistence.NewUtilisateurRepository(gormDB),
		persistence.NewTransactor(gormDB),
		cache.NewNoopActiviteCache(),
	)
	return service, persistencetest.TxContext(t, gormDB)
}

func newUtil() *entity.Utilisateur {
	return entity.NewUtilisateur("nom", "prenom", "toto@toto.fr", entity.SexeFeminin)
}

func TestSavedUtilisateurHasID(t *testing.T) {
	service, ctx := newTestService(t)
	util := newUtil()
	require.Zero(t, util.ID)

	require.NoError(t, service.SaveUtilisateur(ctx, util))

	assert.NotZero(t, util.ID)
}

func TestSaveUtilisateurNil(t *testing.T) {
	service, ctx := newTestService(t)

	err := service.SaveUtilisateur(ctx, nil)

	assert.ErrorIs(t, err, domainerror.ErrInvalidArgument)
	var fe *domainerror.FriendsError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, domainerror.ErrCodeInvalidArgument, fe.Code)
}

func TestFetchedUtilisateurIsUnchanged(t *testing.T) {
	service, ctx := newTestService(t)
	util := newUtil()
	require.NoError(t, service.SaveUtilisateur(ctx, util))

	fetched, err := service.FindUtilisateurByID(ctx, util.ID)

	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, util.ID, fetched.ID)
	assert.Equal(t, util.Nom, fetched.Nom)
	assert.Equal(t, util.Prenom, fetched.Prenom)
	assert.Equal(t, util.Email, fetched.Email)
	assert.Equal(t, util.Sexe, fetched.Sexe)
}

func TestUpdatedUtilisateurIsUpdated(t *testing.T) {
	service, ctx := newTestService(t)
	util := newUtil()
	require.NoError(t, service.SaveUtilisateur(ctx, util))

	fetched, err := service.FindUtilisateurByID(ctx, util.ID)
	require.NoError(t, err)
	fetched.Email = "tyty@tyty.fr"
	require.NoError(t, service.SaveUtilisateur(ctx, fetched))

	fetchedUpdated, err := service.FindUtilisateurByID(ctx, util.ID)
	require.NoError(t, err)
	assert.Equal(t, "tyty@tyty.fr", fetchedUpdated.Email)
}

func TestSavedUtilisateurIsSaved(t *testing.T) {
	service, ctx := newTestService(t)
	before, err := service.CountUtilisateur(ctx)
	require.NoError(t, err)

	require.NoError(t, service.SaveUtilisateur(ctx, entity.NewUtilisateur("john", "john", "john@john.fr", entity.SexeMasculin)))

	after, err := service.CountUtilisateur(ctx)
	require.NoError(t, err)
	assert.Equal(t, before+1, after)
}

func TestUpdateDoesNotCreateANewEntry(t *testing.T) {
	service, ctx := newTestService(t)
	util := newUtil()
	require.NoError(t, service.SaveUtilisateur(ctx, util))
	count, err := service.CountUtilisateur(ctx)
	require.NoError(t, err)

	fetched, err := service.FindUtilisateurByID(ctx, util.ID)
	require.NoError(t, err)
	fetched.Email = "titi@titi.fr"
	require.NoError(t, service.SaveUtilisateur(ctx, fetched))

	after, err := service.CountUtilisateur(ctx)
	require.NoError(t, err)
	assert.Equal(t, count, after)
}

func TestFindUtilisateurWithUnexistingID(t *testing.T) {
	service, ctx := newTestService(t)

	fetched, err := service.FindUtilisateurByID(ctx, 1000)

	assert.NoError(t, err)
	assert.Nil(t, fetched)
}

func TestSaveUtilisateurWithUnknownID(t *testing.T) {
	service, ctx := newTestService(t)
	util := newUtil()
	util.ID = 1000

	err := service.SaveUtilisateur(ctx, util)

	assert.ErrorIs(t, err, domainerror.ErrUtilisateurNotFound)
	var fe *domainerror.FriendsError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, domainerror.ErrCodeUtilisateurNotFound, fe.Code)
}

func TestFindAllUtilisateurs(t *testing.T) {
	service, ctx := newTestService(t)
	require.NoError(t, service.SaveUtilisateur(ctx, newUtil()))
	require.NoError(t, service.SaveUtilisateur(ctx, entity.NewUtilisateur("john", "john", "john@john.fr", entity.SexeMasculin)))

	users, err := service.FindAllUtilisateurs(ctx)

	require.NoError(t, err)
	assert.Len(t, users, 2)
}

// stubRepository fails every call with err.
type stubRepository struct {
	err error
}

func (s stubRepository) Save(context.Context, *entity.Utilisateur) error { return s.err }
func (s stubRepository) FindByID(context.Context, uint) (*entity.Utilisateur, error) {
	return nil, s.err
}
func (s stubRepository) FindAll(context.Context) ([]*entity.Utilisateur, error) { return nil, s.err }
func (s stubRepository) Count(context.Context) (int64, error)                  { return 0, s.err }

// passthroughTransactor runs fn without a transaction.
type passthroughTransactor struct{}

func (passthroughTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// recordingCache counts invalidations.
type recordingCache struct {
	invalidations int
	err           error
}

func (c *recordingCache) GetAll(context.Context) ([]*entity.Activite, bool, error) {
	return nil, false, nil
}
func (c *recordingCache) Generation(context.Context) (int64, error) {
	return int64(c.invalidations), nil
}
func (c *recordingCache) SetAll(context.Context, int64, []*entity.Activite) error { return nil }
func (c *recordingCache) Invalidate(context.Context) error {
	c.invalidations++
	return c.err
}

func TestStoreErrorsSurface(t *testing.T) {
	storeErr := errors.New("connection refused")
	service := NewService(stubRepository{err: storeErr}, passthroughTransactor{}, &recordingCache{})
	ctx := context.Background()

	_, err := service.FindUtilisateurByID(ctx, 1)
	assert.ErrorIs(t, err, storeErr)

	_, err = service.CountUtilisateur(ctx)
	assert.ErrorIs(t, err, storeErr)

	_, err = service.FindAllUtilisateurs(ctx)
	assert.ErrorIs(t, err, storeErr)

	err = service.SaveUtilisateur(ctx, newUtil())
	assert.ErrorIs(t, err, storeErr)
}

func TestSaveUtilisateurInvalidatesActivitesCache(t *testing.T) {
	gormDB := persistencetest.NewDB(t)
	recorder := &recordingCache{err: errors.New("redis down")}
	service := NewService(
		persistence.NewUtilisateurRepository(gormDB),
		persistence.NewTransactor(gormDB),
		recorder,
	)

	require.NoError(t, service.SaveUtilisateur(context.Background(), newUtil()))

	assert.Equal(t, 1, recorder.invalidations)
}

// rejectingRepository stores the user, then fails so the transaction rolls back.
type rejectingRepository struct {
	adapter.UtilisateurRepository
	err error
}

func (r rejectingRepository) Save(ctx context.Context, user *entity.Utilisateur) error {
	if err := r.UtilisateurRepository.Save(ctx, user); err != nil {
		return err
	}
	return r.err
}

func TestSaveUtilisateurRollbackClearsAssignedID(t *testing.T) {
	gormDB := persistencetest.NewDB(t)
	users := persistence.NewUtilisateurRepository(gormDB)
	rejectErr := errors.New("constraint violated")
	recorder := &recordingCache{}
	service := NewService(
		rejectingRepository{UtilisateurRepository: users, err: rejectErr},
		persistence.NewTransactor(gormDB),
		recorder,
	)
	ctx := context.Background()
	util := newUtil()

	err := service.SaveUtilisateur(ctx, util)

	require.ErrorIs(t, err, rejectErr)
	assert.False(t, util.IsPersisted())
	assert.True(t, util.CreatedAt.IsZero())
	assert.True(t, util.UpdatedAt.IsZero())
	assert.Zero(t, recorder.invalidations)
	count, err := users.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	retry := NewService(users, persistence.NewTransactor(gormDB), recorder)
	require.NoError(t, retry.SaveUtilisateur(ctx, util))
	assert.True(t, util.IsPersisted())
}
