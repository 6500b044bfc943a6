// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/friendsofmine/backend/internal/application/adapter"
	"github.com/friendsofmine/backend/internal/domain/entity"
	domainerror "github.com/friendsofmine/backend/internal/domain/error"
	"github.com/friendsofmine/backend/internal/integration/persistence/model"
)

// utilisateurUpdatableColumns are written on update; created_at is never touched.
var utilisateurUpdatableColumns = []string{"nom", "prenom", "email", "sexe", "updated_at"}

// utilisateurRepository implements the adapter.UtilisateurRepository interface.
type utilisateurRepository struct {
	db *gorm.DB
}

// NewUtilisateurRepository creates a new user repository instance.
func NewUtilisateurRepository(db *gorm.DB) adapter.UtilisateurRepository {
	return &utilisateurRepository{
		db: db,
	}
}

// Save inserts or updates a user and writes the stored state back into it.
func (r *utilisateurRepository) Save(ctx context.Context, user *entity.Utilisateur) error {
	if user == nil {
		return domainerror.ErrInvalidArgument
	}

	db := dbFromContext(ctx, r.db)
	userModel := model.UtilisateurFromEntity(user)
	now := time.Now().UTC()

	if !user.IsPersisted() {
		userModel.CreatedAt = now
		userModel.UpdatedAt = now
		if result := db.Create(userModel); result.Error != nil {
			return result.Error
		}
		user.ID = userModel.ID
		user.CreatedAt = userModel.CreatedAt
		user.UpdatedAt = userModel.UpdatedAt
		return nil
	}

	userModel.UpdatedAt = now
	result := db.Model(&model.UtilisateurModel{ID: user.ID}).
		Select(utilisateurUpdatableColumns).
		Updates(userModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrUtilisateurNotFound
	}
	user.UpdatedAt = now
	return nil
}

// FindByID retrieves a user by its identifier.
func (r *utilisateurRepository) FindByID(ctx context.Context, id uint) (*entity.Utilisateur, error) {
	var userModel model.UtilisateurModel
	result := dbFromContext(ctx, r.db).Where("id = ?", id).First(&userModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrUtilisateurNotFound
		}
		return nil, result.Error
	}
	return userModel.ToEntity(), nil
}

// FindAll retrieves every user ordered by identifier.
func (r *utilisateurRepository) FindAll(ctx context.Context) ([]*entity.Utilisateur, error) {
	var userModels []model.UtilisateurModel
	result := dbFromContext(ctx, r.db).Order("id ASC").Find(&userModels)
	if result.Error != nil {
		return nil, result.Error
	}

	users := make([]*entity.Utilisateur, len(userModels))
	for i := range userModels {
		users[i] = userModels[i].ToEntity()
	}
	return users, nil
}

// Count returns the number of persisted users.
func (r *utilisateurRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := dbFromContext(ctx, r.db).Model(&model.UtilisateurModel{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
