package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/friendsofmine/backend/internal/application/adapter"
	"github.com/friendsofmine/backend/internal/domain/entity"
	domainerror "github.com/friendsofmine/backend/internal/domain/error"
	"github.com/friendsofmine/backend/internal/integration/persistence/model"
)

var activiteUpdatableColumns = []string{"titre", "descriptif", "responsable_id", "updated_at"}

// activiteRepository implements the adapter.ActiviteRepository interface.
type activiteRepository struct {
	db *gorm.DB
}

// NewActiviteRepository creates a new activity repository instance.
func NewActiviteRepository(db *gorm.DB) adapter.ActiviteRepository {
	return &activiteRepository{
		db: db,
	}
}

// Save inserts or updates an activity. The responsable row is never written here.
func (r *activiteRepository) Save(ctx context.Context, activite *entity.Activite) error {
	if activite == nil {
		return domainerror.ErrInvalidArgument
	}

	db := dbFromContext(ctx, r.db)
	activiteModel := model.ActiviteFromEntity(activite)
	now := time.Now().UTC()

	if !activite.IsPersisted() {
		activiteModel.CreatedAt = now
		activiteModel.UpdatedAt = now
		if result := db.Omit(clause.Associations).Create(activiteModel); result.Error != nil {
			return result.Error
		}
		activite.ID = activiteModel.ID
		activite.ResponsableID = activiteModel.ResponsableID
		activite.CreatedAt = activiteModel.CreatedAt
		activite.UpdatedAt = activiteModel.UpdatedAt
		return nil
	}

	activiteModel.UpdatedAt = now
	result := db.Model(&model.ActiviteModel{ID: activite.ID}).
		Select(activiteUpdatableColumns).
		Omit(clause.Associations).
		Updates(activiteModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrActiviteNotFound
	}
	activite.ResponsableID = activiteModel.ResponsableID
	activite.UpdatedAt = now
	return nil
}

// FindByID retrieves an activity with its responsable.
func (r *activiteRepository) FindByID(ctx context.Context, id uint) (*entity.Activite, error) {
	var activiteModel model.ActiviteModel
	result := dbFromContext(ctx, r.db).
		Preload("Responsable").
		Where("id = ?", id).
		First(&activiteModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrActiviteNotFound
		}
		return nil, result.Error
	}
	return activiteModel.ToEntity(), nil
}

// FindAllWithResponsable retrieves every activity with its responsable, ordered by title.
func (r *activiteRepository) FindAllWithResponsable(ctx context.Context) ([]*entity.Activite, error) {
	var activiteModels []model.ActiviteModel
	result := dbFromContext(ctx, r.db).
		Preload("Responsable").
		Order("titre ASC").
		Order("id ASC").
		Find(&activiteModels)
	if result.Error != nil {
		return nil, result.Error
	}

	activites := make([]*entity.Activite, len(activiteModels))
	for i := range activiteModels {
		activites[i] = activiteModels[i].ToEntity()
	}
	return activites, nil
}

// Count returns the number of persisted activities.
func (r *activiteRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := dbFromContext(ctx, r.db).Model(&model.ActiviteModel{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
