package model

import (
	"time"

	"github.com/friendsofmine/backend/internal/domain/entity"
)

// ActiviteModel represents the activites table in the database.
type ActiviteModel struct {
	ID            uint              `gorm:"primaryKey;autoIncrement"`
	Titre         string            `gorm:"type:varchar(255);not null;index"`
	Descriptif    string            `gorm:"type:text"`
	ResponsableID uint              `gorm:"not null;index"`
	Responsable   *UtilisateurModel `gorm:"foreignKey:ResponsableID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt     time.Time         `gorm:"not null"`
	UpdatedAt     time.Time         `gorm:"not null"`
}

// TableName returns the table name for the ActiviteModel.
func (ActiviteModel) TableName() string {
	return "activites"
}

// ToEntity converts an ActiviteModel to a domain Activite entity.
// The responsable is only set when it was preloaded.
func (m *ActiviteModel) ToEntity() *entity.Activite {
	a := &entity.Activite{
		ID:            m.ID,
		Titre:         m.Titre,
		Descriptif:    m.Descriptif,
		ResponsableID: m.ResponsableID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.Responsable != nil {
		a.Responsable = m.Responsable.ToEntity()
	}
	return a
}

// ActiviteFromEntity creates an ActiviteModel from a domain Activite entity.
// Associations are never written through the activity row.
func ActiviteFromEntity(activite *entity.Activite) *ActiviteModel {
	responsableID := activite.ResponsableID
	if activite.Responsable != nil && activite.Responsable.ID != 0 {
		responsableID = activite.Responsable.ID
	}

	return &ActiviteModel{
		ID:            activite.ID,
		Titre:         activite.Titre,
		Descriptif:    activite.Descriptif,
		ResponsableID: responsableID,
		CreatedAt:     activite.CreatedAt,
		UpdatedAt:     activite.UpdatedAt,
	}
}

// Models lists every model managed by auto-migration, in dependency order.
func Models() []any {
	return []any{
		&UtilisateurModel{},
		&ActiviteModel{},
	}
}
