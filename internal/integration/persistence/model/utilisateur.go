// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/friendsofmine/backend/internal/domain/entity"
)

// UtilisateurModel represents the utilisateurs table in the database.
type UtilisateurModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Nom       string    `gorm:"type:varchar(100);not null"`
	Prenom    string    `gorm:"type:varchar(100);not null"`
	Email     string    `gorm:"type:varchar(255);not null;index"`
	Sexe      string    `gorm:"type:varchar(1);not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the UtilisateurModel.
func (UtilisateurModel) TableName() string {
	return "utilisateurs"
}

// ToEntity converts a UtilisateurModel to a domain Utilisateur entity.
func (m *UtilisateurModel) ToEntity() *entity.Utilisateur {
	return &entity.Utilisateur{
		ID:        m.ID,
		Nom:       m.Nom,
		Prenom:    m.Prenom,
		Email:     m.Email,
		Sexe:      entity.Sexe(m.Sexe),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// UtilisateurFromEntity creates a UtilisateurModel from a domain Utilisateur entity.
func UtilisateurFromEntity(user *entity.Utilisateur) *UtilisateurModel {
	return &UtilisateurModel{
		ID:        user.ID,
		Nom:       user.Nom,
		Prenom:    user.Prenom,
		Email:     user.Email,
		Sexe:      string(user.Sexe),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
