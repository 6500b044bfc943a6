// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// Sexe is the gender code carried by an Utilisateur.
type Sexe string

const (
	SexeFeminin  Sexe = "F"
	SexeMasculin Sexe = "M"
)

// Utilisateur represents a member of Friends of Mine.
// ID is assigned by the store on first save; zero means not yet persisted.
type Utilisateur struct {
	ID        uint
	Nom       string
	Prenom    string
	Email     string
	Sexe      Sexe
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUtilisateur creates an unpersisted Utilisateur.
func NewUtilisateur(nom, prenom, email string, sexe Sexe) *Utilisateur {
	return &Utilisateur{
		Nom:    nom,
		Prenom: prenom,
		Email:  email,
		Sexe:   sexe,
	}
}

// IsPersisted reports whether the store has assigned an identifier.
func (u *Utilisateur) IsPersisted() bool {
	return u.ID != 0
}
