package entity

import "time"

// Activite represents an activity run by a single responsible Utilisateur.
type Activite struct {
	ID            uint
	Titre         string
	Descriptif    string
	ResponsableID uint
	Responsable   *Utilisateur
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewActivite creates an unpersisted Activite owned by responsable.
func NewActivite(titre, descriptif string, responsable *Utilisateur) *Activite {
	a := &Activite{
		Titre:       titre,
		Descriptif:  descriptif,
		Responsable: responsable,
	}
	if responsable != nil {
		a.ResponsableID = responsable.ID
	}
	return a
}

// IsPersisted reports whether the store has assigned an identifier.
func (a *Activite) IsPersisted() bool {
	return a.ID != 0
}
