package activite

import (
	"time"

	"github.com/friendsofmine/backend/internal/domain/entity"
)

// activiteSnapshot holds what a save may assign to an activity and its
// responsable, so a rolled back save leaves both as they were.
type activiteSnapshot struct {
	activite      *entity.Activite
	id            uint
	createdAt     time.Time
	updatedAt     time.Time
	responsableID uint
	responsable   *entity.Utilisateur

	responsableState *entity.Utilisateur
}

func snapshotActivite(a *entity.Activite) activiteSnapshot {
	s := activiteSnapshot{
		activite:      a,
		id:            a.ID,
		createdAt:     a.CreatedAt,
		updatedAt:     a.UpdatedAt,
		responsableID: a.ResponsableID,
		responsable:   a.Responsable,
	}
	if a.Responsable != nil {
		state := *a.Responsable
		s.responsableState = &state
	}
	return s
}

func (s activiteSnapshot) restore() {
	s.activite.ID = s.id
	s.activite.CreatedAt = s.createdAt
	s.activite.UpdatedAt = s.updatedAt
	s.activite.ResponsableID = s.responsableID
	s.activite.Responsable = s.responsable

	if s.responsable != nil {
		s.responsable.ID = s.responsableState.ID
		s.responsable.CreatedAt = s.responsableState.CreatedAt
		s.responsable.UpdatedAt = s.responsableState.UpdatedAt
	}
}
