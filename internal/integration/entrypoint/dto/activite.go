package dto

import (
	"time"

	"github.com/friendsofmine/backend/internal/domain/entity"
)

// SaveActiviteRequest represents the request body for activity creation and update.
type SaveActiviteRequest struct {
	Titre         string `json:"titre" binding:"required,min=1,max=255"`
	Descriptif    string `json:"descriptif" binding:"max=2000"`
	ResponsableID uint   `json:"responsable_id" binding:"required"`
}

// Apply copies the request fields onto activite. The responsable is reloaded
// by the service from ResponsableID.
func (r SaveActiviteRequest) Apply(activite *entity.Activite) {
	activite.Titre = r.Titre
	activite.Descriptif = r.Descriptif
	if activite.ResponsableID != r.ResponsableID {
		activite.Responsable = nil
	}
	activite.ResponsableID = r.ResponsableID
}

// ActiviteResponse represents a single activity in API responses.
type ActiviteResponse struct {
	ID            uint                 `json:"id"`
	Titre         string               `json:"titre"`
	Descriptif    string               `json:"descriptif"`
	ResponsableID uint                 `json:"responsable_id"`
	Responsable   *UtilisateurResponse `json:"responsable,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// ActiviteListResponse represents the response for listing activities.
type ActiviteListResponse struct {
	Activites []ActiviteResponse `json:"activites"`
}

// ToActiviteResponse converts a domain Activite entity to an ActiviteResponse DTO.
func ToActiviteResponse(activite *entity.Activite) ActiviteResponse {
	response := ActiviteResponse{
		ID:            activite.ID,
		Titre:         activite.Titre,
		Descriptif:    activite.Descriptif,
		ResponsableID: activite.ResponsableID,
		CreatedAt:     activite.CreatedAt,
		UpdatedAt:     activite.UpdatedAt,
	}
	if activite.Responsable != nil {
		responsable := ToUtilisateurResponse(activite.Responsable)
		response.Responsable = &responsable
	}
	return response
}

// ToActiviteResponses converts a list of activities to ActiviteResponse DTOs.
func ToActiviteResponses(activites []*entity.Activite) []ActiviteResponse {
	responses := make([]ActiviteResponse, len(activites))
	for i, activite := range activites {
		responses[i] = ToActiviteResponse(activite)
	}
	return responses
}
