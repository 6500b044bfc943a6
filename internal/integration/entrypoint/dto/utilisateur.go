package dto

import (
	"time"

	"github.com/friendsofmine/backend/internal/domain/entity"
)

// SaveUtilisateurRequest represents the request body for user creation and update.
type SaveUtilisateurRequest struct {
	Nom    string `json:"nom" binding:"required,min=1,max=100"`
	Prenom string `json:"prenom" binding:"required,min=1,max=100"`
	Email  string `json:"email" binding:"required,email,max=255"`
	Sexe   string `json:"sexe" binding:"required,oneof=M F"`
}

// Apply copies the request fields onto user.
func (r SaveUtilisateurRequest) Apply(user *entity.Utilisateur) {
	user.Nom = r.Nom
	user.Prenom = r.Prenom
	user.Email = r.Email
	user.Sexe = entity.Sexe(r.Sexe)
}

// UtilisateurResponse represents a single user in API responses.
type UtilisateurResponse struct {
	ID        uint      `json:"id"`
	Nom       string    `json:"nom"`
	Prenom    string    `json:"prenom"`
	Email     string    `json:"email"`
	Sexe      string    `json:"sexe"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UtilisateurListResponse represents the response for listing users.
type UtilisateurListResponse struct {
	Utilisateurs []UtilisateurResponse `json:"utilisateurs"`
}

// ToUtilisateurResponse converts a domain Utilisateur entity to a UtilisateurResponse DTO.
func ToUtilisateurResponse(user *entity.Utilisateur) UtilisateurResponse {
	return UtilisateurResponse{
		ID:        user.ID,
		Nom:       user.Nom,
		Prenom:    user.Prenom,
		Email:     user.Email,
		Sexe:      string(user.Sexe),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// ToUtilisateurListResponse converts a list of users to a UtilisateurListResponse.
func ToUtilisateurListResponse(users []*entity.Utilisateur) UtilisateurListResponse {
	responses := make([]UtilisateurResponse, len(users))
	for i, user := range users {
		responses[i] = ToUtilisateurResponse(user)
	}
	return UtilisateurListResponse{Utilisateurs: responses}
}
