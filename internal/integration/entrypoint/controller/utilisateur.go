package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/friendsofmine/backend/internal/application/usecase/utilisateur"
	"github.com/friendsofmine/backend/internal/domain/entity"
	domainerror "github.com/friendsofmine/backend/internal/domain/error"
	"github.com/friendsofmine/backend/internal/integration/entrypoint/dto"
)

// UtilisateurController handles user endpoints.
type UtilisateurController struct {
	service *utilisateur.Service
}

// NewUtilisateurController creates a new user controller instance.
func NewUtilisateurController(service *utilisateur.Service) *UtilisateurController {
	return &UtilisateurController{
		service: service,
	}
}

// List handles GET /utilisateurs requests.
func (c *UtilisateurController) List(ctx *gin.Context) {
	users, err := c.service.FindAllUtilisateurs(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err, "Failed to retrieve utilisateurs")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUtilisateurListResponse(users))
}

// Create handles POST /utilisateurs requests.
func (c *UtilisateurController) Create(ctx *gin.Context) {
	var req dto.SaveUtilisateurRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err)
		return
	}

	user := &entity.Utilisateur{}
	req.Apply(user)

	if err := c.service.SaveUtilisateur(ctx.Request.Context(), user); err != nil {
		handleError(ctx, err, "Failed to create utilisateur")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToUtilisateurResponse(user))
}

// Get handles GET /utilisateurs/:id requests.
func (c *UtilisateurController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	user, err := c.service.FindUtilisateurByID(ctx.Request.Context(), id)
	if err != nil {
		handleError(ctx, err, "Failed to retrieve utilisateur")
		return
	}
	if user == nil {
		notFoundUtilisateur(ctx)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUtilisateurResponse(user))
}

// Update handles PUT /utilisateurs/:id requests.
func (c *UtilisateurController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dto.SaveUtilisateurRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err)
		return
	}

	user, err := c.service.FindUtilisateurByID(ctx.Request.Context(), id)
	if err != nil {
		handleError(ctx, err, "Failed to retrieve utilisateur")
		return
	}
	if user == nil {
		notFoundUtilisateur(ctx)
		return
	}

	req.Apply(user)
	if err := c.service.SaveUtilisateur(ctx.Request.Context(), user); err != nil {
		handleError(ctx, err, "Failed to update utilisateur")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUtilisateurResponse(user))
}

// Count handles GET /utilisateurs/count requests.
func (c *UtilisateurController) Count(ctx *gin.Context) {
	count, err := c.service.CountUtilisateur(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err, "Failed to count utilisateurs")
		return
	}

	ctx.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

func notFoundUtilisateur(ctx *gin.Context) {
	ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
		Error: "Utilisateur not found",
		Code:  string(domainerror.ErrCodeUtilisateurNotFound),
	})
}
