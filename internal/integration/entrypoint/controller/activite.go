package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/friendsofmine/backend/internal/application/usecase/activite"
	"github.com/friendsofmine/backend/internal/domain/entity"
	domainerror "github.com/friendsofmine/backend/internal/domain/error"
	"github.com/friendsofmine/backend/internal/integration/entrypoint/dto"
)

// ActiviteController handles activity endpoints.
type ActiviteController struct {
	service *activite.Service
}

// NewActiviteController creates a new activity controller instance.
func NewActiviteController(service *activite.Service) *ActiviteController {
	return &ActiviteController{
		service: service,
	}
}

// FindAllWithResponsable handles GET /activitesWithResponsable requests.
// The body is a bare JSON array of activities, each embedding its responsable.
func (c *ActiviteController) FindAllWithResponsable(ctx *gin.Context) {
	activites, err := c.service.FindAllActivites(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err, "Failed to retrieve activites")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToActiviteResponses(activites))
}

// List handles GET /activites requests.
func (c *ActiviteController) List(ctx *gin.Context) {
	activites, err := c.service.FindAllActivites(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err, "Failed to retrieve activites")
		return
	}

	ctx.JSON(http.StatusOK, dto.ActiviteListResponse{Activites: dto.ToActiviteResponses(activites)})
}

// Create handles POST /activites requests.
func (c *ActiviteController) Create(ctx *gin.Context) {
	var req dto.SaveActiviteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err)
		return
	}

	a := &entity.Activite{}
	req.Apply(a)

	if err := c.service.SaveActivite(ctx.Request.Context(), a); err != nil {
		handleError(ctx, err, "Failed to create activite")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToActiviteResponse(a))
}

// Get handles GET /activites/:id requests.
func (c *ActiviteController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	a, err := c.service.FindActiviteByID(ctx.Request.Context(), id)
	if err != nil {
		handleError(ctx, err, "Failed to retrieve activite")
		return
	}
	if a == nil {
		notFoundActivite(ctx)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToActiviteResponse(a))
}

// Update handles PUT /activites/:id requests.
func (c *ActiviteController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dto.SaveActiviteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err)
		return
	}

	a, err := c.service.FindActiviteByID(ctx.Request.Context(), id)
	if err != nil {
		handleError(ctx, err, "Failed to retrieve activite")
		return
	}
	if a == nil {
		notFoundActivite(ctx)
		return
	}

	req.Apply(a)
	if err := c.service.SaveActivite(ctx.Request.Context(), a); err != nil {
		handleError(ctx, err, "Failed to update activite")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToActiviteResponse(a))
}

// Count handles GET /activites/count requests.
func (c *ActiviteController) Count(ctx *gin.Context) {
	count, err := c.service.CountActivite(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err, "Failed to count activites")
		return
	}

	ctx.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

func notFoundActivite(ctx *gin.Context) {
	ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
		Error: "Activite not found",
		Code:  string(domainerror.ErrCodeActiviteNotFound),
	})
}
