// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerror "github.com/friendsofmine/backend/internal/domain/error"
	"github.com/friendsofmine/backend/internal/integration/entrypoint/dto"
)

// statusByCode maps domain error codes to HTTP status codes.
var statusByCode = map[domainerror.ErrorCode]int{
	domainerror.ErrCodeInvalidArgument:     http.StatusBadRequest,
	domainerror.ErrCodeResponsableRequired: http.StatusBadRequest,
	domainerror.ErrCodeUtilisateurNotFound: http.StatusNotFound,
	domainerror.ErrCodeActiviteNotFound:    http.StatusNotFound,
	domainerror.ErrCodeResponsableNotFound: http.StatusUnprocessableEntity,
}

// handleError writes the response for an error returned by a service.
func handleError(ctx *gin.Context, err error, fallback string) {
	var fe *domainerror.FriendsError
	if errors.As(err, &fe) {
		status, ok := statusByCode[fe.Code]
		if !ok {
			status = http.StatusInternalServerError
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: fe.Message,
			Code:  string(fe.Code),
		})
		return
	}

	slog.Error(fallback, "error", err, "path", ctx.FullPath())
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: fallback,
		Code:  string(domainerror.ErrCodeInternal),
	})
}

// parseID reads the :id path parameter. It writes a 400 response and returns
// false when the parameter is not a positive integer.
func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid ID format",
			Code:  string(domainerror.ErrCodeInvalidID),
		})
		return 0, false
	}
	return uint(id), true
}

// invalidBody writes a 400 response for a request body that failed binding.
func invalidBody(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Invalid request body",
		Code:    string(domainerror.ErrCodeInvalidRequestBody),
		Details: err.Error(),
	})
}
