package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/resto-admin/services"
	"github.com/yeremiapane/resto-admin/utils"
)

// respondServiceError translates service-layer errors into the HTTP
// contract: validation -> 400, not found -> 404, conflict -> 409,
// anything else -> 500 without leaking internals.
func respondServiceError(c *gin.Context, message string, err error) {
	var validationErr *services.ValidationError
	var notFoundErr *services.NotFoundError
	var conflictErr *services.ConflictError

	switch {
	case errors.As(err, &validationErr):
		if validationErr.Field != "" {
			utils.RespondError(c, http.StatusBadRequest, message, gin.H{validationErr.Field: validationErr.Message})
			return
		}
		utils.RespondError(c, http.StatusBadRequest, message, validationErr.Message)
	case errors.As(err, &notFoundErr):
		utils.RespondError(c, http.StatusNotFound, message, notFoundErr.Message)
	case errors.As(err, &conflictErr):
		utils.RespondError(c, http.StatusConflict, message, conflictErr.Message)
	default:
		utils.ErrorLogger.Errorf("%s: %v", message, err)
		utils.RespondError(c, http.StatusInternalServerError, message, "internal server error")
	}
}

func respondInternalError(c *gin.Context, message string, err error) {
	utils.ErrorLogger.Errorf("%s: %v", message, err)
	utils.RespondError(c, http.StatusInternalServerError, message, "internal server error")
}
