package controllers

import (
	"errors"
	"net/http"

	"autocare-backend/services"
	"autocare-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps the service-layer error taxonomy onto HTTP:
// ValidationError -> 400, ErrNotFound -> 404, anything else -> 500.
func respondServiceError(c *gin.Context, err error, notFoundMessage string) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		utils.RespondWithError(c, http.StatusBadRequest, ve.Message)
	case errors.Is(err, services.ErrNotFound):
		utils.RespondWithError(c, http.StatusNotFound, notFoundMessage)
	default:
		utils.RespondServerError(c, err)
	}
}
