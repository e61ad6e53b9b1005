package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"storefront/pkg/resp"
	"storefront/services"
)

// fail maps service error kinds onto the response envelope.
func fail(c *gin.Context, err error) {
	var ve *services.ValidationError
	var te *services.TransactionError
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, "not found")
	case errors.Is(err, services.ErrUnauthenticated):
		resp.Unauthorized(c, "authentication required")
	case errors.As(err, &ve):
		resp.Invalid(c, ve.Fields)
	case errors.As(err, &te):
		resp.ServerError(c, te)
	default:
		resp.ServerError(c, err)
	}
}
