package controllers

import (
	"errors"

	"github.com/supunpriyanath333/JAPURA-EATS-Food-Pre-Ordering-System-For-Japura-University/pkg/resp"
	"github.com/supunpriyanath333/JAPURA-EATS-Food-Pre-Ordering-System-For-Japura-University/services"

	"github.com/gin-gonic/gin"
)

// writeErr maps the service error taxonomy onto HTTP. Storage failures stay
// opaque to the client.
func writeErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrUnauthorized):
		resp.Unauthorized(c, "unauthorized")
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrConflict):
		resp.Conflict(c, err.Error())
	default:
		resp.ServerError(c, errors.New("storage failure"))
	}
}
