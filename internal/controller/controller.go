// Package controller exposes the HTTP surface over the service layer.
package controller

import (
	"errors"
	"strings"

	"eduhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// respondError maps service-level errors onto HTTP responses.
func respondError(ctx *gin.Context, err error) {
	var vErr *util.ValidationError
	switch {
	case errors.As(err, &vErr):
		util.BadRequest(ctx, strings.Join(vErr.Messages, "; "))
	case errors.Is(err, util.ErrDuplicateKey):
		util.Conflict(ctx, "duplicate key")
	case errors.Is(err, util.ErrNotFound):
		util.NotFoundResponse(ctx)
	case errors.Is(err, util.ErrInstructorRequired):
		util.BadRequest(ctx, "instructorId must reference an existing instructor")
	default:
		util.LogInternalError(ctx, err)
	}
}
