package api

import (
	"net/http"

	reqdto "fitness-booking/internal/handler/dto/request"
	"fitness-booking/internal/handler/httperr"
	"fitness-booking/internal/pkg/errs"
	"fitness-booking/internal/pkg/patch"
	"fitness-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// abortWithUseCaseError maps error classes to HTTP status codes. Invalid
// arguments keep their own message, everything unclassified becomes a 500.
func abortWithUseCaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrMemberNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "member not found", nil)
	case errs.Is(err, errs.ErrClassNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "class not found", nil)
	case errs.Is(err, errs.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "reservation not found", nil)
	case errs.Is(err, errs.ErrCapacityExceeded):
		httperr.AbortWithError(c, http.StatusConflict, err, "class capacity full", nil)
	case errs.Is(err, errs.ErrReservationAlreadyCancelled):
		httperr.AbortWithError(c, http.StatusConflict, err, "reservation already cancelled", nil)
	case errs.Is(err, errs.ErrIdempotencyInProgress):
		httperr.AbortWithError(c, http.StatusConflict, err, "request with this idempotency key is still in progress", nil)
	case errs.Is(err, errs.ErrIdempotencyKeyReused):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "idempotency key reused with a different request", nil)
	case errs.Is(err, errs.ErrDatabaseOperationFailed):
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	case errs.Is(err, errs.ErrInvalidArgument):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

func bindListQuery(c *gin.Context) (*queries.Cursor, int, bool) {
	var q reqdto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return nil, 0, false
	}

	var cursor *queries.Cursor
	if q.Cursor != "" {
		cursor = &queries.Cursor{After: q.Cursor}
	}
	return cursor, queries.ValidateLimit(patch.Coalesce(q.Limit, queries.DefaultListLimit)), true
}
