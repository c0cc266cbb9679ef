package http

import (
	"net/http"

	"task-dashboard/internal/dashboard"
	pkgErrors "task-dashboard/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case dashboard.ErrTaskNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case dashboard.ErrUnknownNotification:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
