// Package sessionerr maps board errors onto HTTP statuses and user-facing messages.
package sessionerr

import (
	"errors"
	"net/http"

	"eventSignup/internal/controller"
	"eventSignup/internal/form"
	"eventSignup/internal/gateway"
)

// Status returns the HTTP status and message for err. Unclassified errors
// get http.StatusInternalServerError and fallback.
func Status(err error, fallback string) (int, string) {
	switch {
	case errors.Is(err, controller.ErrUnknownSession):
		return http.StatusNotFound, "session not found"
	case errors.Is(err, form.ErrNameRequired),
		errors.Is(err, form.ErrHandRequired),
		errors.Is(err, form.ErrWaiverRequired):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, controller.ErrNotOwner):
		return http.StatusForbidden, controller.ErrNotOwner.Error()
	case errors.Is(err, controller.ErrBusy),
		errors.Is(err, controller.ErrSessionFull),
		errors.Is(err, controller.ErrAlreadySignedUp),
		errors.Is(err, controller.ErrTrainingFull),
		errors.Is(err, controller.ErrRejectedByRemote),
		errors.Is(err, controller.ErrRemoveRejected):
		return http.StatusConflict, err.Error()
	case errors.Is(err, controller.ErrNotLoaded):
		return http.StatusServiceUnavailable, controller.ErrNotLoaded.Error()
	case errors.Is(err, gateway.ErrRequestFailed):
		return http.StatusBadGateway, gateway.ErrRequestFailed.Error()
	default:
		return http.StatusInternalServerError, fallback
	}
}
