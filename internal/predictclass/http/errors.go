package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/predictclass/internal/predictclass/service"
	"github.com/aussiebroadwan/predictclass/pkg/httpx"
	"github.com/aussiebroadwan/predictclass/pkg/predictsdk"
	"github.com/aussiebroadwan/predictclass/pkg/slogx"
)

// writeServiceError maps a service error onto a status and error code.
// Anything unrecognised is logged and returned as a 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := classifyError(err)
	if status == http.StatusInternalServerError {
		slogx.FromContext(r.Context()).Error("request failed", "error", err)
		httpx.WriteError(w, status, code, "an internal error occurred")
		return
	}
	httpx.WriteError(w, status, code, err.Error())
}

func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrInvalidResetToken):
		return http.StatusBadRequest, predictsdk.ErrorCodeInvalidToken
	case errors.Is(err, service.ErrResetTokenUsed):
		return http.StatusBadRequest, predictsdk.ErrorCodeTokenUsed
	case errors.Is(err, service.ErrResetTokenExpired):
		return http.StatusBadRequest, predictsdk.ErrorCodeTokenExpired
	case errors.Is(err, service.ErrInvalidConfidence):
		return http.StatusBadRequest, predictsdk.ErrorCodeInvalidConfidence
	case errors.Is(err, service.ErrAllocationExhausted):
		return http.StatusServiceUnavailable, predictsdk.ErrorCodeAllocationExhausted

	case errors.Is(err, service.ErrInvalidUsername),
		errors.Is(err, service.ErrInvalidDisplayName),
		errors.Is(err, service.ErrWeakPassword),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrInvalidClassName),
		errors.Is(err, service.ErrInvalidJoinCode),
		errors.Is(err, service.ErrInvalidQuestion),
		errors.Is(err, service.ErrInvalidChoice):
		return http.StatusBadRequest, predictsdk.ErrorCodeInvalidRequest

	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrBootstrapUnauthorized):
		return http.StatusUnauthorized, predictsdk.ErrorCodeUnauthorized

	case errors.Is(err, service.ErrNotClassMember),
		errors.Is(err, service.ErrNotClassTeacher),
		errors.Is(err, service.ErrNotEnrolled):
		return http.StatusForbidden, predictsdk.ErrorCodeForbidden

	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrClassNotFound),
		errors.Is(err, service.ErrGameNotFound),
		errors.Is(err, service.ErrUnknownJoinCode),
		errors.Is(err, service.ErrBootstrapDisabled):
		return http.StatusNotFound, predictsdk.ErrorCodeNotFound

	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrAlreadyEnrolled),
		errors.Is(err, service.ErrAlreadyPredicted),
		errors.Is(err, service.ErrGameResolved),
		errors.Is(err, service.ErrBootstrapAlready):
		return http.StatusConflict, predictsdk.ErrorCodeConflict
	}
	return http.StatusInternalServerError, predictsdk.ErrorCodeServerError
}
