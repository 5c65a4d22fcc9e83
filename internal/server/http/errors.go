package http

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/potholeauth/internal/common"
	"github.com/dmitrijs2005/potholeauth/internal/logging"
)

// Messages the mobile client shows verbatim.
const (
	MsgUserAlreadyRegistered  = "User already registered"
	MsgUserNotFound           = "User not found"
	MsgInvalidEmailOrPassword = "Invalid email or password"
	MsgServiceUnavailable     = "Service temporarily unavailable, please try again"
	MsgRegistrationFailed     = "Could not register user"
	MsgInternalServerError    = "Internal server error"
	MsgUnauthorized           = "Unauthorized"
	MsgMissingAuthorization   = "Missing authorization header"
	MsgSessionExpired         = "Session expired"
)

type operation int

const (
	opSignup operation = iota
	opLogin
)

// writeServiceError maps a service error to a status code and a message that
// carries no internal detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger logging.Logger, op operation, err error) {
	status, msg := http.StatusInternalServerError, MsgInternalServerError

	switch {
	case errors.Is(err, common.ErrValidation):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, common.ErrDuplicateEmail):
		status, msg = http.StatusBadRequest, MsgUserAlreadyRegistered
	case errors.Is(err, common.ErrUserNotFound):
		status, msg = http.StatusNotFound, MsgUserNotFound
	case errors.Is(err, common.ErrInvalidCredentials):
		status, msg = http.StatusBadRequest, MsgInvalidEmailOrPassword
	case errors.Is(err, common.ErrTransient):
		status, msg = http.StatusServiceUnavailable, MsgServiceUnavailable
	case errors.Is(err, common.ErrPersistence) && op == opSignup:
		status, msg = http.StatusBadRequest, MsgRegistrationFailed
	}

	if status >= http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed", "path", r.URL.Path, "status", status, "error", err,
			"request_id", RequestIDFromContext(r.Context()))
	}

	writeJSON(w, status, errorResponse{Error: msg})
}
