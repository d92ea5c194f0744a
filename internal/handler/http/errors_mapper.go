package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-sign-gate/internal/service"
	"github.com/MKhiriev/go-sign-gate/internal/store"
)

// User-facing messages shown inline on the forms.
const (
	msgUsernameTaken      = "Username already taken."
	msgInvalidCredentials = "Invalid username or password."
	msgSignedUp           = "Successfully signed up!"
	msgPasswordTooLong    = "Password is too long."
	msgInvalidForm        = "Invalid form submission."
	msgUnavailable        = "Service is temporarily unavailable. Please try again later."
	msgInternal           = "Something went wrong. Please try again."
)

type errorResponse struct {
	status  int
	message string
}

var errorResponseMap = map[error]errorResponse{
	service.ErrUsernameTaken:      {status: http.StatusConflict, message: msgUsernameTaken},
	service.ErrInvalidCredentials: {status: http.StatusUnauthorized, message: msgInvalidCredentials},
	service.ErrPasswordTooLong:    {status: http.StatusBadRequest, message: msgPasswordTooLong},
	service.ErrHashingPassword:    {status: http.StatusInternalServerError, message: msgInternal},

	ErrInvalidForm:      {status: http.StatusBadRequest, message: msgInvalidForm},
	ErrMissingFormField: {status: http.StatusBadRequest, message: msgInvalidForm},

	store.ErrStoreUnavailable: {status: http.StatusServiceUnavailable, message: msgUnavailable},
}

// responseFromError maps err to the status code and inline message of the
// page re-rendered for it. Errors that are not recognised come from the store
// and are reported as a temporary outage.
func responseFromError(err error) (int, string) {
	for target, resp := range errorResponseMap {
		if errors.Is(err, target) {
			return resp.status, resp.message
		}
	}
	return http.StatusServiceUnavailable, msgUnavailable
}
