package v1

import (
	"errors"
	"net/http"

	"github.com/dugout-app/backend/internal/ai"
	"github.com/dugout-app/backend/internal/career"
	"github.com/dugout-app/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrResourceNotFound),
		errors.Is(err, career.ErrPlayerNotFound),
		errors.Is(err, career.ErrIndexOutOfRange),
		errors.Is(err, errNoCareer):
		return http.StatusNotFound
	case errors.Is(err, models.ErrCredentialsInvalid), errors.Is(err, errNoToken):
		return http.StatusUnauthorized
	case errors.Is(err, ai.ErrNoCredential):
		return http.StatusPreconditionFailed
	case errors.Is(err, ai.ErrService):
		return http.StatusBadGateway
	default:
		return http.StatusBadRequest
	}
}

var (
	errNoToken          = errors.New("this endpoint requires a bearer token, sign in first")
	errNoCareer         = errors.New("there is no career for this account yet")
	errCareerExists     = errors.New("this account already has a career, delete it first")
	errConfirmation     = errors.New("destructive actions must be confirmed with the confirm parameter")
	errNoFilePost       = errors.New("you must send a file to this endpoint")
	errWrongFileType    = errors.New("this endpoint only supports image uploads")
	errUnknownImageKind = errors.New("the kind parameter must be avatar, logo or scan")
	errNoImportInput    = errors.New("either text or an image payload must be set")
)

// Confirmation value for destructive actions, mirrored by the client's
// confirmation dialog.
const confirmValue = "yes-i-am-sure"
