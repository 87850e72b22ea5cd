package transport

import (
	"errors"
	"net/http"

	"github.com/SudyStefan/MSD-UX-Prototype/internal/entity"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrEventNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrNotLoggedIn):
		return http.StatusUnauthorized
	case errors.Is(err, entity.ErrSignupNotAllowed),
		errors.Is(err, entity.ErrDialogClosed):
		return http.StatusConflict
	case errors.Is(err, entity.ErrCameraUnavailable),
		errors.Is(err, entity.ErrClientClosed):
		return http.StatusServiceUnavailable
	case errors.Is(err, entity.ErrIncompleteSignup),
		errors.Is(err, entity.ErrInvalidInput),
		errors.Is(err, entity.ErrUnknownRoute),
		errors.Is(err, entity.ErrUnknownCalendarView),
		errors.Is(err, entity.ErrUnknownSetting):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
