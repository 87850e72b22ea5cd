package entity

import "errors"

var (
	// Event errors
	ErrEventNotFound = errors.New("event not found")
	ErrInvalidEvent  = errors.New("invalid event")

	// Signup errors
	ErrIncompleteSignup = errors.New("all signup fields are required")
	ErrSignupNotAllowed = errors.New("signup form is not available for this event")

	// View errors
	ErrUnknownRoute        = errors.New("unknown route")
	ErrUnknownCalendarView = errors.New("unknown calendar view")
	ErrUnknownSetting      = errors.New("unknown setting")
	ErrDialogClosed        = errors.New("no event dialog is open")

	// Scanner errors
	ErrCameraUnavailable = errors.New("camera unavailable")

	// General errors
	ErrInvalidInput = errors.New("invalid input")
	ErrNotLoggedIn  = errors.New("not logged in")
	ErrClientClosed = errors.New("client closed")
)
