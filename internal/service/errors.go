package service

import "errors"

// Sentinel errors translated to HTTP status codes at the handler
// boundary. Their messages are the client-facing error strings.
var (
	ErrMissingFields      = errors.New("email, password, and username are required")
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrShortPassword      = errors.New("password must be at least 6 characters long")
	ErrShortUsername      = errors.New("username must be at least 2 characters long")
	ErrEmailTaken         = errors.New("email already registered")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so a caller cannot probe which emails are registered.
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrUserNotFound        = errors.New("user not found")

	ErrInvalidOverlayType = errors.New(`invalid overlay type, must be "text" or "image"`)
	ErrMissingContent     = errors.New("content is required")
	ErrOverlayNotFound    = errors.New("overlay not found")

	ErrMissingStreamURL  = errors.New("stream url is required")
	ErrInvalidStreamType = errors.New(`invalid stream type, must be "hls", "dash", or "mp4"`)

	ErrSearchUnavailable = errors.New("search is not configured")
)
