package common

import "errors"

// Sentinel errors shared by the backend gateway and the session controller.
// Callers should use errors.Is to match these values.
var (
	// ErrCredentialConflict means the email is already registered.
	ErrCredentialConflict = errors.New("email already registered")

	// ErrAuthenticationFailure means no user matches the email and password
	// pair. It deliberately does not say which of the two was wrong.
	ErrAuthenticationFailure = errors.New("invalid email or password")
)
