// Package common contains shared constants and small helpers used across
// the portfolio components.
package common

// Storage keys of the two persisted records. The values under these keys are
// JSON text in the layout the site's browser script reads and writes.
const (
	// UsersKey holds the JSON array of registered users.
	UsersKey = "users"
	// CurrentUserKey holds the JSON object of the signed-in user, if any.
	CurrentUserKey = "currentUser"
)

// Form keys identify the input surfaces the UI renders field errors against.
const (
	FormLogin    = "login"
	FormRegister = "register"
	FormContact  = "contact"
)
