// Package models defines the records persisted by the session layer.
package models

import "time"

// CreatedAtLayout is the ISO-8601 form written to createdAt: UTC with
// millisecond precision, as produced by a browser's Date.toISOString.
const CreatedAtLayout = "2006-01-02T15:04:05.000Z07:00"

// User is a registered account. The JSON field names are the persisted
// layout of the "users" and "currentUser" storage keys.
//
// Password is kept in plaintext. The store is a local mock with no network
// exposure; do not reuse this model anywhere credentials need protection.
type User struct {
	// ID is the creation time in Unix milliseconds, unique per clock tick.
	ID int64 `json:"id"`

	// Name is the display name shown in the signed-in prompt.
	Name string `json:"name"`

	// Email is the unique key, compared case-sensitively as entered.
	Email string `json:"email"`

	Password string `json:"password"`

	// CreatedAt is kept as text so a load/save cycle reproduces it exactly.
	CreatedAt string `json:"createdAt"`
}

// FormatCreatedAt renders t in CreatedAtLayout.
func FormatCreatedAt(t time.Time) string {
	return t.UTC().Format(CreatedAtLayout)
}
