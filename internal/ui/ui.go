// Package ui defines the hooks the session layer calls to give feedback, and
// their terminal rendering.
package ui

import "github.com/dmitrijs2005/portfolio/internal/models"

// Kind is the notification class.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notifier shows a transient message. Fire-and-forget: implementations
// dismiss it on their own after a fixed interval.
type Notifier interface {
	Notify(message string, kind Kind)
}

// Binder is everything the controllers need from the presentation layer.
//
// Field keys are form key + field name (loginEmail, registerPassword, ...),
// so ClearFieldErrors("login") drops every login field error.
type Binder interface {
	Notifier
	ShowFieldError(fieldKey, message string)
	ClearFieldErrors(formKey string)
	// ReflectSession switches between the signed-out and signed-in views;
	// user is nil when signed out.
	ReflectSession(user *models.User)
	// SetBusy marks a form as waiting on the backend. It is cosmetic and
	// does not block further submissions.
	SetBusy(formKey, label string, busy bool)
	CloseForm(formKey string)
}
