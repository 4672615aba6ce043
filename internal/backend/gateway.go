// Package backend is the boundary where a real account API would sit.
//
// Gateway calls block until the round trip completes; a caller that must not
// block runs them on its own goroutine. Local implements the gateway on top
// of the credential store and waits a fixed delay before each call, standing
// in for network latency.
package backend

import (
	"context"
	"time"

	"github.com/dmitrijs2005/portfolio/internal/models"
	"github.com/google/uuid"
)

// Gateway is the account and messaging API used by the session controller
// and the contact service.
//
// Contract:
//   - Authenticate returns common.ErrAuthenticationFailure when no user
//     matches the pair exactly.
//   - CreateAccount returns common.ErrCredentialConflict when the email is
//     taken, and writes nothing in that case.
//   - SendMessage delivers a contact message and returns its receipt.
type Gateway interface {
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	CreateAccount(ctx context.Context, name, email, password string) (*models.User, error)
	SendMessage(ctx context.Context, msg ContactMessage) (*Receipt, error)
}

// ContactMessage is a submitted contact form.
type ContactMessage struct {
	Name    string
	Email   string
	Message string
}

// Receipt acknowledges a delivered contact message.
type Receipt struct {
	ID     uuid.UUID
	SentAt time.Time
}
