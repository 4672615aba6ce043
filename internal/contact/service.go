// Package contact submits the site's contact form.
package contact

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/portfolio/internal/backend"
	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/dmitrijs2005/portfolio/internal/logging"
	"github.com/dmitrijs2005/portfolio/internal/ui"
	"github.com/dmitrijs2005/portfolio/internal/validation"
)

const (
	msgSent       = "Message sent successfully! I'll get back to you soon."
	msgFillAll    = "Please fill in all fields"
	msgBadEmail   = "Please enter a valid email address"
	msgSendFailed = "Message could not be sent, please try again"
	labelSending  = "Sending..."
)

type Service struct {
	gateway backend.Gateway
	ui      ui.Binder
	log     logging.Logger
}

func NewService(gateway backend.Gateway, binder ui.Binder, log logging.Logger) *Service {
	return &Service{gateway: gateway, ui: binder, log: log}
}

// Submit validates and delivers a message. Validation problems are reported
// with a single notification, missing fields taking precedence over a bad
// email.
func (s *Service) Submit(ctx context.Context, name, email, message string) (*backend.Receipt, error) {
	form := validation.ContactForm{Name: name, Email: email, Message: message}
	if err := validation.ValidateContact(form); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) && !verr.HasTag("required") {
			s.ui.Notify(msgBadEmail, ui.KindError)
		} else {
			s.ui.Notify(msgFillAll, ui.KindError)
		}
		return nil, err
	}

	s.ui.SetBusy(common.FormContact, labelSending, true)
	receipt, err := s.gateway.SendMessage(ctx, backend.ContactMessage{Name: name, Email: email, Message: message})
	s.ui.SetBusy(common.FormContact, labelSending, false)
	if err != nil {
		s.log.Error(ctx, "contact message failed", "error", err)
		s.ui.Notify(msgSendFailed, ui.KindError)
		return nil, err
	}

	s.ui.Notify(msgSent, ui.KindSuccess)
	s.ui.CloseForm(common.FormContact)
	return receipt, nil
}
