package services

import (
	"context"
	"fmt"
	"log"

	"rsvp/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendNewConfirmation notifies the organizer using the "new_confirmation" template.
func (s *emailService) SendNewConfirmation(ctx context.Context, data *domain.NewConfirmationEmailData) error {
	if data == nil {
		return fmt.Errorf("new confirmation email data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("new_confirmation", data)
	if err != nil {
		return fmt.Errorf("failed to render new_confirmation template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.To, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send new confirmation email: %w", err)
	}
	log.Printf("[EMAIL] Confirmation of %s sent to %s", data.GuestName, data.To)
	return nil
}
