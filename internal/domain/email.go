package domain

import (
	"context"
	"time"
)

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// NewConfirmationEmailData holds data for the organizer notification sent on each confirmation.
type NewConfirmationEmailData struct {
	To          string
	GuestName   string
	ConfirmedAt time.Time
	Status      string
	EventName   string
	EventDate   string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendNewConfirmation(ctx context.Context, data *NewConfirmationEmailData) error
}
