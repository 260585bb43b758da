package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for confirmation operations.
var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyConfirmed = errors.New("name already confirmed")
	ErrInvalidInput     = errors.New("invalid input")
)

// Name length limits, counted in runes after trimming.
const (
	MinNameLength = 3
	MaxNameLength = 100
)

// StatusConfirmed is the only status a confirmation is created with.
const StatusConfirmed = "Confirmado"

// Confirmation is an attendance confirmation (RSVP) submitted by a guest.
// swagger:model Confirmation
type Confirmation struct {
	ID          int64     `json:"id"`
	Name        string    `json:"nome"`
	ConfirmedAt time.Time `json:"data_confirmacao"`
	Status      string    `json:"status"`
}

// NewConfirmation returns a confirmed Confirmation for name. ID is set by the repository on create.
func NewConfirmation(name string, confirmedAt time.Time) *Confirmation {
	return &Confirmation{
		Name:        name,
		ConfirmedAt: confirmedAt,
		Status:      StatusConfirmed,
	}
}

// ConfirmationRepository defines storage operations for confirmations.
type ConfirmationRepository interface {
	Create(ctx context.Context, c *Confirmation) error
	GetByName(ctx context.Context, name string) (*Confirmation, error)
	// ListAll returns every confirmation, newest first.
	ListAll(ctx context.Context) ([]*Confirmation, error)
}

// ConfirmationService defines the guest-facing and admin operations on confirmations.
type ConfirmationService interface {
	// Confirm trims name, rejects duplicates with ErrAlreadyConfirmed, stores the
	// confirmation and notifies the organizer in the background.
	Confirm(ctx context.Context, name string) (*Confirmation, error)
	List(ctx context.Context) ([]*Confirmation, error)
}
