package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"rsvp/internal/domain"
)

// notifyTimeout bounds the background organizer email.
const notifyTimeout = 10 * time.Second

// NotificationConfig describes who receives the organizer email and the event it refers to.
// An empty Recipient disables notifications.
type NotificationConfig struct {
	Recipient string
	EventName string
	EventDate string
}

type confirmationService struct {
	repo   domain.ConfirmationRepository
	email  domain.EmailService
	notify NotificationConfig
	logger *slog.Logger
	now    func() time.Time

	wg sync.WaitGroup
}

// ConfirmationService is the concrete service returned by NewConfirmationService.
// Drain blocks until every background notification has finished.
type ConfirmationService interface {
	domain.ConfirmationService
	Drain()
}

// NewConfirmationService creates a ConfirmationService with the given repository and email service.
func NewConfirmationService(
	logger *slog.Logger,
	repo domain.ConfirmationRepository,
	email domain.EmailService,
	notify NotificationConfig,
) ConfirmationService {
	return &confirmationService{
		repo:   repo,
		email:  email,
		notify: notify,
		logger: logger,
		now:    time.Now,
	}
}

func (s *confirmationService) Confirm(ctx context.Context, name string) (*domain.Confirmation, error) {
	name = strings.TrimSpace(name)
	if n := utf8.RuneCountInString(name); n < domain.MinNameLength || n > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: name must have between %d and %d characters", domain.ErrInvalidInput, domain.MinNameLength, domain.MaxNameLength)
	}

	if _, err := s.repo.GetByName(ctx, name); err == nil {
		return nil, domain.ErrAlreadyConfirmed
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get confirmation: %w", err)
	}

	c := domain.NewConfirmation(name, s.now())
	if err := s.repo.Create(ctx, c); err != nil {
		if errors.Is(err, domain.ErrAlreadyConfirmed) {
			return nil, domain.ErrAlreadyConfirmed
		}
		return nil, fmt.Errorf("create confirmation: %w", err)
	}

	s.notifyOrganizer(ctx, c)
	return c, nil
}

// notifyOrganizer sends the organizer email without delaying the response.
// Failures are logged and never reach the guest.
func (s *confirmationService) notifyOrganizer(ctx context.Context, c *domain.Confirmation) {
	if s.notify.Recipient == "" || s.email == nil {
		s.logger.WarnContext(ctx, "email recipient not configured, notification skipped", "nome", c.Name)
		return
	}
	data := &domain.NewConfirmationEmailData{
		To:          s.notify.Recipient,
		GuestName:   c.Name,
		ConfirmedAt: c.ConfirmedAt,
		Status:      c.Status,
		EventName:   s.notify.EventName,
		EventDate:   s.notify.EventDate,
	}
	bg := context.WithoutCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		sendCtx, cancel := context.WithTimeout(bg, notifyTimeout)
		defer cancel()
		if err := s.email.SendNewConfirmation(sendCtx, data); err != nil {
			s.logger.ErrorContext(sendCtx, "organizer notification failed", "nome", c.Name, "err", err)
		}
	}()
}

func (s *confirmationService) List(ctx context.Context) ([]*domain.Confirmation, error) {
	list, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list confirmations: %w", err)
	}
	if list == nil {
		list = []*domain.Confirmation{}
	}
	return list, nil
}

func (s *confirmationService) Drain() {
	s.wg.Wait()
}
