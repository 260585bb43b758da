// Package form drives the RSVP form: it validates the guest name, posts the
// confirmation and renders transient feedback through small DOM capability
// interfaces, so the same controller runs in a browser (js/wasm), a terminal
// or a test.
package form

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"rsvp/internal/adapters/rsvpapi"
)

// DefaultTimeout bounds a confirmation request so the submit button cannot stay disabled forever.
const DefaultTimeout = 15 * time.Second

// Confirmer posts a confirmation to the backend.
type Confirmer interface {
	Confirm(ctx context.Context, name string) (*rsvpapi.ConfirmResult, error)
}

// Controller orchestrates submission cycles for one form. It is safe for
// concurrent use; every DOM mutation happens under its lock.
type Controller struct {
	el      Elements
	api     Confirmer
	clock   Clock
	logger  *slog.Logger
	timeout time.Duration

	mu         sync.Mutex
	submitting bool
	current    *Message
	generation uint64
	pending    Timer
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock replaces the clock used to schedule message removal.
func WithClock(clock Clock) Option {
	return func(c *Controller) { c.clock = clock }
}

// WithTimeout sets the request timeout. Non-positive values keep DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger used for network failure diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

// NewController binds a controller to the page elements. It fails with a
// *MissingElementError when any element is absent.
func NewController(el Elements, api Confirmer, opts ...Option) (*Controller, error) {
	if err := el.validate(); err != nil {
		return nil, err
	}
	if api == nil {
		return nil, errors.New("form: confirmer is nil")
	}
	c := &Controller{
		el:      el,
		api:     api,
		clock:   realClock{},
		logger:  slog.Default(),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Submit runs one submission cycle for the current value of the name field.
// It renders exactly one message and always leaves the submit control enabled
// with its idle label. It returns ErrSubmitInFlight, without touching the
// page, while another submission is running.
func (c *Controller) Submit(ctx context.Context) (Outcome, error) {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return Outcome{}, ErrSubmitInFlight
	}
	name := strings.TrimSpace(c.el.Name.Value())
	if utf8.RuneCountInString(name) < MinNameLength {
		out := Outcome{Kind: OutcomeValidationError, Name: name, Message: MsgNameTooShort}
		c.showLocked(Message{Text: out.Message, Kind: KindError})
		c.mu.Unlock()
		return out, nil
	}
	c.submitting = true
	c.el.Submit.SetDisabled(true)
	c.el.Submit.SetLabel(LabelSubmitting)
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.submitting = false
		c.el.Submit.SetDisabled(false)
		c.el.Submit.SetLabel(LabelIdle)
		c.mu.Unlock()
	}()

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	_, err := c.api.Confirm(reqCtx, name)
	out := c.outcome(ctx, name, err)

	c.mu.Lock()
	c.showLocked(Message{Text: out.Message, Kind: out.MessageKind()})
	if out.Kind == OutcomeSuccess {
		c.el.Form.Reset()
		c.el.Messages.ScrollIntoView()
	}
	c.mu.Unlock()
	return out, nil
}

func (c *Controller) outcome(ctx context.Context, name string, err error) Outcome {
	if err == nil {
		return Outcome{Kind: OutcomeSuccess, Name: name, Message: fmt.Sprintf(successFormat, name)}
	}
	var apiErr *rsvpapi.APIError
	if errors.As(err, &apiErr) {
		msg := apiErr.Detail
		if msg == "" {
			msg = MsgAPIFallback
		}
		return Outcome{Kind: OutcomeAPIError, Name: name, Message: msg, Status: apiErr.Status}
	}
	c.logger.ErrorContext(ctx, "confirmation request failed", "err", err)
	return Outcome{Kind: OutcomeNetworkError, Name: name, Message: MsgConnection}
}

// DisplayMessage replaces the container content with a message. Success
// messages fade out after SuccessDisplay and are removed FadeDuration later.
func (c *Controller) DisplayMessage(text string, kind Kind) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.showLocked(Message{Text: text, Kind: kind})
}

func (c *Controller) showLocked(m Message) {
	c.stopPendingLocked()
	c.generation++
	c.current = &m
	c.el.Messages.Render(m)
	if m.Kind == KindSuccess {
		gen := c.generation
		c.pending = c.clock.AfterFunc(SuccessDisplay, func() { c.fade(gen) })
	}
}

// fade and remove are no-ops once a newer message (or a clear) bumped the generation.
func (c *Controller) fade(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return
	}
	c.el.Messages.FadeOut()
	c.pending = c.clock.AfterFunc(FadeDuration, func() { c.remove(gen) })
}

func (c *Controller) remove(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return
	}
	c.clearLocked()
}

func (c *Controller) clearLocked() {
	c.stopPendingLocked()
	c.generation++
	c.current = nil
	c.el.Messages.Clear()
}

func (c *Controller) stopPendingLocked() {
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
}

// OnInput dismisses a displayed error message as soon as the guest types.
func (c *Controller) OnInput() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current != nil && c.current.Kind == KindError {
		c.clearLocked()
	}
}

// OnFocus scales the name input wrapper up.
func (c *Controller) OnFocus() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.el.NameWrapper.SetScale(FocusScale, ScaleTransition)
}

// OnBlur restores the name input wrapper scale.
func (c *Controller) OnBlur() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.el.NameWrapper.SetScale(1, ScaleTransition)
}

// Current returns the displayed message, if any.
func (c *Controller) Current() (Message, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return Message{}, false
	}
	return *c.current, true
}

// Submitting reports whether a submission is in flight.
func (c *Controller) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting
}
