// Package formtest provides in-memory page elements and a manual clock for
// exercising form.Controller without a browser.
package formtest

import (
	"context"
	"sort"
	"sync"
	"time"

	"rsvp/internal/adapters/rsvpapi"
	"rsvp/internal/form"
)

// Page is an in-memory page implementing every form capability interface.
type Page struct {
	mu sync.Mutex

	value      string
	disabled   bool
	label      string
	message    *form.Message
	faded      bool
	scale      float64
	transition time.Duration

	Resets  int
	Scrolls int
	Renders []form.Message
	// Labels records every label set on the submit control, in order.
	Labels []string
	// DisabledStates records every disabled state set on the submit control, in order.
	DisabledStates []bool
}

// NewPage returns a page with an idle submit control.
func NewPage() *Page {
	return &Page{label: form.LabelIdle, scale: 1}
}

// Elements returns the page bound as form elements.
func (p *Page) Elements() form.Elements {
	return form.Elements{
		Form:        pageForm{p},
		Name:        pageInput{p},
		Submit:      pageButton{p},
		Messages:    pageMessages{p},
		NameWrapper: pageWrapper{p},
	}
}

// Type sets the name input value.
func (p *Page) Type(v string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.value = v
}

func (p *Page) Value() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value
}

func (p *Page) Disabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.disabled
}

func (p *Page) Label() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.label
}

// Message returns the rendered message, if the container is not empty.
func (p *Page) Message() (form.Message, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.message == nil {
		return form.Message{}, false
	}
	return *p.message, true
}

func (p *Page) Faded() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.faded
}

func (p *Page) Scale() (float64, time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.scale, p.transition
}

type pageForm struct{ p *Page }

func (f pageForm) Reset() {
	f.p.mu.Lock()
	defer f.p.mu.Unlock()
	f.p.value = ""
	f.p.Resets++
}

type pageInput struct{ p *Page }

func (i pageInput) Value() string { return i.p.Value() }

type pageButton struct{ p *Page }

func (b pageButton) SetDisabled(disabled bool) {
	b.p.mu.Lock()
	defer b.p.mu.Unlock()
	b.p.disabled = disabled
	b.p.DisabledStates = append(b.p.DisabledStates, disabled)
}

func (b pageButton) SetLabel(label string) {
	b.p.mu.Lock()
	defer b.p.mu.Unlock()
	b.p.label = label
	b.p.Labels = append(b.p.Labels, label)
}

type pageMessages struct{ p *Page }

func (m pageMessages) Render(msg form.Message) {
	m.p.mu.Lock()
	defer m.p.mu.Unlock()
	m.p.message = &msg
	m.p.faded = false
	m.p.Renders = append(m.p.Renders, msg)
}

func (m pageMessages) FadeOut() {
	m.p.mu.Lock()
	defer m.p.mu.Unlock()
	if m.p.message != nil {
		m.p.faded = true
	}
}

func (m pageMessages) Clear() {
	m.p.mu.Lock()
	defer m.p.mu.Unlock()
	m.p.message = nil
	m.p.faded = false
}

func (m pageMessages) ScrollIntoView() {
	m.p.mu.Lock()
	defer m.p.mu.Unlock()
	m.p.Scrolls++
}

type pageWrapper struct{ p *Page }

func (w pageWrapper) SetScale(factor float64, transition time.Duration) {
	w.p.mu.Lock()
	defer w.p.mu.Unlock()
	w.p.scale = factor
	w.p.transition = transition
}

// Clock is a manual form.Clock. Scheduled functions run synchronously inside Advance.
type Clock struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	timers []*timer
}

type timer struct {
	c       *Clock
	at      time.Duration
	seq     int
	f       func()
	stopped bool
}

func (t *timer) Stop() bool {
	t.c.mu.Lock()
	defer t.c.mu.Unlock()
	if t.stopped {
		return false
	}
	t.stopped = true
	return true
}

func (c *Clock) AfterFunc(d time.Duration, f func()) form.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	t := &timer{c: c, at: c.now + d, seq: c.seq, f: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves time forward by d, running every task that becomes due,
// including tasks scheduled by tasks, in due order.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now + d
	c.mu.Unlock()
	for {
		c.mu.Lock()
		next := c.nextDueLocked(target)
		if next == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		next.stopped = true
		c.now = next.at
		c.mu.Unlock()
		next.f()
	}
}

func (c *Clock) nextDueLocked(target time.Duration) *timer {
	live := c.timers[:0]
	for _, t := range c.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	c.timers = live
	sort.Slice(c.timers, func(i, j int) bool {
		if c.timers[i].at != c.timers[j].at {
			return c.timers[i].at < c.timers[j].at
		}
		return c.timers[i].seq < c.timers[j].seq
	})
	if len(c.timers) == 0 || c.timers[0].at > target {
		return nil
	}
	return c.timers[0]
}

// Pending returns the number of scheduled, not yet run or stopped, tasks.
func (c *Clock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// Confirmer is a scripted form.Confirmer that records every call.
type Confirmer struct {
	mu    sync.Mutex
	Names []string
	Err   error
	// Block, when set, makes Confirm wait until it is closed or the context ends.
	Block chan struct{}
}

func (f *Confirmer) Confirm(ctx context.Context, name string) (*rsvpapi.ConfirmResult, error) {
	f.mu.Lock()
	f.Names = append(f.Names, name)
	block, err := f.Block, f.Err
	f.mu.Unlock()
	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, &rsvpapi.NetworkError{Err: ctx.Err()}
		}
	}
	if err != nil {
		return nil, err
	}
	return &rsvpapi.ConfirmResult{Name: name, Status: "Confirmado"}, nil
}

// Calls returns the names Confirm was called with.
func (f *Confirmer) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.Names...)
}
