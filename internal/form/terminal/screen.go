// Package terminal renders the RSVP form on a text terminal: each input line
// is typed into the name field and submitted.
package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gookit/color"

	"rsvp/internal/form"
)

// Screen is a terminal page. It implements every form capability interface
// and writes visible changes to out.
type Screen struct {
	mu      sync.Mutex
	out     io.Writer
	colors  bool
	value   string
	message *form.Message
}

// NewScreen returns a Screen writing to out. colors enables ANSI styling.
func NewScreen(out io.Writer, colors bool) *Screen {
	return &Screen{out: out, colors: colors}
}

// Elements returns the screen bound as form elements.
func (s *Screen) Elements() form.Elements {
	return form.Elements{
		Form:        screenForm{s},
		Name:        screenInput{s},
		Submit:      screenButton{s},
		Messages:    screenMessages{s},
		NameWrapper: screenWrapper{},
	}
}

// Type replaces the name input value.
func (s *Screen) Type(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = v
}

func (s *Screen) style(kind form.Kind, faded bool) color.Style {
	switch {
	case faded:
		return color.New(color.FgDarkGray)
	case kind == form.KindSuccess:
		return color.New(color.FgGreen, color.OpBold)
	default:
		return color.New(color.FgRed, color.OpBold)
	}
}

func (s *Screen) printLocked(text string, kind form.Kind, faded bool) {
	if s.colors {
		text = s.style(kind, faded).Render(text)
	}
	fmt.Fprintln(s.out, text)
}

type screenForm struct{ s *Screen }

func (f screenForm) Reset() {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	f.s.value = ""
}

type screenInput struct{ s *Screen }

func (i screenInput) Value() string {
	i.s.mu.Lock()
	defer i.s.mu.Unlock()
	return i.s.value
}

type screenButton struct{ s *Screen }

func (b screenButton) SetDisabled(bool) {}

// SetLabel only prints the in-progress label; the idle label is the prompt.
func (b screenButton) SetLabel(label string) {
	if label != form.LabelSubmitting {
		return
	}
	b.s.mu.Lock()
	defer b.s.mu.Unlock()
	fmt.Fprintln(b.s.out, label)
}

type screenMessages struct{ s *Screen }

func (m screenMessages) Render(msg form.Message) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.message = &msg
	m.s.printLocked(msg.Text, msg.Kind, false)
}

func (m screenMessages) FadeOut() {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if m.s.message == nil {
		return
	}
	m.s.printLocked("("+m.s.message.Text+")", m.s.message.Kind, true)
}

func (m screenMessages) Clear() {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.message = nil
}

func (m screenMessages) ScrollIntoView() {}

// screenWrapper ignores scaling; a terminal line cannot grow.
type screenWrapper struct{}

func (screenWrapper) SetScale(float64, time.Duration) {}

// Run reads names from in, one per line, and submits each through ctrl until
// in is exhausted or ctx is done.
func Run(ctx context.Context, in io.Reader, out io.Writer, screen *Screen, ctrl *form.Controller) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "Nome completo [%s]: ", form.LabelIdle)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		ctrl.OnFocus()
		screen.Type(scanner.Text())
		ctrl.OnInput()
		ctrl.OnBlur()
		if _, err := ctrl.Submit(ctx); err != nil && !errors.Is(err, form.ErrSubmitInFlight) {
			return err
		}
	}
}
