package form_test

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rsvp/internal/adapters/rsvpapi"
	"rsvp/internal/form"
	"rsvp/internal/form/formtest"
)

// capturingHandler records log records for assertions.
type capturingHandler struct {
	records []slog.Record
}

func (h *capturingHandler) Enabled(_ context.Context, _ slog.Level) bool { return true }

func (h *capturingHandler) Handle(_ context.Context, r slog.Record) error {
	h.records = append(h.records, r.Clone())
	return nil
}

func (h *capturingHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }

func (h *capturingHandler) WithGroup(_ string) slog.Handler { return h }

type fixture struct {
	page  *formtest.Page
	clock *formtest.Clock
	api   *formtest.Confirmer
	logs  *capturingHandler
	ctrl  *form.Controller
}

func newFixture(t *testing.T, opts ...form.Option) *fixture {
	t.Helper()
	f := &fixture{
		page:  formtest.NewPage(),
		clock: &formtest.Clock{},
		api:   &formtest.Confirmer{},
		logs:  &capturingHandler{},
	}
	opts = append([]form.Option{form.WithClock(f.clock), form.WithLogger(slog.New(f.logs))}, opts...)
	ctrl, err := form.NewController(f.page.Elements(), f.api, opts...)
	require.NoError(t, err)
	f.ctrl = ctrl
	return f
}

func (f *fixture) requireIdle(t *testing.T) {
	t.Helper()
	assert.False(t, f.page.Disabled(), "submit control must end enabled")
	assert.Equal(t, form.LabelIdle, f.page.Label())
	assert.False(t, f.ctrl.Submitting())
}

func TestNewController_MissingElements(t *testing.T) {
	full := formtest.NewPage().Elements()

	tests := []struct {
		name    string
		mutate  func(e *form.Elements)
		element string
	}{
		{"form", func(e *form.Elements) { e.Form = nil }, "form"},
		{"name", func(e *form.Elements) { e.Name = nil }, "name input"},
		{"submit", func(e *form.Elements) { e.Submit = nil }, "submit button"},
		{"messages", func(e *form.Elements) { e.Messages = nil }, "message container"},
		{"wrapper", func(e *form.Elements) { e.NameWrapper = nil }, "name input wrapper"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := full
			tt.mutate(&el)
			_, err := form.NewController(el, &formtest.Confirmer{})
			var missing *form.MissingElementError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.element, missing.Element)
		})
	}

	_, err := form.NewController(full, nil)
	assert.Error(t, err)
}

func TestSubmit_ShortNamesNeverHitTheNetwork(t *testing.T) {
	for _, input := range []string{"", "  ", "Jo", "  Jo  ", "\tA\n", "Zé"} {
		t.Run(input, func(t *testing.T) {
			f := newFixture(t)
			f.page.Type(input)

			out, err := f.ctrl.Submit(context.Background())
			require.NoError(t, err)

			assert.Equal(t, form.OutcomeValidationError, out.Kind)
			assert.Equal(t, form.MsgNameTooShort, out.Message)
			assert.Empty(t, f.api.Calls())
			msg, ok := f.page.Message()
			require.True(t, ok)
			assert.Equal(t, form.Message{Text: form.MsgNameTooShort, Kind: form.KindError}, msg)
			assert.Empty(t, f.page.DisabledStates, "validation never disables the control")
			assert.Empty(t, f.page.Labels)
			f.requireIdle(t)
		})
	}
}

func TestSubmit_SendsTrimmedNameOnce(t *testing.T) {
	for _, input := range []string{"Ana", "  Maria Silva ", "\tJoão\n", "Zoé"} {
		t.Run(input, func(t *testing.T) {
			f := newFixture(t)
			f.page.Type(input)

			_, err := f.ctrl.Submit(context.Background())
			require.NoError(t, err)

			assert.Equal(t, []string{strings.TrimSpace(input)}, f.api.Calls())
		})
	}
}

func TestSubmit_Success(t *testing.T) {
	f := newFixture(t)
	f.page.Type("  Maria Silva ")

	out, err := f.ctrl.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, form.OutcomeSuccess, out.Kind)
	assert.Equal(t, "Maria Silva", out.Name)
	assert.Equal(t, "✓ Presença confirmada com sucesso! Obrigado, Maria Silva! 🎉", out.Message)

	msg, ok := f.page.Message()
	require.True(t, ok)
	assert.Equal(t, form.KindSuccess, msg.Kind)
	assert.Contains(t, msg.Text, "Maria Silva")
	assert.Equal(t, "", f.page.Value(), "form is reset")
	assert.Equal(t, 1, f.page.Resets)
	assert.Equal(t, 1, f.page.Scrolls)
	assert.Equal(t, []bool{true, false}, f.page.DisabledStates)
	assert.Equal(t, []string{form.LabelSubmitting, form.LabelIdle}, f.page.Labels)
	assert.Len(t, f.page.Renders, 1, "exactly one message per submit")
	f.requireIdle(t)
}

func TestSubmit_APIErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		want   string
		status int
	}{
		{"detail used verbatim", &rsvpapi.APIError{Status: 400, Detail: "Nome já confirmado"}, "Nome já confirmado", 400},
		{"no detail falls back", &rsvpapi.APIError{Status: 500}, form.MsgAPIFallback, 500},
		{"wrapped api error", errors.Join(errors.New("ctx"), &rsvpapi.APIError{Status: 409, Detail: "X"}), "X", 409},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.api.Err = tt.err
			f.page.Type("Maria Silva")

			out, err := f.ctrl.Submit(context.Background())
			require.NoError(t, err)

			assert.Equal(t, form.OutcomeAPIError, out.Kind)
			assert.Equal(t, tt.want, out.Message)
			assert.Equal(t, tt.status, out.Status)
			msg, _ := f.page.Message()
			assert.Equal(t, form.Message{Text: tt.want, Kind: form.KindError}, msg)
			assert.Equal(t, "Maria Silva", f.page.Value(), "form keeps the name on failure")
			assert.Zero(t, f.page.Resets)
			assert.Empty(t, f.logs.records, "api errors are not logged")
			f.requireIdle(t)
		})
	}
}

func TestSubmit_NetworkErrors(t *testing.T) {
	causes := []error{
		&rsvpapi.NetworkError{Err: &net.OpError{Op: "dial", Err: errors.New("connection refused")}},
		&rsvpapi.NetworkError{Err: context.DeadlineExceeded},
		&rsvpapi.DecodeError{Status: 200, Err: errors.New("body is not valid JSON")},
		&rsvpapi.DecodeError{Status: 502, Err: errors.New("body is not valid JSON")},
		errors.New("unexpected"),
	}
	for _, cause := range causes {
		t.Run(cause.Error(), func(t *testing.T) {
			f := newFixture(t)
			f.api.Err = cause
			f.page.Type("Maria Silva")

			out, err := f.ctrl.Submit(context.Background())
			require.NoError(t, err)

			assert.Equal(t, form.OutcomeNetworkError, out.Kind)
			assert.Equal(t, form.MsgConnection, out.Message)
			msg, _ := f.page.Message()
			assert.Equal(t, form.MsgConnection, msg.Text)
			assert.NotContains(t, msg.Text, cause.Error())
			require.Len(t, f.logs.records, 1, "cause is logged")
			assert.Equal(t, slog.LevelError, f.logs.records[0].Level)
			f.requireIdle(t)
		})
	}
}

func TestSubmit_NonJSONResponseShowsConnectionError(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"html page with 200", http.StatusOK, "<html>proxy</html>"},
		{"html page with 502", http.StatusBadGateway, "<html>Bad Gateway</html>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/html")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			page := formtest.NewPage()
			logs := &capturingHandler{}
			ctrl, err := form.NewController(page.Elements(), rsvpapi.NewClient(srv.URL, srv.Client()),
				form.WithClock(&formtest.Clock{}), form.WithLogger(slog.New(logs)))
			require.NoError(t, err)
			page.Type("Maria Silva")

			out, err := ctrl.Submit(context.Background())
			require.NoError(t, err)

			assert.Equal(t, form.OutcomeNetworkError, out.Kind)
			assert.Equal(t, form.MsgConnection, out.Message)
			msg, _ := page.Message()
			assert.Equal(t, form.Message{Text: form.MsgConnection, Kind: form.KindError}, msg)
			assert.Equal(t, "Maria Silva", page.Value(), "form is not reset")
			assert.Zero(t, page.Resets)
			require.Len(t, logs.records, 1, "cause is logged")
		})
	}
}

func TestSubmit_TimeoutRestoresControl(t *testing.T) {
	f := newFixture(t, form.WithTimeout(20*time.Millisecond))
	f.api.Block = make(chan struct{})
	f.page.Type("Maria Silva")

	out, err := f.ctrl.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, form.OutcomeNetworkError, out.Kind)
	f.requireIdle(t)
}

func TestSubmit_RejectsConcurrentSubmission(t *testing.T) {
	f := newFixture(t)
	release := make(chan struct{})
	f.api.Block = release
	f.page.Type("Maria Silva")

	done := make(chan form.Outcome)
	go func() {
		out, _ := f.ctrl.Submit(context.Background())
		done <- out
	}()

	require.Eventually(t, f.ctrl.Submitting, time.Second, time.Millisecond)
	assert.True(t, f.page.Disabled())
	assert.Equal(t, form.LabelSubmitting, f.page.Label())

	_, err := f.ctrl.Submit(context.Background())
	assert.ErrorIs(t, err, form.ErrSubmitInFlight)

	close(release)
	out := <-done
	assert.Equal(t, form.OutcomeSuccess, out.Kind)
	assert.Len(t, f.api.Calls(), 1)
	f.requireIdle(t)
}

func TestDisplayMessage_SuccessFadesThenClears(t *testing.T) {
	f := newFixture(t)
	f.ctrl.DisplayMessage("ok", form.KindSuccess)

	f.clock.Advance(form.SuccessDisplay - time.Millisecond)
	_, ok := f.page.Message()
	require.True(t, ok)
	assert.False(t, f.page.Faded())

	f.clock.Advance(time.Millisecond)
	assert.True(t, f.page.Faded())
	_, ok = f.page.Message()
	assert.True(t, ok, "still present during the fade")

	f.clock.Advance(form.FadeDuration)
	_, ok = f.page.Message()
	assert.False(t, ok)
	_, ok = f.ctrl.Current()
	assert.False(t, ok)
	assert.Zero(t, f.clock.Pending())
}

func TestDisplayMessage_ErrorPersists(t *testing.T) {
	f := newFixture(t)
	f.ctrl.DisplayMessage("falhou", form.KindError)

	assert.Zero(t, f.clock.Pending())
	f.clock.Advance(time.Hour)
	msg, ok := f.page.Message()
	require.True(t, ok)
	assert.Equal(t, "falhou", msg.Text)
}

func TestDisplayMessage_NewMessageCancelsPendingRemoval(t *testing.T) {
	f := newFixture(t)
	f.ctrl.DisplayMessage("first", form.KindSuccess)
	f.clock.Advance(4 * time.Second)

	f.ctrl.DisplayMessage("second", form.KindSuccess)
	assert.Equal(t, 1, f.clock.Pending(), "only the newest removal is scheduled")

	f.clock.Advance(2 * time.Second)
	msg, ok := f.page.Message()
	require.True(t, ok, "the first timer must not clear the second message")
	assert.Equal(t, "second", msg.Text)
	assert.False(t, f.page.Faded())

	f.clock.Advance(3*time.Second + form.FadeDuration)
	_, ok = f.page.Message()
	assert.False(t, ok)
}

func TestDisplayMessage_ErrorDuringFadeIsNotCleared(t *testing.T) {
	f := newFixture(t)
	f.ctrl.DisplayMessage("ok", form.KindSuccess)
	f.clock.Advance(form.SuccessDisplay)
	require.True(t, f.page.Faded())

	f.ctrl.DisplayMessage("erro", form.KindError)
	f.clock.Advance(form.FadeDuration * 2)

	msg, ok := f.page.Message()
	require.True(t, ok)
	assert.Equal(t, "erro", msg.Text)
	assert.False(t, f.page.Faded())
}

func TestOnInput_DismissesOnlyErrors(t *testing.T) {
	f := newFixture(t)

	f.ctrl.DisplayMessage("erro", form.KindError)
	f.ctrl.OnInput()
	_, ok := f.page.Message()
	assert.False(t, ok)

	f.ctrl.DisplayMessage("ok", form.KindSuccess)
	f.ctrl.OnInput()
	_, ok = f.page.Message()
	assert.True(t, ok)

	f.ctrl.OnInput()
	f.clock.Advance(form.SuccessDisplay + form.FadeDuration)
	_, ok = f.page.Message()
	assert.False(t, ok)
}

func TestOnInput_CancelsNothingPendingForErrors(t *testing.T) {
	f := newFixture(t)
	f.page.Type("Jo")
	_, err := f.ctrl.Submit(context.Background())
	require.NoError(t, err)

	f.page.Type("Joa")
	f.ctrl.OnInput()
	_, ok := f.page.Message()
	assert.False(t, ok)
	assert.Zero(t, f.clock.Pending())
}

func TestFocusAndBlurScaleWrapper(t *testing.T) {
	f := newFixture(t)

	f.ctrl.OnFocus()
	scale, transition := f.page.Scale()
	assert.Equal(t, form.FocusScale, scale)
	assert.Equal(t, 200*time.Millisecond, transition)

	f.ctrl.OnBlur()
	scale, _ = f.page.Scale()
	assert.Equal(t, 1.0, scale)
}

func TestScenario_SuccessThenAutoDismiss(t *testing.T) {
	f := newFixture(t)
	f.page.Type("Maria Silva")

	_, err := f.ctrl.Submit(context.Background())
	require.NoError(t, err)
	f.clock.Advance(form.SuccessDisplay + form.FadeDuration)

	_, ok := f.page.Message()
	assert.False(t, ok)
	f.requireIdle(t)
}

func TestOutcomeKind_String(t *testing.T) {
	assert.Equal(t, "success", form.OutcomeSuccess.String())
	assert.Equal(t, "validation_error", form.OutcomeValidationError.String())
	assert.Equal(t, "api_error", form.OutcomeAPIError.String())
	assert.Equal(t, "network_error", form.OutcomeNetworkError.String())
}
