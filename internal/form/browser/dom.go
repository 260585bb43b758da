//go:build js && wasm

// Package browser binds form.Controller to the real page through syscall/js.
package browser

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"syscall/js"
	"time"

	"rsvp/internal/form"
)

// Element IDs expected in the page markup.
const (
	FormID             = "rsvpForm"
	NameInputID        = "nome"
	SubmitButtonID     = "submitBtn"
	MessageContainerID = "messageContainer"
)

// Bind looks up the form elements in document. Missing elements are reported
// as *form.MissingElementError.
func Bind(document js.Value) (form.Elements, error) {
	lookup := func(id string) (js.Value, error) {
		v := document.Call("getElementById", id)
		if v.IsNull() || v.IsUndefined() {
			return js.Value{}, &form.MissingElementError{Element: "#" + id}
		}
		return v, nil
	}
	formEl, err := lookup(FormID)
	if err != nil {
		return form.Elements{}, err
	}
	input, err := lookup(NameInputID)
	if err != nil {
		return form.Elements{}, err
	}
	button, err := lookup(SubmitButtonID)
	if err != nil {
		return form.Elements{}, err
	}
	container, err := lookup(MessageContainerID)
	if err != nil {
		return form.Elements{}, err
	}
	parent := input.Get("parentElement")
	if parent.IsNull() || parent.IsUndefined() {
		return form.Elements{}, &form.MissingElementError{Element: "#" + NameInputID + " parent"}
	}
	return form.Elements{
		Form:        htmlForm{formEl},
		Name:        textInput{input},
		Submit:      submitButton{button},
		Messages:    &messageContainer{document: document, el: container},
		NameWrapper: wrapper{parent},
	}, nil
}

type htmlForm struct{ v js.Value }

func (f htmlForm) Reset() { f.v.Call("reset") }

type textInput struct{ v js.Value }

func (i textInput) Value() string { return i.v.Get("value").String() }

type submitButton struct{ v js.Value }

func (b submitButton) SetDisabled(disabled bool) { b.v.Set("disabled", disabled) }

func (b submitButton) SetLabel(label string) { b.v.Set("textContent", label) }

// messageContainer renders a single ".message.<kind>" block.
type messageContainer struct {
	document js.Value
	el       js.Value
	current  js.Value
}

func (m *messageContainer) Render(msg form.Message) {
	div := m.document.Call("createElement", "div")
	div.Set("className", "message "+string(msg.Kind))
	div.Set("textContent", msg.Text)
	m.el.Set("innerHTML", "")
	m.el.Call("appendChild", div)
	m.current = div
}

func (m *messageContainer) FadeOut() {
	if m.current.IsUndefined() {
		return
	}
	m.current.Get("style").Set("opacity", "0")
}

func (m *messageContainer) Clear() {
	m.el.Set("innerHTML", "")
	m.current = js.Undefined()
}

func (m *messageContainer) ScrollIntoView() {
	m.el.Call("scrollIntoView", map[string]any{"behavior": "smooth", "block": "nearest"})
}

type wrapper struct{ v js.Value }

func (w wrapper) SetScale(factor float64, transition time.Duration) {
	style := w.v.Get("style")
	style.Set("transform", "scale("+strconv.FormatFloat(factor, 'g', -1, 64)+")")
	style.Set("transition", fmt.Sprintf("transform %gs ease", transition.Seconds()))
}

// Attach registers the page event handlers. Submissions run on their own
// goroutine so the JS event loop is never blocked by the request. The returned
// function releases the handlers.
func Attach(ctx context.Context, document js.Value, ctrl *form.Controller) (release func(), err error) {
	formEl := document.Call("getElementById", FormID)
	input := document.Call("getElementById", NameInputID)
	if formEl.IsNull() || input.IsNull() {
		return nil, errors.New("browser: form elements disappeared before attach")
	}

	onSubmit := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			args[0].Call("preventDefault")
		}
		go func() { _, _ = ctrl.Submit(ctx) }()
		return nil
	})
	onInput := js.FuncOf(func(this js.Value, args []js.Value) any {
		ctrl.OnInput()
		return nil
	})
	onFocus := js.FuncOf(func(this js.Value, args []js.Value) any {
		ctrl.OnFocus()
		return nil
	})
	onBlur := js.FuncOf(func(this js.Value, args []js.Value) any {
		ctrl.OnBlur()
		return nil
	})

	formEl.Call("addEventListener", "submit", onSubmit)
	input.Call("addEventListener", "input", onInput)
	input.Call("addEventListener", "focus", onFocus)
	input.Call("addEventListener", "blur", onBlur)

	return func() {
		formEl.Call("removeEventListener", "submit", onSubmit)
		input.Call("removeEventListener", "input", onInput)
		input.Call("removeEventListener", "focus", onFocus)
		input.Call("removeEventListener", "blur", onBlur)
		onSubmit.Release()
		onInput.Release()
		onFocus.Release()
		onBlur.Release()
	}, nil
}

// WhenReady calls f once the document has been parsed.
func WhenReady(document js.Value, f func()) {
	if document.Get("readyState").String() != "loading" {
		f()
		return
	}
	var ready js.Func
	ready = js.FuncOf(func(this js.Value, args []js.Value) any {
		ready.Release()
		f()
		return nil
	})
	document.Call("addEventListener", "DOMContentLoaded", ready)
}
