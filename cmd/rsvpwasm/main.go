//go:build js && wasm

// Command rsvpwasm is the browser build of the RSVP form controller.
//
//	GOOS=js GOARCH=wasm go build -o static/rsvp.wasm ./cmd/rsvpwasm
//	cp "$(go env GOROOT)/lib/wasm/wasm_exec.js" static/
//
// The server publishes both under /static/ from STATIC_DIR.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"syscall/js"

	"rsvp/internal/adapters/rsvpapi"
	"rsvp/internal/form"
	"rsvp/internal/form/browser"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	document := js.Global().Get("document")
	origin := js.Global().Get("location").Get("origin").String()

	browser.WhenReady(document, func() {
		elements, err := browser.Bind(document)
		if err != nil {
			logger.Error("rsvp form not bound", "err", err)
			return
		}
		api := rsvpapi.NewClient(origin, &http.Client{})
		ctrl, err := form.NewController(elements, api, form.WithLogger(logger))
		if err != nil {
			logger.Error("rsvp form not bound", "err", err)
			return
		}
		if _, err := browser.Attach(context.Background(), document, ctrl); err != nil {
			logger.Error("rsvp form not bound", "err", err)
		}
	})

	select {}
}
