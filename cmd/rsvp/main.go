// Command rsvp is a terminal client for the RSVP backend.
//
//	rsvp [-url http://localhost:8080] confirm     # type names, one per line
//	rsvp [-url http://localhost:8080] list -senha s3nha
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/olekukonko/tablewriter"

	"rsvp/config"
	"rsvp/internal/adapters/rsvpapi"
	"rsvp/internal/form"
	"rsvp/internal/form/terminal"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "RSVP backend base URL")
	timeout := flag.Duration("timeout", form.DefaultTimeout, "request timeout")
	noColor := flag.Bool("no-color", false, "disable colored output")
	flag.Parse()

	logger := config.NewLoggerTo(os.Stderr)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api := rsvpapi.NewClient(*baseURL, &http.Client{Timeout: *timeout})

	cmd, args := "confirm", flag.Args()
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	var err error
	switch cmd {
	case "confirm":
		err = runConfirm(ctx, logger, api, *timeout, !*noColor)
	case "list":
		err = runList(ctx, api, args, os.Stdout)
	default:
		err = fmt.Errorf("unknown command %q (want confirm or list)", cmd)
	}
	if err != nil && ctx.Err() == nil {
		logger.Error("rsvp failed", "err", err)
		os.Exit(1)
	}
}

func runConfirm(ctx context.Context, logger *slog.Logger, api *rsvpapi.Client, timeout time.Duration, colors bool) error {
	screen := terminal.NewScreen(os.Stdout, colors)
	ctrl, err := form.NewController(screen.Elements(), api, form.WithLogger(logger), form.WithTimeout(timeout))
	if err != nil {
		return err
	}
	return terminal.Run(ctx, os.Stdin, os.Stdout, screen, ctrl)
}

func runList(ctx context.Context, api *rsvpapi.Client, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	password := fs.String("senha", os.Getenv("ADMIN_PASSWORD"), "admin password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	list, err := api.ListConfirmations(ctx, *password)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"ID", "Nome", "Data Confirmação", "Status"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, c := range list.Confirmations {
		table.Append([]string{fmt.Sprint(c.ID), c.Name, c.ConfirmedAt, c.Status})
	}
	table.SetFooter([]string{"", "", "Total", fmt.Sprint(list.Total)})
	table.Render()
	return nil
}
