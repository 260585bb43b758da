package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"rsvp/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

// Brazilian date layout used in organizer emails, e.g. "10/01/2026 às 13:00".
const emailDateLayout = "02/01/2006 às 15:04"

var funcs = map[string]any{
	"formatDate": func(t time.Time) string { return t.Format(emailDateLayout) },
}

// templateRenderer renders an email from three embedded files per name:
// <name>_subject.txt, <name>.txt and <name>.html.
type templateRenderer struct {
	html *template.Template
	text *texttemplate.Template
}

// NewTemplateRenderer parses the embedded templates once. A template that
// does not parse is a build defect, so it panics.
func NewTemplateRenderer() domain.EmailTemplateRenderer {
	return &templateRenderer{
		html: template.Must(template.New("email").Funcs(funcs).ParseFS(templateFS, "templates/*.html")),
		text: texttemplate.Must(texttemplate.New("email").Funcs(funcs).ParseFS(templateFS, "templates/*.txt")),
	}
}

// Render executes the named template (e.g. "new_confirmation") with data and returns subject, html, and text bodies.
func (r *templateRenderer) Render(templateName string, data any) (subject, htmlBody, textBody string, err error) {
	var buf bytes.Buffer
	if err := r.text.ExecuteTemplate(&buf, templateName+"_subject.txt", data); err != nil {
		return "", "", "", fmt.Errorf("render subject: %w", err)
	}
	subject = strings.TrimSpace(buf.String())

	buf.Reset()
	if err := r.html.ExecuteTemplate(&buf, templateName+".html", data); err != nil {
		return "", "", "", fmt.Errorf("render html: %w", err)
	}
	htmlBody = buf.String()

	buf.Reset()
	if err := r.text.ExecuteTemplate(&buf, templateName+".txt", data); err != nil {
		return "", "", "", fmt.Errorf("render text: %w", err)
	}
	return subject, htmlBody, buf.String(), nil
}
