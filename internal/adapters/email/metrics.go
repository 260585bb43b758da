package email

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"rsvp/internal/domain"
)

// instrumentedMailer counts send attempts by provider and result.
type instrumentedMailer struct {
	next     domain.Mailer
	provider string
	sent     *prometheus.CounterVec
}

// NewInstrumentedMailer wraps next so every Send is counted in
// emails_sent_total{provider,result}. The counter is registered with reg.
func NewInstrumentedMailer(next domain.Mailer, provider string, reg prometheus.Registerer) (domain.Mailer, error) {
	sent := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emails_sent_total",
			Help: "Emails handed to the mail provider, by result.",
		},
		[]string{"provider", "result"},
	)
	if err := reg.Register(sent); err != nil {
		return nil, err
	}
	return &instrumentedMailer{next: next, provider: provider, sent: sent}, nil
}

func (m *instrumentedMailer) Send(ctx context.Context, to, subject, html, text string) error {
	err := m.next.Send(ctx, to, subject, html, text)
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.sent.WithLabelValues(m.provider, result).Inc()
	return err
}
