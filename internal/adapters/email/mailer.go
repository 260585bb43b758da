package email

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/resend/resend-go/v2"

	"rsvp/internal/domain"
)

// Supported values for MailerConfig.Provider.
const (
	ProviderSES    = "ses"
	ProviderResend = "resend"
	ProviderNoop   = "noop"
)

const charsetUTF8 = "UTF-8"

// ErrMissingResendKey is returned by NewMailer for the resend provider without an API key.
var ErrMissingResendKey = errors.New("resend provider requires RESEND_API_KEY")

// SESConfig holds configuration for AWS SES.
type SESConfig struct {
	Region             string
	AccessKeyID        string
	SecretAccessKey    string
	InsecureSkipVerify bool
}

// MailerConfig holds configuration for creating a mailer.
type MailerConfig struct {
	Provider     string
	FromAddress  string
	FromName     string
	SES          SESConfig
	ResendAPIKey string
	// Logger receives delivery logs; nil means slog.Default().
	Logger *slog.Logger
}

// NewMailer creates the mailer for config.Provider. Unknown providers fall
// back to the noop mailer, which only logs.
func NewMailer(config MailerConfig) (domain.Mailer, error) {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "mailer", "provider", config.Provider)
	from := formatSource(config.FromName, config.FromAddress)

	switch config.Provider {
	case ProviderSES:
		return newSESMailer(config.SES, from, logger), nil
	case ProviderResend:
		if config.ResendAPIKey == "" {
			return nil, ErrMissingResendKey
		}
		return &resendMailer{client: resend.NewClient(config.ResendAPIKey), from: from, logger: logger}, nil
	case ProviderNoop:
		return &noopMailer{logger: logger}, nil
	default:
		logger.Warn("unknown email provider, notifications will only be logged")
		return &noopMailer{logger: logger}, nil
	}
}

func formatSource(name, address string) string {
	if name == "" {
		return address
	}
	return fmt.Sprintf("%s <%s>", name, address)
}

type sesMailer struct {
	client *ses.Client
	source string
	logger *slog.Logger
}

func newSESMailer(cfg SESConfig, source string, logger *slog.Logger) *sesMailer {
	if cfg.InsecureSkipVerify {
		logger.Warn("TLS certificate verification is disabled for SES, use only in development")
	}
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: cfg.InsecureSkipVerify,
			MinVersion:         tls.VersionTLS12,
		},
	}
	awsCfg := aws.Config{
		Region: cfg.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
		HTTPClient: &http.Client{Transport: transport},
	}
	return &sesMailer{client: ses.NewFromConfig(awsCfg), source: source, logger: logger}
}

func sesContent(data string) *types.Content {
	if data == "" {
		return nil
	}
	return &types.Content{Data: aws.String(data), Charset: aws.String(charsetUTF8)}
}

func (s *sesMailer) Send(ctx context.Context, to, subject, html, text string) error {
	out, err := s.client.SendEmail(ctx, &ses.SendEmailInput{
		Source:      aws.String(s.source),
		Destination: &types.Destination{ToAddresses: []string{to}},
		Message: &types.Message{
			Subject: sesContent(subject),
			Body:    &types.Body{Html: sesContent(html), Text: sesContent(text)},
		},
	})
	if err != nil {
		return fmt.Errorf("send email via SES: %w", err)
	}
	s.logger.InfoContext(ctx, "email sent", "message_id", aws.ToString(out.MessageId))
	return nil
}

type resendMailer struct {
	client *resend.Client
	from   string
	logger *slog.Logger
}

func (r *resendMailer) Send(ctx context.Context, to, subject, html, text string) error {
	sent, err := r.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    r.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
		Text:    text,
	})
	if err != nil {
		return fmt.Errorf("send email via Resend: %w", err)
	}
	r.logger.InfoContext(ctx, "email sent", "message_id", sent.Id)
	return nil
}

type noopMailer struct {
	logger *slog.Logger
}

func (n *noopMailer) Send(ctx context.Context, to, subject, _, _ string) error {
	n.logger.InfoContext(ctx, "email not sent (noop)", "to", to, "subject", subject)
	return nil
}
