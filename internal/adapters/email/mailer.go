package email

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"agtechsummit/internal/domain"
)

// Providers accepted by NewMailer.
const (
	ProviderSES  = "ses"
	ProviderNoop = "noop"
)

// SESConfig holds AWS settings. Without static keys the default credential chain is used.
type SESConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

type MailerConfig struct {
	Provider    string
	FromAddress string
	FromName    string
	SES         SESConfig
}

// sesAPI is the subset of the SES client used by the mailer.
type sesAPI interface {
	SendEmail(ctx context.Context, in *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// NewMailer builds the mailer for cfg.Provider. An empty or unknown provider logs instead of sending.
func NewMailer(ctx context.Context, cfg MailerConfig, logger *slog.Logger) (domain.Mailer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "mailer")

	switch strings.ToLower(cfg.Provider) {
	case ProviderSES:
		if _, err := mail.ParseAddress(cfg.FromAddress); err != nil {
			return nil, fmt.Errorf("invalid sender address %q: %w", cfg.FromAddress, err)
		}
		opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.SES.Region)}
		if cfg.SES.AccessKeyID != "" {
			opts = append(opts, awsconfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(cfg.SES.AccessKeyID, cfg.SES.SecretAccessKey, ""),
			))
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		return newSESMailer(ses.NewFromConfig(awsCfg), cfg, logger), nil
	case ProviderNoop, "":
	default:
		logger.Warn("unknown email provider, emails will only be logged", "provider", cfg.Provider)
	}
	return &logMailer{logger: logger}, nil
}

type sesMailer struct {
	client sesAPI
	source string
	logger *slog.Logger
}

func newSESMailer(client sesAPI, cfg MailerConfig, logger *slog.Logger) *sesMailer {
	from := mail.Address{Name: cfg.FromName, Address: cfg.FromAddress}
	return &sesMailer{client: client, source: from.String(), logger: logger}
}

func utf8(s string) *types.Content {
	return &types.Content{Data: aws.String(s), Charset: aws.String("UTF-8")}
}

func (m *sesMailer) Send(ctx context.Context, to, subject, html, text string) error {
	body := &types.Body{}
	if html != "" {
		body.Html = utf8(html)
	}
	if text != "" {
		body.Text = utf8(text)
	}
	out, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Source:      aws.String(m.source),
		Destination: &types.Destination{ToAddresses: []string{to}},
		Message:     &types.Message{Subject: utf8(subject), Body: body},
	})
	if err != nil {
		return fmt.Errorf("ses send to %s: %w", to, err)
	}
	m.logger.InfoContext(ctx, "email sent", "provider", ProviderSES, "message_id", aws.ToString(out.MessageId))
	return nil
}

// logMailer stands in for a real provider in development.
type logMailer struct {
	logger *slog.Logger
}

func (m *logMailer) Send(ctx context.Context, to, subject, html, text string) error {
	m.logger.InfoContext(ctx, "email not sent, no provider configured", "to", to, "subject", subject)
	return nil
}
