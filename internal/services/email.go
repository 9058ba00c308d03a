package services

import (
	"context"
	"fmt"
	"log/slog"

	"agtechsummit/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendRegistrationConfirmation sends the pass confirmation using the "registration_confirmation" template.
func (s *emailService) SendRegistrationConfirmation(ctx context.Context, data *domain.RegistrationConfirmationEmailData) error {
	if data == nil {
		return fmt.Errorf("registration confirmation data is nil")
	}
	return s.send(ctx, "registration_confirmation", data.Email, data)
}

// SendSubmissionReceived sends the acknowledgement using the "submission_received" template.
func (s *emailService) SendSubmissionReceived(ctx context.Context, data *domain.SubmissionReceivedEmailData) error {
	if data == nil {
		return fmt.Errorf("submission received data is nil")
	}
	return s.send(ctx, "submission_received", data.Email, data)
}

func (s *emailService) send(ctx context.Context, template, to string, data any) error {
	if to == "" {
		return fmt.Errorf("%s: recipient is empty: %w", template, domain.ErrInvalidInput)
	}
	subject, htmlBody, textBody, err := s.renderer.Render(template, data)
	if err != nil {
		return fmt.Errorf("failed to render %s template: %w", template, err)
	}
	if err := s.mailer.Send(ctx, to, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send %s email: %w", template, err)
	}
	s.logger.InfoContext(ctx, "email sent", "template", template, "to", to)
	return nil
}
