package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// RegistrationConfirmationEmailData holds data for the pass confirmation email.
type RegistrationConfirmationEmailData struct {
	Email          string
	FullName       string
	PassName       string
	RegistrationID string
	FormattedTotal string
	Reference      string
}

// SubmissionReceivedEmailData holds data for the acknowledgement sent after a form submission.
type SubmissionReceivedEmailData struct {
	Email    string
	FullName string
	Subject  string // what was received, e.g. the paper title
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendRegistrationConfirmation(ctx context.Context, data *RegistrationConfirmationEmailData) error
	SendSubmissionReceived(ctx context.Context, data *SubmissionReceivedEmailData) error
}
