package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agtechsummit/internal/domain"
)

type recordingMailer struct {
	to, subject, html, text string
	err                     error
}

func (m *recordingMailer) Send(ctx context.Context, to, subject, html, text string) error {
	m.to, m.subject, m.html, m.text = to, subject, html, text
	return m.err
}

type stubRenderer struct {
	name string
	err  error
}

func (r *stubRenderer) Render(name string, data any) (string, string, string, error) {
	r.name = name
	if r.err != nil {
		return "", "", "", r.err
	}
	return "subj", "<p>html</p>", "text", nil
}

func TestEmailService_SendRegistrationConfirmation(t *testing.T) {
	mailer := &recordingMailer{}
	renderer := &stubRenderer{}
	svc := NewEmailService(mailer, renderer, discardLogger())

	err := svc.SendRegistrationConfirmation(context.Background(), &domain.RegistrationConfirmationEmailData{Email: "a@b.c"})
	require.NoError(t, err)
	assert.Equal(t, "registration_confirmation", renderer.name)
	assert.Equal(t, "a@b.c", mailer.to)
	assert.Equal(t, "subj", mailer.subject)
	assert.Equal(t, "<p>html</p>", mailer.html)
	assert.Equal(t, "text", mailer.text)
}

func TestEmailService_errors(t *testing.T) {
	tests := []struct {
		name     string
		mailer   *recordingMailer
		renderer *stubRenderer
		data     *domain.SubmissionReceivedEmailData
	}{
		{name: "nil data", mailer: &recordingMailer{}, renderer: &stubRenderer{}},
		{name: "empty recipient", mailer: &recordingMailer{}, renderer: &stubRenderer{}, data: &domain.SubmissionReceivedEmailData{}},
		{name: "render fails", mailer: &recordingMailer{}, renderer: &stubRenderer{err: errBoom}, data: &domain.SubmissionReceivedEmailData{Email: "a@b.c"}},
		{name: "send fails", mailer: &recordingMailer{err: errBoom}, renderer: &stubRenderer{}, data: &domain.SubmissionReceivedEmailData{Email: "a@b.c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewEmailService(tt.mailer, tt.renderer, discardLogger())
			assert.Error(t, svc.SendSubmissionReceived(context.Background(), tt.data))
		})
	}
}
