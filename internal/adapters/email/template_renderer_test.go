package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agtechsummit/internal/domain"
)

func TestTemplateRenderer_registrationConfirmation(t *testing.T) {
	r := NewTemplateRenderer()
	subject, html, text, err := r.Render("registration_confirmation", &domain.RegistrationConfirmationEmailData{
		Email:          "a@b.c",
		FullName:       "Asha <Rao>",
		PassName:       "Regular Pass",
		RegistrationID: "reg-1",
		FormattedTotal: "₹8,400",
		Reference:      "INV-ABC",
	})
	require.NoError(t, err)

	assert.Equal(t, "Your Regular Pass for AgTech Summit is confirmed", subject)
	assert.Contains(t, html, "Asha &lt;Rao&gt;")
	assert.Contains(t, html, "INV-ABC")
	assert.Contains(t, text, "Asha <Rao>")
	assert.Contains(t, text, "₹8,400")
}

func TestTemplateRenderer_submissionReceived_defaultsName(t *testing.T) {
	r := NewTemplateRenderer()
	subject, _, text, err := r.Render("submission_received", &domain.SubmissionReceivedEmailData{Subject: "Soil sensors"})
	require.NoError(t, err)

	assert.Equal(t, "We received your submission: Soil sensors", subject)
	assert.Contains(t, text, "Hi there,")
}

func TestTemplateRenderer_unknownTemplate(t *testing.T) {
	_, _, _, err := NewTemplateRenderer().Render("missing", nil)
	assert.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestTemplateRenderer_everyTemplateHasAllParts(t *testing.T) {
	r, err := newTemplateRenderer()
	require.NoError(t, err)
	for _, name := range []string{"registration_confirmation", "submission_received"} {
		assert.NotNil(t, r.html.Lookup(name+".html"), name)
		assert.NotNil(t, r.text.Lookup(name+".txt"), name)
		assert.NotNil(t, r.text.Lookup(name+"_subject.txt"), name)
	}
}
