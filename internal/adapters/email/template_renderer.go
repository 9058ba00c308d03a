package email

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"agtechsummit/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

// ErrUnknownTemplate is returned by Render for a name with no templates on disk.
var ErrUnknownTemplate = errors.New("unknown email template")

var funcs = map[string]any{
	"year": func() int { return time.Now().Year() },
}

// templateRenderer holds every embedded template, parsed once.
type templateRenderer struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

// NewTemplateRenderer parses the embedded templates. It panics if they do not parse,
// which can only happen when a template file in the binary is broken.
func NewTemplateRenderer() domain.EmailTemplateRenderer {
	r, err := newTemplateRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

func newTemplateRenderer() (*templateRenderer, error) {
	html, err := htmltemplate.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse html templates: %w", err)
	}
	text, err := texttemplate.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.txt")
	if err != nil {
		return nil, fmt.Errorf("parse text templates: %w", err)
	}
	return &templateRenderer{html: html, text: text}, nil
}

// Render executes the subject, HTML and plain text templates registered under name.
func (r *templateRenderer) Render(name string, data any) (subject, htmlBody, textBody string, err error) {
	if r.html.Lookup(name+".html") == nil {
		return "", "", "", fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}
	var buf bytes.Buffer
	if err := r.text.ExecuteTemplate(&buf, name+"_subject.txt", data); err != nil {
		return "", "", "", fmt.Errorf("render %s subject: %w", name, err)
	}
	subject = strings.Join(strings.Fields(buf.String()), " ")

	buf.Reset()
	if err := r.html.ExecuteTemplate(&buf, name+".html", data); err != nil {
		return "", "", "", fmt.Errorf("render %s html: %w", name, err)
	}
	htmlBody = buf.String()

	buf.Reset()
	if err := r.text.ExecuteTemplate(&buf, name+".txt", data); err != nil {
		return "", "", "", fmt.Errorf("render %s text: %w", name, err)
	}
	return subject, htmlBody, buf.String(), nil
}
