package email

import (
	"bytes"
	"embed"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"foodbridge/config"
	"foodbridge/internal/domain/service"
	"foodbridge/internal/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

// Each template file defines three blocks: "subject" and "text" are rendered as plain text,
// "html" with contextual escaping.
type templateSet struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

type templates struct {
	sets map[string]templateSet
}

// NewTemplates parses every embedded template. cfg.AppBaseURL is exposed to templates as baseURL.
func NewTemplates(cfg *config.Config) (service.EmailTemplates, error) {
	baseURL := ""
	if cfg.Email != nil {
		baseURL = strings.TrimRight(cfg.Email.AppBaseURL, "/")
	}
	funcs := map[string]any{
		"baseURL": func() string { return baseURL },
		"join":    strings.Join,
	}

	names := []string{
		service.TemplateProductClaimed,
		service.TemplateProductAvailable,
		service.TemplateApprovalDecision,
	}

	sets := make(map[string]templateSet, len(names))
	for _, name := range names {
		path := "templates/" + name + ".html"

		html, err := htmltemplate.New(name).Funcs(funcs).ParseFS(templateFS, path)
		if err != nil {
			return nil, errors.Wrapf(err, "parse html template %s", name)
		}
		text, err := texttemplate.New(name).Funcs(funcs).ParseFS(templateFS, path)
		if err != nil {
			return nil, errors.Wrapf(err, "parse text template %s", name)
		}

		sets[name] = templateSet{html: html, text: text}
	}

	return &templates{sets: sets}, nil
}

func (t *templates) Render(name, to string, data any) (*service.EmailMessage, error) {
	set, ok := t.sets[name]
	if !ok {
		return nil, errors.Errorf("unknown email template %q", name)
	}

	var subject, text, html bytes.Buffer
	if err := set.text.ExecuteTemplate(&subject, "subject", data); err != nil {
		return nil, errors.Wrapf(err, "render %s subject", name)
	}
	if err := set.text.ExecuteTemplate(&text, "text", data); err != nil {
		return nil, errors.Wrapf(err, "render %s text body", name)
	}
	if err := set.html.ExecuteTemplate(&html, "html", data); err != nil {
		return nil, errors.Wrapf(err, "render %s html body", name)
	}

	return &service.EmailMessage{
		To:       to,
		Subject:  strings.TrimSpace(subject.String()),
		HTMLBody: html.String(),
		TextBody: text.String(),
	}, nil
}
