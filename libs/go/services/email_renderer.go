package services

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/chessclub/club-events-api/libs/go/types/business"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

// Placeholders understood in email subjects and bodies.
const (
	PlaceholderFirstName  = "{{first_name}}"
	PlaceholderLastName   = "{{last_name}}"
	PlaceholderEventTitle = "{{event_title}}"
	PlaceholderEventDate  = "{{event_date}}"
)

// EmailRenderer turns an organizer's Markdown message into per-recipient HTML.
type EmailRenderer struct {
	md goldmark.Markdown
}

// NewEmailRenderer creates a renderer. Raw HTML in the Markdown is dropped.
func NewEmailRenderer() *EmailRenderer {
	return &EmailRenderer{
		md: goldmark.New(goldmark.WithRendererOptions(goldmarkHTML.WithHardWraps())),
	}
}

// RenderMarkdown converts Markdown to HTML without filling placeholders.
func (r *EmailRenderer) RenderMarkdown(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.String(), nil
}

// Render converts markdown to HTML and fills the placeholders with data,
// HTML-escaped.
func (r *EmailRenderer) Render(markdown string, data business.EmailTemplateData) (string, error) {
	body, err := r.RenderMarkdown(markdown)
	if err != nil {
		return "", err
	}
	return FillPlaceholders(body, data, html.EscapeString), nil
}

// RenderText fills the placeholders of a plain-text body.
func (r *EmailRenderer) RenderText(text string, data business.EmailTemplateData) string {
	return FillPlaceholders(text, data, nil)
}

// FillPlaceholders substitutes every known placeholder in s. escape, when
// non-nil, is applied to each value.
func FillPlaceholders(s string, data business.EmailTemplateData, escape func(string) string) string {
	if escape == nil {
		escape = func(v string) string { return v }
	}
	return strings.NewReplacer(
		PlaceholderFirstName, escape(data.FirstName),
		PlaceholderLastName, escape(data.LastName),
		PlaceholderEventTitle, escape(data.EventTitle),
		PlaceholderEventDate, escape(data.EventDate),
	).Replace(s)
}
