package utils

import (
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// RenderMarkdown converts a post description into HTML. Raw HTML in the
// source is dropped by goldmark's default renderer.
func RenderMarkdown(input string) template.HTML {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	var b strings.Builder
	if err := markdown.Convert([]byte(input), &b); err != nil {
		return template.HTML(template.HTMLEscapeString(input))
	}
	return template.HTML(b.String())
}
