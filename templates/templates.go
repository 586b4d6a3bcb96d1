// Package templates holds the HTML views for the public news pages.
package templates

import (
	"embed"
	"html/template"

	"newsroom/utils"
)

//go:embed views/*.html
var views embed.FS

// Load parses every view with the helpers the pages rely on.
func Load() (*template.Template, error) {
	return template.New("").
		Funcs(template.FuncMap{"markdown": utils.RenderMarkdown}).
		ParseFS(views, "views/*.html")
}
