package ui

import (
	"embed"
	"fmt"
	"html/template"
	"strconv"
)

//go:embed templates/*.html
var templateFiles embed.FS

// parseTemplates loads every page template under its base name
func parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"kg": func(v float64) string {
			return strconv.FormatFloat(v, 'f', -1, 64)
		},
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return templates, nil
}
