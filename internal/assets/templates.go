package assets

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

func parseTemplateWithFallback(templatePath string, fallbackTemplate string, fallbackName string) (*template.Template, error) {
	funcMap := template.FuncMap{
		"join": strings.Join,
	}

	// Prefer a template on the filesystem so decks can be restyled
	// without rebuilding.
	if _, err := os.Stat(templatePath); err == nil {
		fileName := filepath.Base(templatePath)
		tmpl, err := template.New(fileName).
			Funcs(funcMap).
			ParseFiles(templatePath)
		if err == nil {
			return tmpl, nil
		}
		slog.Default().Warn("failed to parse a templatePath",
			slog.String("templatePath", templatePath),
			slog.Any("error", err),
		)
	}

	tmpl, err := template.New(fallbackName).
		Funcs(funcMap).
		Parse(fallbackTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}

	return tmpl, nil
}
