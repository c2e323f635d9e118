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

const lessonNotesTemplateName = "lesson-notes.md.go.tmpl"

//go:embed templates/lesson-notes.md.go.tmpl
var fallbackLessonNotesTemplate string

// ParseLessonNotesTemplate parses the template at templatePath and falls back
// to the embedded one when the path is empty, missing or unparsable.
func ParseLessonNotesTemplate(templatePath string) (*template.Template, error) {
	return parseTemplateWithFallback(templatePath, lessonNotesTemplateName, fallbackLessonNotesTemplate)
}

func parseTemplateWithFallback(templatePath string, fallbackName string, fallbackTemplate string) (*template.Template, error) {
	funcMap := template.FuncMap{
		"join": strings.Join,
		"inc": func(i int) int {
			return i + 1
		},
	}

	if templatePath != "" {
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
	}

	tmpl, err := template.New(fallbackName).
		Funcs(funcMap).
		Parse(fallbackTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}

	return tmpl, nil
}
