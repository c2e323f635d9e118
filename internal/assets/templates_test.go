package assets

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLessonNotesTemplate(t *testing.T) {
	tests := []struct {
		name         string
		templatePath string

		wantTemplateName string

		templateData         interface{}
		wantTemplateContents string
	}{
		{
			name: "uses filesystem template when available",
			templatePath: func(t *testing.T) string {
				tmpDir := t.TempDir()
				templatePath := filepath.Join(tmpDir, "custom.md.go.tmpl")
				content := `Custom: {{ .Title }} ({{ join .Examples ", " }})`
				err := os.WriteFile(templatePath, []byte(content), 0644)
				require.NoError(t, err)
				return templatePath
			}(t),
			wantTemplateName: "custom.md.go.tmpl",
			templateData: LessonNotesTemplate{
				Title:    "Lesson 1: New Friends",
				Examples: []string{"a", "b"},
			},
			wantTemplateContents: "Custom: Lesson 1: New Friends (a, b)",
		},
		{
			name:             "uses embedded template when file doesn't exist",
			templatePath:     "/non/existent/invalid.md.go.tmpl",
			wantTemplateName: "lesson-notes.md.go.tmpl",
			templateData: LessonNotesTemplate{
				Title: "Lesson 1: New Friends",
				Sections: []LessonNotesSection{
					{GrammarPoint: "X は Y です", Explanation: "Topic marker"},
				},
				Examples: []string{"わたしはがくせいです。"},
			},
			wantTemplateContents: "# Lesson 1: New Friends\n\n## Grammar points\n\n### 1. X は Y です\n\nTopic marker\n\n## Examples\n\n- わたしはがくせいです。\n",
		},
		{
			name:             "uses embedded template when path is empty",
			templatePath:     "",
			wantTemplateName: "lesson-notes.md.go.tmpl",
			templateData: LessonNotesTemplate{
				Title:       "Lesson 2: Shopping",
				GeneratedAt: time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC),
			},
			wantTemplateContents: "# Lesson 2: Shopping\n\n_Generated on 2026-10-18_\n\n## Grammar points\n\nNo grammar points were generated.\n",
		},
		{
			name: "uses embedded template when filesystem template is invalid",
			templatePath: func(t *testing.T) string {
				tmpDir := t.TempDir()
				templatePath := filepath.Join(tmpDir, "invalid.md.go.tmpl")
				err := os.WriteFile(templatePath, []byte(`Bad: {{ .Unclosed`), 0644)
				require.NoError(t, err)
				return templatePath
			}(t),
			wantTemplateName: "lesson-notes.md.go.tmpl",
			templateData: LessonNotesTemplate{
				Title: "Lesson 3",
				Sections: []LessonNotesSection{
					{GrammarPoint: "Verb conjugation"},
					{GrammarPoint: "Particles", Explanation: "に and で"},
				},
			},
			wantTemplateContents: "# Lesson 3\n\n## Grammar points\n\n### 1. Verb conjugation\n\n### 2. Particles\n\nに and で\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := ParseLessonNotesTemplate(tt.templatePath)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTemplateName, tmpl.Name())

			var buf bytes.Buffer
			require.NoError(t, tmpl.Execute(&buf, tt.templateData))
			assert.Equal(t, tt.wantTemplateContents, buf.String())
		})
	}
}

func TestWriteLessonNotes(t *testing.T) {
	var buf bytes.Buffer
	err := WriteLessonNotes(&buf, "", LessonNotesTemplate{Title: "Lesson 4"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "# Lesson 4\n")
}
