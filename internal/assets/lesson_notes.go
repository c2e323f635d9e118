package assets

import (
	"fmt"
	"io"
	"time"
)

// LessonNotesTemplate is the data passed to the lesson notes markdown template
type LessonNotesTemplate struct {
	Title       string
	GeneratedAt time.Time
	Sections    []LessonNotesSection
	Examples    []string
}

// LessonNotesSection pairs a grammar point with its explanation
type LessonNotesSection struct {
	GrammarPoint string
	Explanation  string
}

func WriteLessonNotes(output io.Writer, templatePath string, templateData LessonNotesTemplate) error {
	tmpl, err := ParseLessonNotesTemplate(templatePath)
	if err != nil {
		return fmt.Errorf("ParseLessonNotesTemplate() > %w", err)
	}
	if err := tmpl.Execute(output, templateData); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
