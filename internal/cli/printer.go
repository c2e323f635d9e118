package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/at-ishikawa/genki-tutor/internal/assets"
	"github.com/at-ishikawa/genki-tutor/internal/tutor"
)

var (
	headingColor = color.New(color.Bold, color.FgCyan)
	labelColor   = color.New(color.Bold)
)

func PrintExplanation(w io.Writer, term string, explanation tutor.Explanation) {
	_, _ = headingColor.Fprintln(w, term)
	_, _ = fmt.Fprintln(w, explanation.Explanation)
	printList(w, "Examples", explanation.Examples)
}

func PrintNotes(w io.Writer, term string, notes tutor.Notes) {
	_, _ = headingColor.Fprintln(w, term)
	_, _ = labelColor.Fprint(w, "Summary: ")
	_, _ = fmt.Fprintln(w, notes.Summary)
	if notes.Usage != "" {
		_, _ = labelColor.Fprint(w, "Usage: ")
		_, _ = fmt.Fprintln(w, notes.Usage)
	}
	printList(w, "Examples", notes.Examples)
}

func PrintLessonTitles(w io.Writer, titles []string) {
	for i, title := range titles {
		_, _ = fmt.Fprintf(w, "%2d. %s\n", i+1, title)
	}
}

func printList(w io.Writer, label string, items []string) {
	if len(items) == 0 {
		return
	}
	_, _ = labelColor.Fprintf(w, "%s:\n", label)
	for _, item := range items {
		_, _ = fmt.Fprintf(w, "  - %s\n", item)
	}
}

// NewLessonNotesTemplate pairs every grammar point with the explanation at
// the same index. The longer list decides how many sections are produced.
func NewLessonNotesTemplate(notes tutor.LessonNotes, generatedAt time.Time) assets.LessonNotesTemplate {
	sections := make([]assets.LessonNotesSection, max(len(notes.GrammarPoints), len(notes.Explanations)))
	for i := range sections {
		if i < len(notes.GrammarPoints) {
			sections[i].GrammarPoint = notes.GrammarPoints[i]
		}
		if i < len(notes.Explanations) {
			sections[i].Explanation = notes.Explanations[i]
		}
	}
	return assets.LessonNotesTemplate{
		Title:       notes.Title,
		GeneratedAt: generatedAt,
		Sections:    sections,
		Examples:    notes.Examples,
	}
}
