package tutor

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
	"time"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var promptTemplates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// PromptBuilder renders the instruction prompt for each use case.
// Every template spells out the JSON shape of the matching result type.
type PromptBuilder struct {
	now func() time.Time
}

// NewPromptBuilder returns a builder using now for freshness tokens.
func NewPromptBuilder(now func() time.Time) *PromptBuilder {
	if now == nil {
		now = time.Now
	}
	return &PromptBuilder{now: now}
}

func (b *PromptBuilder) Quiz(req QuizRequest) (string, error) {
	return execute("quiz.tmpl", struct {
		QuizRequest
		RequestID string
	}{req, b.requestID()})
}

func (b *PromptBuilder) Explain(req ExplainRequest) (string, error) {
	return execute("explain.tmpl", req)
}

func (b *PromptBuilder) Notes(req NotesRequest) (string, error) {
	return execute("notes.tmpl", req)
}

func (b *PromptBuilder) LessonNotes(req LessonNotesRequest) (string, error) {
	return execute("lesson_notes.tmpl", req)
}

func (b *PromptBuilder) LessonQuiz(req LessonQuizRequest) (string, error) {
	return execute("lesson_quiz.tmpl", struct {
		LessonQuizRequest
		RequestID string
	}{req, b.requestID()})
}

// requestID keeps providers from answering a repeated prompt from cache.
func (b *PromptBuilder) requestID() string {
	now := b.now()
	return fmt.Sprintf("%d.%06d", now.Unix(), now.Nanosecond()/int(time.Microsecond))
}

func execute(name string, data any) (string, error) {
	var sb strings.Builder
	if err := promptTemplates.ExecuteTemplate(&sb, name, data); err != nil {
		return "", fmt.Errorf("ExecuteTemplate(%s) > %w", name, err)
	}
	return strings.TrimSuffix(sb.String(), "\n"), nil
}
