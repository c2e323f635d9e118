// Package tutor turns study requests into provider prompts and provider
// replies into typed results, falling back to fixed placeholders on failure.
package tutor

import (
	"context"
	"log/slog"
	"time"

	"github.com/at-ishikawa/genki-tutor/internal/inference"
)

// Service runs one prompt, one completion call and one normalization per request.
// None of its methods return an error; failures produce the use case's fallback.
// The returned Reply encodes to the provider's reply unchanged when it was accepted.
type Service struct {
	client    inference.Client
	prompts   *PromptBuilder
	validator Validator
}

type Option func(*Service)

// WithValidator enables strict normalization: decoded replies failing v fall back.
func WithValidator(v Validator) Option {
	return func(s *Service) {
		s.validator = v
	}
}

// WithClock replaces the clock used for prompt freshness tokens.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.prompts = NewPromptBuilder(now)
	}
}

func NewService(client inference.Client, opts ...Option) *Service {
	s := &Service{
		client:  client,
		prompts: NewPromptBuilder(time.Now),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Quiz(ctx context.Context, req QuizRequest) Reply[Quiz] {
	prompt, err := s.prompts.Quiz(req)
	return generate(ctx, s, "quiz", prompt, err, inference.QuizSampling, QuizFallback())
}

func (s *Service) Explain(ctx context.Context, req ExplainRequest) Reply[Explanation] {
	prompt, err := s.prompts.Explain(req)
	return generate(ctx, s, "explain", prompt, err, inference.ExplainSampling, ExplanationFallback())
}

func (s *Service) Notes(ctx context.Context, req NotesRequest) Reply[Notes] {
	prompt, err := s.prompts.Notes(req)
	return generate(ctx, s, "notes", prompt, err, inference.NotesSampling, NotesFallback())
}

func (s *Service) LessonNotes(ctx context.Context, req LessonNotesRequest) Reply[LessonNotes] {
	prompt, err := s.prompts.LessonNotes(req)
	return generate(ctx, s, "lesson_notes", prompt, err, inference.NotesSampling, LessonNotesFallback(req.LessonTitle))
}

func (s *Service) LessonQuiz(ctx context.Context, req LessonQuizRequest) Reply[LessonQuiz] {
	prompt, err := s.prompts.LessonQuiz(req)
	return generate(ctx, s, "lesson_quiz", prompt, err, inference.NotesSampling, LessonQuizFallback(req.LessonTitle))
}

func generate[T any](
	ctx context.Context,
	s *Service,
	useCase string,
	prompt string,
	promptErr error,
	sampling inference.SamplingParams,
	fallback T,
) Reply[T] {
	raw, err := "", promptErr
	if err == nil {
		raw, err = s.client.Complete(ctx, inference.CompletionRequest{
			Prompt:   prompt,
			Sampling: sampling,
		})
	}

	result, err := Normalize(raw, err, fallback, s.validator)
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed to generate a response, returning a fallback",
			slog.String("use_case", useCase),
			slog.Any("error", err),
		)
	}
	return result
}
