package tutor

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/genki-tutor/internal/inference"
	mock_inference "github.com/at-ishikawa/genki-tutor/internal/mocks/inference"
	"github.com/at-ishikawa/genki-tutor/internal/validation"
)

// promptContains matches a CompletionRequest by sampling and prompt substrings.
type promptContains struct {
	sampling inference.SamplingParams
	parts    []string
}

func (m promptContains) Matches(x any) bool {
	req, ok := x.(inference.CompletionRequest)
	if !ok || req.Sampling != m.sampling {
		return false
	}
	for _, part := range m.parts {
		if !strings.Contains(req.Prompt, part) {
			return false
		}
	}
	return true
}

func (m promptContains) String() string {
	return fmt.Sprintf("prompt containing %q with sampling %+v", m.parts, m.sampling)
}

func mustStrictValidator(t *testing.T) Validator {
	t.Helper()
	v, err := validation.New("json")
	require.NoError(t, err)
	return v
}

func TestService_Quiz(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		err   error
		want  Quiz
	}{
		{
			name:  "returns the provider quiz",
			reply: `{"question": "What does ごご mean?", "choices": ["A) AM", "B) PM", "C) Morning", "D) Time"], "correct_answer": "B) PM"}`,
			want: Quiz{
				Question:      "What does ごご mean?",
				Choices:       []string{"A) AM", "B) PM", "C) Morning", "D) Time"},
				CorrectAnswer: "B) PM",
			},
		},
		{
			name:  "non-JSON reply returns the fallback",
			reply: "I cannot do that.",
			want:  QuizFallback(),
		},
		{
			name: "provider error returns the fallback",
			err:  &inference.ProviderError{Provider: "openai", Err: inference.ErrMissingCredential},
			want: QuizFallback(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mock_inference.NewMockClient(ctrl)
			client.EXPECT().
				Complete(gomock.Any(), promptContains{
					sampling: inference.QuizSampling,
					parts:    []string{"Topic: particles", "Difficulty: easy", "Request ID: 1718000000.000000"},
				}).
				Return(tt.reply, tt.err).
				Times(1)

			service := NewService(client, WithClock(fixedClock(time.Unix(1718000000, 0))))
			got := service.Quiz(context.Background(), QuizRequest{Topic: "particles", Difficulty: "easy"})
			assert.Equal(t, tt.want, got.Value)
		})
	}
}

func TestService_Explain(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_inference.NewMockClient(ctrl)
	client.EXPECT().
		Complete(gomock.Any(), promptContains{sampling: inference.ExplainSampling, parts: []string{"'ごご'"}}).
		Return("ごご means PM.", nil).
		Times(1)

	got := NewService(client).Explain(context.Background(), ExplainRequest{Term: "ごご"})
	assert.Equal(t, Reply[Explanation]{Value: ExplanationFallback()}, got)
}

func TestService_Notes(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_inference.NewMockClient(ctrl)
	client.EXPECT().
		Complete(gomock.Any(), promptContains{sampling: inference.NotesSampling, parts: []string{"'ごご'", "Topic: vocabulary", "Context: time"}}).
		Return(`{"summary": "ごご means afternoon or p.m.", "usage": "Put it before a time.", "examples": ["ごご三時です。 - It is 3 p.m."]}`, nil).
		Times(1)

	got := NewService(client).Notes(context.Background(), NotesRequest{Term: "ごご", Topic: DefaultNotesTopic, Context: "time"})
	assert.Equal(t, Notes{
		Summary:  "ごご means afternoon or p.m.",
		Usage:    "Put it before a time.",
		Examples: []string{"ごご三時です。 - It is 3 p.m."},
	}, got.Value)
	assert.Equal(t, `{"summary":"ごご means afternoon or p.m.","usage":"Put it before a time.","examples":["ごご三時です。 - It is 3 p.m."]}`, string(got.Raw))
}

func TestService_LessonNotes(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_inference.NewMockClient(ctrl)
	client.EXPECT().
		Complete(gomock.Any(), promptContains{sampling: inference.NotesSampling, parts: []string{"'Lesson 4'"}}).
		Return(`{"title": "Lesson 4", "grammar_points": ["あります/います"]`, nil).
		Times(1)

	got := NewService(client).LessonNotes(context.Background(), LessonNotesRequest{LessonTitle: "Lesson 4"})
	assert.Equal(t, Reply[LessonNotes]{Value: LessonNotesFallback("Lesson 4")}, got)
}

func TestService_LessonQuiz(t *testing.T) {
	tests := []struct {
		name    string
		options []Option
		reply   string
		want    LessonQuiz
	}{
		{
			name:  "permissive passthrough keeps short choice lists",
			reply: `{"title": "Lesson 1", "questions": [{"question": "q", "choices": ["a", "b"], "answer": "a"}]}`,
			want: LessonQuiz{
				Title:     "Lesson 1",
				Questions: []LessonQuestion{{Question: "q", Choices: []string{"a", "b"}, Answer: "a"}},
			},
		},
		{
			name:    "strict mode rejects short choice lists",
			options: []Option{WithValidator(mustStrictValidator(t))},
			reply:   `{"title": "Lesson 1", "questions": [{"question": "q", "choices": ["a", "b"], "answer": "a"}]}`,
			want:    LessonQuizFallback("Lesson 1"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mock_inference.NewMockClient(ctrl)
			client.EXPECT().
				Complete(gomock.Any(), promptContains{sampling: inference.NotesSampling, parts: []string{"'Lesson 1'", "Request ID: "}}).
				Return(tt.reply, nil).
				Times(1)

			got := NewService(client, tt.options...).LessonQuiz(context.Background(), LessonQuizRequest{LessonTitle: "Lesson 1"})
			assert.Equal(t, tt.want, got.Value)
		})
	}
}
