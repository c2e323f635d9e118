package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_cli "github.com/at-ishikawa/genki-tutor/internal/mocks/cli"
	"github.com/at-ishikawa/genki-tutor/internal/tutor"
)

func init() {
	color.NoColor = true
}

func lessonOneQuiz() tutor.LessonQuiz {
	return tutor.LessonQuiz{
		Title: "Lesson 1: New Friends",
		Questions: []tutor.LessonQuestion{
			{
				Question: "How do you say 'book'?",
				Choices:  []string{"ほん", "えんぴつ", "かさ", "かばん"},
				Answer:   "ほん",
			},
			{
				Question: "How do you say 'umbrella'?",
				Choices:  []string{"ほん", "えんぴつ", "かさ", "かばん"},
				Answer:   "かさ",
			},
		},
	}
}

func TestQuizCLI_Run(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantCorrect  int
		wantAnswered int
		wantOutputs  []string
	}{
		{
			name:         "all answers by number",
			input:        "1\n3\n",
			wantCorrect:  2,
			wantAnswered: 2,
			wantOutputs: []string{
				"Q1. How do you say 'book'?\n  1) ほん\n  2) えんぴつ\n  3) かさ\n  4) かばん\nYour answer: ✅ Correct!\n",
				"Q2. How do you say 'umbrella'?\n",
				"Score: 2 / 2\n",
			},
		},
		{
			name:         "invalid input is asked again and not counted",
			input:        "5\nほん\nかばん\n",
			wantCorrect:  1,
			wantAnswered: 2,
			wantOutputs: []string{
				"Enter a number between 1 and 4 or the text of a choice.\n",
				"❌ Incorrect. The answer is かさ\n",
				"Score: 1 / 2\n",
			},
		},
		{
			name:         "last answer without a newline",
			input:        "1\n2",
			wantCorrect:  1,
			wantAnswered: 2,
			wantOutputs: []string{
				"Score: 1 / 2\n",
			},
		},
		{
			name:         "end of input stops the quiz",
			input:        "",
			wantCorrect:  0,
			wantAnswered: 0,
			wantOutputs: []string{
				"Score: 0 / 0\n",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout bytes.Buffer
			quizCLI := NewLessonQuizCLI(lessonOneQuiz(), strings.NewReader(tt.input), &stdout)

			err := quizCLI.Run(context.Background(), quizCLI)
			require.NoError(t, err)

			gotCorrect, gotAnswered := quizCLI.Score()
			assert.Equal(t, tt.wantCorrect, gotCorrect)
			assert.Equal(t, tt.wantAnswered, gotAnswered)
			for _, want := range tt.wantOutputs {
				assert.Contains(t, stdout.String(), want)
			}
		})
	}
}

func TestQuizCLI_Run_SessionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock_cli.NewMockSession(ctrl)
	session.EXPECT().Session(gomock.Any()).Return(nil)
	session.EXPECT().Session(gomock.Any()).Return(errors.New("boom"))

	var stdout bytes.Buffer
	quizCLI := NewQuizCLI(nil, strings.NewReader(""), &stdout)
	err := quizCLI.Run(context.Background(), session)
	require.Error(t, err)
	assert.Equal(t, "error: boom", err.Error())
	assert.NotContains(t, stdout.String(), "Score:")
}

func TestNewSingleQuizCLI(t *testing.T) {
	var stdout bytes.Buffer
	quizCLI := NewSingleQuizCLI(tutor.Quiz{
		Question:      "What does たべる mean?",
		Choices:       []string{"to eat", "to drink", "to sleep", "to go"},
		CorrectAnswer: "to eat",
	}, strings.NewReader("to eat\n"), &stdout)

	require.NoError(t, quizCLI.Run(context.Background(), quizCLI))
	assert.Equal(t,
		"Q1. What does たべる mean?\n  1) to eat\n  2) to drink\n  3) to sleep\n  4) to go\nYour answer: ✅ Correct!\n\nScore: 1 / 1\n",
		stdout.String(),
	)
}

func TestResolveChoice(t *testing.T) {
	choices := []string{"a", "b", "c", "d"}
	tests := []struct {
		name    string
		choices []string
		input   string
		want    string
		wantOK  bool
	}{
		{name: "number", choices: choices, input: "2\n", want: "b", wantOK: true},
		{name: "text", choices: choices, input: " c ", want: "c", wantOK: true},
		{name: "out of range", choices: choices, input: "0", wantOK: false},
		{name: "unknown text", choices: choices, input: "e", wantOK: false},
		{name: "blank", choices: choices, input: "\n", wantOK: false},
		{name: "free text without choices", choices: []string{}, input: "anything\n", want: "anything", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := resolveChoice(tt.choices, tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
