package main

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/genki-tutor/internal/testutil"
)

const lessonOneNotes = `{
  "title": "Lesson 1: New Friends",
  "grammar_points": ["X は Y です"],
  "explanations": ["は marks the topic."],
  "examples": ["わたしはがくせいです。"]
}`

func TestLessonsCommand(t *testing.T) {
	server := testutil.NewFakeOpenAIServer(t, http.StatusOK, "")
	useTestConfigFile(t, server.URL)

	got, err := executeCommand(t, []string{"lessons", "--config", configFile}, "")
	require.NoError(t, err)
	assert.Equal(t, " 1. Lesson 1: New Friends\n 2. Lesson 2: Shopping\n", got)
}

func TestLessonsCommand_MissingCatalogue(t *testing.T) {
	server := testutil.NewFakeOpenAIServer(t, http.StatusOK, "")
	tmpDir := useTestConfigFile(t, server.URL)
	require.NoError(t, os.Remove(filepath.Join(tmpDir, "lessons.json")))

	_, err := executeCommand(t, []string{"lessons", "--config", configFile}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalogue.Load()")
}

func TestLessonNotesCommand(t *testing.T) {
	t.Run("writes markdown to stdout", func(t *testing.T) {
		server := testutil.NewFakeOpenAIServer(t, http.StatusOK, lessonOneNotes)
		useTestConfigFile(t, server.URL)

		got, err := executeCommand(t, []string{"lesson", "notes", "Lesson 1: New Friends", "--config", configFile}, "")
		require.NoError(t, err)
		assert.Contains(t, got, "# Lesson 1: New Friends\n")
		assert.Contains(t, got, "### 1. X は Y です\n\nは marks the topic.\n")
		assert.Contains(t, got, "- わたしはがくせいです。\n")
	})

	t.Run("writes markdown to the output directory", func(t *testing.T) {
		server := testutil.NewFakeOpenAIServer(t, http.StatusOK, lessonOneNotes)
		useTestConfigFile(t, server.URL)
		outputDirectory := filepath.Join(t.TempDir(), "notes")

		got, err := executeCommand(t, []string{"lesson", "notes", "Lesson 1: New Friends", "--output", outputDirectory, "--config", configFile}, "")
		require.NoError(t, err)

		markdownPath := filepath.Join(outputDirectory, "lesson-1-new-friends.md")
		assert.Equal(t, "Markdown written to "+markdownPath+"\n", got)
		content, err := os.ReadFile(markdownPath)
		require.NoError(t, err)
		assert.Contains(t, string(content), "## Grammar points")
	})

	t.Run("pdf requires an output directory", func(t *testing.T) {
		_, err := executeCommand(t, []string{"lesson", "notes", "Lesson 1", "--pdf"}, "")
		require.Error(t, err)
		assert.Equal(t, "--pdf requires --output", err.Error())
	})
}

func TestLessonQuizCommand(t *testing.T) {
	tests := []struct {
		name              string
		status            int
		content           string
		stdin             string
		wantOutputs       []string
		wantErrorContains string
	}{
		{
			name: "runs the quiz",
			content: `{"title": "Lesson 1: New Friends", "questions": [
				{"question": "How do you say 'student'?", "choices": ["がくせい", "せんせい", "ともだち", "にほんじん"], "answer": "がくせい"},
				{"question": "How do you say 'teacher'?", "choices": ["がくせい", "せんせい", "ともだち", "にほんじん"], "answer": "せんせい"}
			]}`,
			stdin: "1\n1\n",
			wantOutputs: []string{
				"Starting Lesson 1: New Friends with 2 questions\n",
				"❌ Incorrect. The answer is せんせい\n",
				"Score: 1 / 2\n",
			},
		},
		{
			name:              "fails when no questions are generated",
			status:            http.StatusInternalServerError,
			wantErrorContains: "no questions were generated for Lesson 1: New Friends",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := testutil.NewFakeOpenAIServer(t, tt.status, tt.content)
			useTestConfigFile(t, server.URL)

			got, err := executeCommand(t, []string{"lesson", "quiz", "Lesson 1: New Friends", "--config", configFile}, tt.stdin)
			if tt.wantErrorContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrorContains)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.wantOutputs {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestLessonFileName(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{title: "Lesson 1: New Friends", want: "lesson-1-new-friends"},
		{title: "  Lesson 12 -- Feeling Ill  ", want: "lesson-12-feeling-ill"},
		{title: "第1課 あたらしいともだち", want: "第1課-あたらしいともだち"},
		{title: "!!!", want: "lesson"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, lessonFileName(tt.title))
		})
	}
}
