// Package testutil provides shared test helpers for config files and a fake completion provider.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/genki-tutor/internal/inference/openai"
)

// SetupTestConfig writes a config file using the openai provider at
// openAIURL and a two lesson catalogue next to it.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, openAIURL string) string {
	t.Helper()

	lessonsFile := filepath.Join(tmpDir, "lessons.json")
	require.NoError(t, os.WriteFile(lessonsFile, []byte(`{"lessons": ["Lesson 1: New Friends", "Lesson 2: Shopping"]}`), 0644))

	configContent := fmt.Sprintf(`provider: openai
lessons:
  file: %s
openai:
  api_key: sk-test
  model: gpt-3.5-turbo
  base_url: %s
`, lessonsFile, openAIURL)

	configPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	return configPath
}

// NewFakeOpenAIServer replies to every chat completion with content.
// A non-zero status other than 200 is returned as an error response instead.
func NewFakeOpenAIServer(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != 0 && status != http.StatusOK {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"error": {"message": "fake failure"}}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			Choices: []openai.Choice{
				{
					Message:      openai.ChoiceMessage{Role: openai.RoleAssistant, Content: content},
					FinishReason: "stop",
				},
			},
		})
	}))
	t.Cleanup(server.Close)
	return server
}
