// Package lessons serves the static lesson catalogue.
package lessons

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalogue reads the lesson file on every Load, so edits show up without a restart.
type Catalogue struct {
	path string
}

func NewCatalogue(path string) *Catalogue {
	return &Catalogue{path: path}
}

// Load returns the parsed catalogue as is. YAML is used for .yaml and .yml files, JSON otherwise.
// JSON numbers are kept as json.Number so large integers survive re-encoding.
// YAML mapping keys are turned into strings so the result can be encoded as JSON.
func (c *Catalogue) Load() (any, error) {
	content, err := os.ReadFile(c.path)
	if err != nil {
		return nil, err
	}

	var lessons any
	switch strings.ToLower(filepath.Ext(c.path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &lessons); err != nil {
			return nil, fmt.Errorf("yaml.Unmarshal(%s) > %w", c.path, err)
		}
		return stringKeys(lessons), nil
	default:
		decoder := json.NewDecoder(bytes.NewReader(content))
		decoder.UseNumber()
		if err := decoder.Decode(&lessons); err != nil {
			return nil, fmt.Errorf("decoder.Decode(%s) > %w", c.path, err)
		}
		if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decoder.Decode(%s) > unexpected data after the top-level value", c.path)
		}
		return lessons, nil
	}
}

func stringKeys(value any) any {
	switch v := value.(type) {
	case map[string]any:
		for key, item := range v {
			v[key] = stringKeys(item)
		}
		return v
	case map[any]any:
		converted := make(map[string]any, len(v))
		for key, item := range v {
			converted[fmt.Sprint(key)] = stringKeys(item)
		}
		return converted
	case []any:
		for i, item := range v {
			v[i] = stringKeys(item)
		}
		return v
	default:
		return value
	}
}

// Titles returns the "lessons" list of a catalogue shaped as {"lessons": [...]}.
func Titles(catalogue any) ([]string, error) {
	document, ok := catalogue.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("catalogue is not an object: %T", catalogue)
	}
	items, ok := document["lessons"].([]any)
	if !ok {
		return nil, fmt.Errorf(`catalogue has no "lessons" list`)
	}

	titles := make([]string, 0, len(items))
	for _, item := range items {
		title, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("lesson title is not a string: %v", item)
		}
		titles = append(titles, title)
	}
	return titles, nil
}
