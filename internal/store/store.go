package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/goldenbell/qbank/internal/model"
)

// Save writes questions as an indented JSON array ordered by id, creating
// the parent directory if needed and replacing any existing file
func Save(path string, questions []model.Question) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	sorted := make([]model.Question, len(questions))
	copy(sorted, questions)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sorted); err != nil {
		return fmt.Errorf("encode questions: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Load reads a question file written by Save
func Load(path string) ([]model.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var questions []model.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return questions, nil
}
