package jsonstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"github.com/idilsaglam/attendance/internal/model"
)

// JSON-backed storage. Whole file, human-readable, rewritten in full.
// No locking; one local user at a time.

// ReadFile decodes the JSON document at path into v.
// A missing file is model.ErrNotFound, bad content is model.ErrParse.
func ReadFile(path string, v any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", model.ErrNotFound, path)
		}
		return fmt.Errorf("read file: %w", err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("%w: %s: %v", model.ErrParse, path, err)
	}
	return nil
}

// WriteFile replaces the file at path with v encoded as indented JSON.
// The write goes to a temp file that is renamed over path, so a failure
// leaves the previous contents in place.
func WriteFile(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	b = append(b, '\n')
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(b)); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
