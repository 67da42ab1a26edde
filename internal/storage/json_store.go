package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rlacademy/rl-academy/internal/colors"
	"github.com/rlacademy/rl-academy/internal/progress"
)

var _ progress.Store = (*JSONStore)(nil)

// JSONStore persists the ledger as a flat JSON object in
// {dir}/{namespace}.json, preserving key order.
type JSONStore struct {
	path    string
	lockDir string
}

// NewJSONStore creates the state directory and returns a store for namespace.
func NewJSONStore(dir, namespace string) (*JSONStore, error) {
	if namespace == "" {
		return nil, fmt.Errorf("json storage: namespace cannot be empty")
	}
	if err := os.MkdirAll(dir, FileModeDir); err != nil {
		return nil, fmt.Errorf("json storage: create state directory: %w", err)
	}
	return &JSONStore{
		path:    filepath.Join(dir, namespace+".json"),
		lockDir: filepath.Join(dir, namespace+".lock"),
	}, nil
}

// Path returns the backing file path.
func (s *JSONStore) Path() string {
	return s.path
}

// Load reads the persisted entries. A missing or empty file yields no entries.
func (s *JSONStore) Load() ([]progress.Entry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("json storage: read %s: %w", s.path, err)
	}
	entries, err := decodeEntries(data)
	if err != nil {
		return nil, fmt.Errorf("json storage: parse %s: %w", s.path, err)
	}
	return entries, nil
}

// Update re-reads the file, applies fn and writes the result, all under the lock.
// A corrupt file is treated as empty and overwritten.
func (s *JSONStore) Update(fn func(current []progress.Entry) []progress.Entry) error {
	return WithLock(s.lockDir, func() error {
		current, err := s.Load()
		if err != nil {
			colors.Warning(fmt.Sprintf("discarding unreadable progress data: %v", err))
			current = nil
		}
		return s.write(fn(current))
	})
}

// write replaces the file atomically via a temp file and rename.
func (s *JSONStore) write(entries []progress.Entry) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("json storage: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(encodeEntries(entries)); err != nil {
		tmp.Close()
		return fmt.Errorf("json storage: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("json storage: close: %w", err)
	}
	if err := os.Chmod(tmp.Name(), FileModeFile); err != nil {
		return fmt.Errorf("json storage: chmod: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("json storage: replace %s: %w", s.path, err)
	}
	return nil
}

// decodeEntries reads a flat object keeping member order.
// Non-boolean values are read as not completed.
func decodeEntries(data []byte) ([]progress.Entry, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}

	var entries []progress.Entry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected key, got %v", tok)
		}
		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		completed, _ := value.(bool)
		entries = append(entries, progress.Entry{Key: key, Completed: completed})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing data after object")
	}
	return entries, nil
}

func encodeEntries(entries []progress.Entry) []byte {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(e.Key)
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.FormatBool(e.Completed))
	}
	buf.WriteString("}\n")
	return buf.Bytes()
}
