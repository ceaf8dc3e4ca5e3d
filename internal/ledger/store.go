package ledger

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoSave is returned by Store.Load when nothing has been saved yet.
var ErrNoSave = errors.New("ledger: no saved table")

// Store reads and writes the encoded table.
type Store interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

// MemoryStore keeps nothing. Loads report ErrNoSave and saves are dropped.
type MemoryStore struct{}

// Load implements Store.
func (MemoryStore) Load() ([]byte, error) { return nil, ErrNoSave }

// Save implements Store.
func (MemoryStore) Save([]byte) error { return nil }

// FileStore keeps the table in a plain text file.
type FileStore struct {
	Path string
}

// DefaultPath returns ~/.invaders/highscores.txt.
func DefaultPath() string {
	return "~/.invaders/highscores.txt"
}

// NewFileStore expands a leading ~ in path.
func NewFileStore(path string) (FileStore, error) {
	if path == "" {
		path = DefaultPath()
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return FileStore{}, fmt.Errorf("ledger: get home dir: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}
	return FileStore{Path: path}, nil
}

// Load implements Store.
func (f FileStore) Load() ([]byte, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoSave
	}
	if err != nil {
		return nil, fmt.Errorf("ledger: read %s: %w", f.Path, err)
	}
	return data, nil
}

// Save implements Store. The file is replaced atomically via a temp file.
func (f FileStore) Save(data []byte) error {
	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ledger: create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".highscores-*")
	if err != nil {
		return fmt.Errorf("ledger: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close() //nolint:errcheck // write error takes precedence
		return fmt.Errorf("ledger: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("ledger: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.Path); err != nil {
		return fmt.Errorf("ledger: replace %s: %w", f.Path, err)
	}
	return nil
}
