package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nakachan-ing/kanban-cli/internal/model"
)

// KV is the synchronous key-value slot the board persists into.
type KV interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
}

// Store is a KV that owns a resource.
type Store interface {
	KV
	Close() error
}

// FileKV keeps one JSON file per key under Dir.
type FileKV struct {
	Dir string
}

func NewFileKV(dir string) *FileKV {
	return &FileKV{Dir: dir}
}

func (f *FileKV) path(key string) string {
	return filepath.Join(f.Dir, key+".json")
}

func (f *FileKV) Get(key string) ([]byte, bool, error) {
	filePath := f.path(key)
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, fmt.Errorf("failed to check JSON file: %w", err)
	}

	jsonBytes, err := os.ReadFile(filePath)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read JSON file: %w", err)
	}
	return jsonBytes, true, nil
}

func (f *FileKV) Set(key string, value []byte) error {
	if err := os.MkdirAll(f.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory (%s): %w", f.Dir, err)
	}

	// Replace via rename; the slot is never observed half-written.
	filePath := f.path(key)
	tmp := filePath + ".tmp"
	if err := os.WriteFile(tmp, value, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}
	if err := os.Rename(tmp, filePath); err != nil {
		return fmt.Errorf("failed to replace JSON file: %w", err)
	}
	return nil
}

func (f *FileKV) Close() error { return nil }

// MemoryKV is an in-process slot, used for --ephemeral sessions and tests.
type MemoryKV struct {
	data map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: map[string][]byte{}}
}

func (m *MemoryKV) Get(key string) ([]byte, bool, error) {
	value, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

func (m *MemoryKV) Set(key string, value []byte) error {
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryKV) Close() error { return nil }

// Open returns the backend named by config.Storage.Backend.
func Open(config model.Config) (Store, error) {
	switch strings.ToLower(config.Storage.Backend) {
	case "", "file":
		return NewFileKV(config.DataDir), nil
	case "sqlite":
		return OpenSQLite(config.Storage.Path)
	case "memory":
		return NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %q", config.Storage.Backend)
	}
}
