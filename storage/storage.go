// Package storage provides the file-backed blob store the task
// collection is persisted to. The blob is opaque at this layer; the
// task package decides its shape.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// FileStore stores the blob in a single file, written atomically via a
// temp file and rename. Concurrent daytask invocations are serialized
// with an exclusive flock on a sibling lock file.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the file at path. The parent
// directory is created lazily on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file's path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the stored blob. A missing file means nothing has been
// stored yet and returns nil without error.
func (s *FileStore) Load() ([]byte, error) {
	var data []byte
	err := s.withLock(func() error {
		var err error
		data, err = os.ReadFile(s.path)
		if os.IsNotExist(err) {
			data = nil
			return nil
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return data, nil
}

// Save replaces the stored blob.
func (s *FileStore) Save(data []byte) error {
	err := s.withLock(func() error {
		return writeFileAtomic(s.path, data)
	})
	if err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// withLock executes fn while holding an exclusive lock on the store's
// lock file, creating parent directories as needed.
func (s *FileStore) withLock(fn func() error) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create parent dir: %w", err)
	}

	f, err := os.OpenFile(s.path+".lock", os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}
	defer f.Close()

	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer syscall.Flock(int(f.Fd()), syscall.LOCK_UN)

	return fn()
}

func writeFileAtomic(path string, data []byte) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
