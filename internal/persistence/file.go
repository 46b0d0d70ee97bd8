package persistence

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/osse101/fragrewards/internal/domain"
)

// FileStorage keeps each record as a file under a directory
type FileStorage struct {
	dir string
}

// NewFileStorage creates a FileStorage rooted at dir. The directory is
// created on the first write.
func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{dir: dir}
}

// Dir returns the storage root
func (s *FileStorage) Dir() string {
	return s.dir
}

func (s *FileStorage) resolve(path string) (string, error) {
	if !filepath.IsLocal(path) {
		return "", fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, ErrMsgInvalidKey, path)
	}
	return filepath.Join(s.dir, path), nil
}

// Write replaces the file at path with data using a temp file and rename,
// so a crash never leaves a partially written record behind
func (s *FileStorage) Write(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	full, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, DirPermissions); err != nil {
		return fmt.Errorf("%w: creating record dir: %v", domain.ErrStorageFailure, err)
	}

	tmp, err := os.CreateTemp(s.dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %v", domain.ErrStorageFailure, err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: writing temp file: %v", domain.ErrStorageFailure, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: closing temp file: %v", domain.ErrStorageFailure, err)
	}
	if err := os.Rename(tmpPath, full); err != nil {
		return fmt.Errorf("%w: renaming record file: %v", domain.ErrStorageFailure, err)
	}
	committed = true
	return nil
}

// Read returns the file at path
func (s *FileStorage) Read(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	full, err := s.resolve(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(full)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrRecordNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageFailure, err)
	}
	return data, nil
}

// Delete removes the file at path
func (s *FileStorage) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	full, err := s.resolve(path)
	if err != nil {
		return err
	}
	err = os.Remove(full)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", domain.ErrRecordNotFound, path)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageFailure, err)
	}
	return nil
}
