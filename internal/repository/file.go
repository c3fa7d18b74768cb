package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const filePerm = 0644

// File stores the document at path. Writes go to a temporary file in the same
// directory which is renamed over path, so readers see either the old or the
// new document, never a truncated one.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{
		path: path,
	}
}

func (f *File) Path() string {
	return f.path
}

func (f *File) Read(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, NotFoundErr
	}
	if err != nil {
		return nil, fmt.Errorf("repository.File.Read %s: %w", f.path, err)
	}
	return data, nil
}

func (f *File) Write(_ context.Context, data []byte) error {
	dir, base := filepath.Split(f.path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("repository.File.Write couldn't create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			if rmErr := os.Remove(tmpName); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
				logrus.Errorf("repository.File.Write couldn't remove temp file %s: %v", tmpName, rmErr)
			}
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("repository.File.Write couldn't write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("repository.File.Write couldn't sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("repository.File.Write couldn't close temp file: %w", err)
	}
	if err = os.Chmod(tmpName, filePerm); err != nil {
		return fmt.Errorf("repository.File.Write couldn't chmod temp file: %w", err)
	}
	if err = os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("repository.File.Write couldn't replace %s: %w", f.path, err)
	}
	return nil
}

var _ Document = (*File)(nil)
