package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DiskStorage writes uploads under a local directory served at /uploads/.
type DiskStorage struct {
	dir string
}

func NewDiskStorage(dir string) (*DiskStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &DiskStorage{dir: dir}, nil
}

func (s *DiskStorage) Save(_ context.Context, objectName string, file io.Reader, _ int64, _ string) (string, error) {
	// objectName is server-generated, but strip any path just in case
	objectName = filepath.Base(objectName)

	dst, err := os.Create(filepath.Join(s.dir, objectName))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return "/uploads/" + objectName, nil
}

func (s *DiskStorage) Delete(_ context.Context, objectName string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(objectName)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete upload file: %w", err)
	}

	return nil
}
