package storage

import (
	"context"
	"fmt"
	"io"

	"ngoportal/internal/config"
)

// Storage persists uploaded files and hands back the URL path clients
// embed in imageUrl fields.
type Storage interface {
	Save(ctx context.Context, objectName string, file io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, objectName string) error
}

func NewStorage(cfg *config.Config) (Storage, error) {
	switch cfg.StorageBackend {
	case "local", "":
		return NewDiskStorage(cfg.UploadDir)
	case "minio":
		return NewMinIOStorage(cfg)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
