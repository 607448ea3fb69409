package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"ngoportal/internal/config"
)

// MinIOStorage keeps uploads in an object-storage bucket instead of the
// local disk. Selected with STORAGE_BACKEND=minio.
type MinIOStorage struct {
	client *minio.Client
	cfg    config.MinIO
}

func NewMinIOStorage(cfg *config.Config) (*MinIOStorage, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize MinIO client: %w", err)
	}

	return &MinIOStorage{client: client, cfg: cfg.MinIO}, nil
}

func (s *MinIOStorage) Save(ctx context.Context, objectName string, file io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.cfg.BucketName, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"uploaded-at": time.Now().Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", fmt.Errorf("failed to upload to MinIO: %w", err)
	}

	scheme := "http"
	if s.cfg.UseSSL {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.Endpoint, s.cfg.BucketName, objectName), nil
}

func (s *MinIOStorage) Delete(ctx context.Context, objectName string) error {
	err := s.client.RemoveObject(ctx, s.cfg.BucketName, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete from MinIO: %w", err)
	}

	return nil
}
