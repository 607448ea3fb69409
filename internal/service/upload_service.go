package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"ngoportal/internal/storage"
)

var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var allowedMIMETypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type UploadService interface {
	Store(ctx context.Context, fileName string, file io.ReadSeeker, size int64) (string, error)
}

type uploadService struct {
	storage storage.Storage
	maxSize int64
}

func NewUploadService(store storage.Storage, maxSize int64) UploadService {
	return &uploadService{storage: store, maxSize: maxSize}
}

// Store persists one image and returns its public URL path. Both the file
// extension and the sniffed content must be on the image allow-list, so a
// renamed binary is rejected regardless of size.
func (s *uploadService) Store(ctx context.Context, fileName string, file io.ReadSeeker, size int64) (string, error) {
	if size > s.maxSize {
		return "", ErrPayloadTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedMediaType
	}

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return "", fmt.Errorf("failed to sniff file type: %w", err)
	}
	if !allowedMIMETypes[mtype.String()] {
		return "", ErrUnsupportedMediaType
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to rewind upload: %w", err)
	}

	// timestamp + random suffix: identical bytes still produce distinct files
	objectName := fmt.Sprintf("upload_%d_%s%s", time.Now().UnixNano(), uuid.New().String(), ext)

	url, err := s.storage.Save(ctx, objectName, file, size, mtype.String())
	if err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}

	return url, nil
}
