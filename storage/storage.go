// Package storage retains uploaded original documents so a stored
// analysis can always hand back its source file.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Storage interface for document retention operations
type Storage interface {
	// Upload stores a document and returns the storage path
	Upload(ctx context.Context, documentID uuid.UUID, filename string, data io.Reader) (string, error)

	// Download retrieves a document by storage path
	Download(ctx context.Context, storagePath string) (io.ReadCloser, error)

	// Delete removes a document by storage path
	Delete(ctx context.Context, storagePath string) error
}

// StorageType represents the storage backend type
type StorageType string

const (
	StorageTypeLocal StorageType = "local"
	StorageTypeS3    StorageType = "s3"
)

// StorageConfig holds configuration for document storage
type StorageConfig struct {
	Type         StorageType
	LocalPath    string // For local storage
	S3Bucket     string // For S3 storage
	S3Region     string // For S3 storage
	AWSAccessKey string
	AWSSecretKey string
}

// NewStorageFromEnv creates a storage instance from environment variables.
// STORAGE_TYPE selects the backend: local (default) or s3.
func NewStorageFromEnv() (Storage, error) {
	storageType := os.Getenv("STORAGE_TYPE")
	if storageType == "" {
		storageType = "local" // Default to local for development
	}

	switch StorageType(storageType) {
	case StorageTypeLocal:
		localPath := os.Getenv("STORAGE_LOCAL_PATH")
		if localPath == "" {
			localPath = "./storage/documents"
		}
		return NewLocalStorage(localPath)

	case StorageTypeS3:
		cfg := StorageConfig{
			Type:         StorageTypeS3,
			S3Bucket:     os.Getenv("AWS_S3_BUCKET"),
			S3Region:     os.Getenv("AWS_REGION"),
			AWSAccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
			AWSSecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		}
		if cfg.S3Region == "" {
			cfg.S3Region = "us-east-1"
		}
		if cfg.S3Bucket == "" {
			return nil, errors.New("AWS_S3_BUCKET environment variable is required for S3 storage")
		}
		return NewS3Storage(cfg)

	default:
		return nil, fmt.Errorf("unknown storage type: %s", storageType)
	}
}

// documentPath generates a unique storage path for an uploaded document.
// Paths are sharded by the id prefix to keep directories small.
func documentPath(documentID uuid.UUID, filename string) string {
	ext := filepath.Ext(filename)
	baseName := strings.TrimSuffix(filename, ext)
	baseName = strings.ReplaceAll(baseName, " ", "_")
	baseName = strings.ReplaceAll(baseName, "/", "_")
	baseName = strings.ReplaceAll(baseName, "\\", "_")

	return fmt.Sprintf("%s/%s_%s%s", documentID.String()[:2], documentID.String(), baseName, ext)
}

// contentType determines the stored content type from the filename
func contentType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "application/pdf"
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
