// Package storage: lapisan object storage untuk gambar dish dan foto
// restoran. Key selalu <ownerID>.<ext> supaya upload ulang menimpa objek
// lama di tempat.
package storage

import (
	"context"
	"fmt"
	"io"
)

type ObjectStorage interface {
	// Upload menimpa objek lama kalau key sudah ada.
	Upload(ctx context.Context, bucket string, key string, body io.Reader) error
	PublicURL(bucket string, key string) string
	Delete(ctx context.Context, bucket string, key string) error
}

type Config struct {
	Driver string // "local" atau "s3"

	// local
	BaseDir string
	BaseURL string

	// s3
	S3Bucket string
	S3Region string
}

func New(cfg Config) (ObjectStorage, error) {
	switch cfg.Driver {
	case "", "local":
		return NewLocalStorage(cfg.BaseDir, cfg.BaseURL), nil
	case "s3":
		return NewS3Storage(cfg.S3Bucket, cfg.S3Region)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
