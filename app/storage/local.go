package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage: simpan objek di disk, di-serve lewat route /uploads/.
type LocalStorage struct {
	baseDir string
	baseURL string
}

func NewLocalStorage(baseDir string, baseURL string) *LocalStorage {
	if baseDir == "" {
		baseDir = "public/uploads"
	}
	return &LocalStorage{baseDir: baseDir, baseURL: strings.TrimRight(baseURL, "/")}
}

func (s *LocalStorage) Upload(ctx context.Context, bucket string, key string, body io.Reader) error {
	dir := filepath.Join(s.baseDir, bucket)

	// pastikan folder upload ada
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// os.Create truncate file lama, jadi upload ulang = overwrite
	dst, err := os.Create(filepath.Join(dir, key))
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, body)
	return err
}

func (s *LocalStorage) PublicURL(bucket string, key string) string {
	return s.baseURL + "/uploads/" + bucket + "/" + key
}

func (s *LocalStorage) Delete(ctx context.Context, bucket string, key string) error {
	return os.Remove(filepath.Join(s.baseDir, bucket, key))
}
