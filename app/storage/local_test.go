package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalUploadOverwriteDelete(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir, "http://localhost:9000")
	ctx := context.Background()

	if err := s.Upload(ctx, "dishes", "d1.png", strings.NewReader("first")); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(dir, "dishes", "d1.png")
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "first" {
		t.Errorf("file content = %q", raw)
	}

	// upload ulang dengan key sama harus menimpa
	if err := s.Upload(ctx, "dishes", "d1.png", strings.NewReader("second")); err != nil {
		t.Fatal(err)
	}
	raw, _ = os.ReadFile(path)
	if string(raw) != "second" {
		t.Errorf("overwrite failed, content = %q", raw)
	}

	if err := s.Delete(ctx, "dishes", "d1.png"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file should be gone after Delete")
	}
}

func TestLocalPublicURL(t *testing.T) {
	s := NewLocalStorage("public/uploads", "http://localhost:9000/")

	got := s.PublicURL("dishes", "d1.png")
	want := "http://localhost:9000/uploads/dishes/d1.png"
	if got != want {
		t.Errorf("PublicURL = %q, want %q", got, want)
	}
}

func TestNewUnknownDriver(t *testing.T) {
	if _, err := New(Config{Driver: "ftp"}); err == nil {
		t.Error("unknown driver should be rejected")
	}
}

func TestNewDefaultsToLocal(t *testing.T) {
	s, err := New(Config{})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*LocalStorage); !ok {
		t.Errorf("empty driver should give LocalStorage, got %T", s)
	}
}
