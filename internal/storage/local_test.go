package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalStorage_SaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir, "/uploads")

	url, err := s.Save(context.Background(), "projects/p1/photo.jpg", strings.NewReader("jpegdata"), "image/jpeg")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if url != "/uploads/projects/p1/photo.jpg" {
		t.Errorf("unexpected url %q", url)
	}

	data, err := os.ReadFile(filepath.Join(dir, "projects", "p1", "photo.jpg"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "jpegdata" {
		t.Errorf("unexpected content %q", data)
	}

	if err := s.Delete(context.Background(), "projects/p1/photo.jpg"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "projects", "p1", "photo.jpg")); !os.IsNotExist(err) {
		t.Error("file must be gone after delete")
	}
}

func TestLocalStorage_DeleteMissingIsNoError(t *testing.T) {
	s := NewLocalStorage(t.TempDir(), "/uploads")
	if err := s.Delete(context.Background(), "nope/missing.png"); err != nil {
		t.Errorf("deleting a missing key must not fail: %v", err)
	}
}
