package storage

import (
	"context"
	"io"
)

// Storage persists uploaded site media (project photos, hero images).
// LocalStorage writes to disk; the interface leaves room for an S3 or R2
// backed implementation.
type Storage interface {
	// Save stores the file under key, a unique path within the store such as
	// "projects/<uuid>.jpg", and returns its public URL.
	Save(ctx context.Context, key string, data io.Reader, contentType string) (url string, err error)

	// Delete removes the file stored under key. Deleting a missing key is
	// not an error.
	Delete(ctx context.Context, key string) error
}
