package service

import (
	"context"
	"io"
)

// ImageStore defines the interface for storing product image blobs.
// The persistence layer keeps only the returned key; the bytes live in
// whatever bucket backs the implementation.
type ImageStore interface {
	// Save writes the image bytes under a freshly generated key and returns it.
	// contentType is recorded as blob metadata when the backend supports it.
	Save(ctx context.Context, r io.Reader, contentType string) (key string, err error)

	// Delete removes the blob for key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
