// Package storage provides the blob-backed implementation of the image store.
package storage

import (
	"context"
	"io"
	"log/slog"

	"catalog/config"
	"catalog/internal/domain/service"
	"catalog/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // local bucket driver for development
	"gocloud.dev/gcerrors"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// blobImageStore stores product images in a gocloud.dev bucket.
type blobImageStore struct {
	bucket *blob.Bucket
}

// New opens the configured bucket and returns it as a service.ImageStore.
func New(params Params) (service.ImageStore, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket URL must be provided")
	}

	bucket, err := blob.OpenBucket(context.Background(), params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open image bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobImageStore{bucket: bucket}, nil
}

// Save writes the image bytes under a freshly generated key and returns it.
func (s *blobImageStore) Save(ctx context.Context, r io.Reader, contentType string) (string, error) {
	key := uuid.NewString()

	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to open blob writer")
	}

	if _, err := io.Copy(w, r); err != nil {
		// Abort the write so no partial blob is left behind.
		_ = w.Close()

		return "", errors.Wrap(err, "failed to write image blob")
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "failed to commit image blob")
	}

	return key, nil
}

// Delete removes the blob for key. A missing blob is not an error.
func (s *blobImageStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "failed to delete image blob")
	}

	return nil
}
