package service

import (
	"context"
	"io"

	"github.com/pkg/errors"
)

// ErrObjectNotFound is returned when a key has no stored object.
var ErrObjectNotFound = errors.New("object not found")

// ImageStorage stores product images in an object bucket.
type ImageStorage interface {
	// Put writes the content under key.
	Put(ctx context.Context, key, contentType string, r io.Reader) error

	// Open returns a reader for key and its content type.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)

	Delete(ctx context.Context, key string) error
}
