package storage

import (
	"context"
	"io"
	"log/slog"

	"ecocart/config"
	"ecocart/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets for local development
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets in production
	_ "gocloud.dev/blob/memblob"  // mem:// buckets for tests
	"gocloud.dev/gcerrors"
)

type blobStorage struct {
	bucket *blob.Bucket
}

// NewBlobStorage wraps an already opened bucket.
func NewBlobStorage(bucket *blob.Bucket) service.ImageStorage {
	return &blobStorage{bucket: bucket}
}

// Params holds dependencies for the image bucket, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewImageStorage opens the bucket named by storage.bucketUrl and closes it on shutdown.
func NewImageStorage(params Params) (service.ImageStorage, error) {
	bucketURL := "mem://"
	if params.Config.Storage != nil && params.Config.Storage.BucketURL != "" {
		bucketURL = params.Config.Storage.BucketURL
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Logger.Info("Image storage opened", slog.String("bucket_url", bucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewBlobStorage(bucket), nil
}

func (s *blobStorage) Put(ctx context.Context, key, contentType string, r io.Reader) error {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()

		return errors.Wrapf(err, "failed to write %s", key)
	}

	return errors.Wrapf(w.Close(), "failed to commit %s", key)
}

func (s *blobStorage) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", service.ErrObjectNotFound
		}

		return nil, "", errors.Wrapf(err, "failed to open %s", key)
	}

	return r, r.ContentType(), nil
}

func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return service.ErrObjectNotFound
		}

		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}

// Module provides the image storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewImageStorage),
)
