// Package storage keeps uploaded nonprofit documents in a gocloud.dev bucket.
package storage

import (
	"context"
	"log/slog"
	"path"
	"strings"

	"foodbridge/config"
	"foodbridge/internal/domain/service"
	"foodbridge/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

const defaultBucketURL = "mem://"

// ErrObjectNotFound is returned by Get when no object exists under key.
var ErrObjectNotFound = errors.New("storage object not found")

// BlobStorage implements service.DocumentStorage on a gocloud.dev bucket.
type BlobStorage struct {
	bucket    *blob.Bucket
	keyPrefix string
}

// StorageParams holds dependencies for the document bucket.
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewDocumentStorage opens the configured bucket and closes it when the app stops.
func NewDocumentStorage(params StorageParams) (service.DocumentStorage, error) {
	bucketURL, keyPrefix := defaultBucketURL, ""
	if params.Config.Storage != nil {
		if params.Config.Storage.BucketURL != "" {
			bucketURL = params.Config.Storage.BucketURL
		}
		keyPrefix = params.Config.Storage.KeyPrefix
	}

	storage, err := OpenBucket(params.Ctx, bucketURL, keyPrefix)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return storage.Close()
		},
	})

	params.Logger.Info("Document storage opened",
		slog.String("bucket", redactBucketURL(bucketURL)),
		slog.String("key_prefix", keyPrefix),
	)

	return storage, nil
}

// OpenBucket opens bucketURL. A bare filesystem path is treated as a file:// bucket.
func OpenBucket(ctx context.Context, bucketURL, keyPrefix string) (*BlobStorage, error) {
	if strings.HasPrefix(bucketURL, "/") {
		bucketURL = "file://" + bucketURL
	}

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", redactBucketURL(bucketURL))
	}

	return &BlobStorage{
		bucket:    bucket,
		keyPrefix: strings.Trim(keyPrefix, "/"),
	}, nil
}

func (s *BlobStorage) key(key string) string {
	if s.keyPrefix == "" {
		return key
	}

	return path.Join(s.keyPrefix, key)
}

func (s *BlobStorage) Put(ctx context.Context, key string, data []byte, contentType string) error {
	err := s.bucket.WriteAll(ctx, s.key(key), data, &blob.WriterOptions{ContentType: contentType})

	return errors.Wrapf(err, "failed to write object %s", key)
}

func (s *BlobStorage) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, s.key(key))
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, ErrObjectNotFound
		}

		return nil, errors.Wrapf(err, "failed to read object %s", key)
	}

	return data, nil
}

// Delete removes key. A missing object is not an error.
func (s *BlobStorage) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, s.key(key))
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete object %s", key)
	}

	return nil
}

func (s *BlobStorage) Close() error {
	return errors.Wrap(s.bucket.Close(), "failed to close bucket")
}

// redactBucketURL drops query parameters, which may carry credentials.
func redactBucketURL(bucketURL string) string {
	if i := strings.IndexByte(bucketURL, '?'); i >= 0 {
		return bucketURL[:i]
	}

	return bucketURL
}

// Module provides the document bucket.
var Module = fx.Options(
	fx.Provide(NewDocumentStorage),
)
