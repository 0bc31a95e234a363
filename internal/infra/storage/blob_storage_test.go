package storage

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"foodbridge/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestBlobStorage_MemBucket(t *testing.T) {
	ctx := context.Background()
	storage, err := OpenBucket(ctx, "mem://", "documents/")
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close() })

	key := "nonprofits/abc/doc.pdf"
	require.NoError(t, storage.Put(ctx, key, []byte("%PDF-1.4"), "application/pdf"))

	data, err := storage.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), data)

	exists, err := storage.bucket.Exists(ctx, "documents/nonprofits/abc/doc.pdf")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, storage.Delete(ctx, key))
	_, err = storage.Get(ctx, key)
	assert.ErrorIs(t, err, ErrObjectNotFound)

	assert.NoError(t, storage.Delete(ctx, key), "deleting a missing object is a no-op")
}

func TestOpenBucket_FilePath(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	storage, err := OpenBucket(ctx, dir, "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close() })

	require.NoError(t, storage.Put(ctx, "a/b.png", []byte{0x89, 'P', 'N', 'G'}, "image/png"))

	_, err = os.Stat(filepath.Join(dir, "a", "b.png"))
	assert.NoError(t, err)
}

func TestOpenBucket_UnknownScheme(t *testing.T) {
	_, err := OpenBucket(context.Background(), "nope://bucket", "")
	assert.Error(t, err)
}

func TestNewDocumentStorage_DefaultsToMemory(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	storage, err := NewDocumentStorage(StorageParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	assert.NotNil(t, storage)

	lc.RequireStart().RequireStop()
}

func TestRedactBucketURL(t *testing.T) {
	assert.Equal(t, "s3://docs", redactBucketURL("s3://docs?region=us-east-1&awssdk=v2"))
	assert.Equal(t, "mem://", redactBucketURL("mem://"))
}
