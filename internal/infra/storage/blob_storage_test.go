package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"ecocart/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewBlobStorage(bucket)
	key := "products/0192a7e4/cover.png"

	require.NoError(t, store.Put(ctx, key, "image/png", strings.NewReader("png-bytes")))

	r, contentType, err := store.Open(ctx, key)
	require.NoError(t, err)
	defer r.Close()

	body, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(body))
	assert.Equal(t, "image/png", contentType)

	require.NoError(t, store.Delete(ctx, key))

	_, _, err = store.Open(ctx, key)
	assert.ErrorIs(t, err, service.ErrObjectNotFound)
	assert.ErrorIs(t, store.Delete(ctx, key), service.ErrObjectNotFound)
}
