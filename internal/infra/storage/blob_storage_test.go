package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"blvgames/config"
	"blvgames/internal/domain/constants"
	"blvgames/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlobStorage_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	store, err := NewBlobStorage(ctx, "mem://", "http://localhost:8080/uploads/")
	require.NoError(t, err)
	defer store.Close()

	key := "games/u1/2026/10/abc.png"
	obj, err := store.Put(ctx, key, strings.NewReader("png-bytes"), 9, "image/png", map[string]string{"owner": "u1"})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/games/u1/2026/10/abc.png", obj.URL)
	assert.Equal(t, int64(9), obj.Size)

	r, info, err := store.Get(ctx, key)
	require.NoError(t, err)
	body, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, "png-bytes", string(body))
	assert.Equal(t, "image/png", info.ContentType)

	require.NoError(t, store.Delete(ctx, key))
	// deleting twice is fine
	require.NoError(t, store.Delete(ctx, key))

	_, _, err = store.Get(ctx, key)
	assert.ErrorIs(t, err, service.ErrObjectNotFound)
}

func TestBlobStorage_ShortWrite(t *testing.T) {
	ctx := context.Background()
	store, err := NewBlobStorage(ctx, "mem://", "/uploads")
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Put(ctx, "k", strings.NewReader("abc"), 10, "image/png", nil)
	assert.Error(t, err)
}

func TestNewStorage_ProviderSelection(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := newStorage(ctx, nil, logger)
	require.NoError(t, err)
	assert.IsType(t, &blobStorage{}, store)

	store, err = newStorage(ctx, &config.StorageConfig{Provider: constants.StorageProviderBlob, BucketURL: "mem://"}, logger)
	require.NoError(t, err)
	assert.IsType(t, &blobStorage{}, store)

	_, err = newStorage(ctx, &config.StorageConfig{Provider: constants.StorageProviderMinio}, logger)
	assert.Error(t, err)

	_, err = newStorage(ctx, &config.StorageConfig{Provider: "ftp"}, logger)
	assert.Error(t, err)
}
