package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"yogic-backend/internal/media/adapter/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFileStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	_, err := storage.NewLocalFileStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLocalFileStore_SaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewLocalFileStore(dir)
	require.NoError(t, err)

	path, err := store.Save(context.Background(), "pose.jpg", strings.NewReader("jpeg bytes"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "pose.jpg"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(data))
}

func TestLocalFileStore_StripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewLocalFileStore(dir)
	require.NoError(t, err)

	path, err := store.Save(context.Background(), "../escape.jpg", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "escape.jpg"), path)
}

func TestLocalFileStore_CancelledContext(t *testing.T) {
	store, err := storage.NewLocalFileStore(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = store.Save(ctx, "pose.jpg", strings.NewReader("x"))
	assert.Error(t, err)
}
