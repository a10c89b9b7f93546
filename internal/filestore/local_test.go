package filestore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_UploadAndDelete(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store, err := NewLocal(dir, "/api/uploads/")
	require.NoError(t, err)
	ctx := context.Background()

	res, err := store.Upload(ctx, &UploadInput{
		Key:  "abc.png",
		Data: strings.NewReader("png-bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, "abc.png", res.Key)
	assert.Equal(t, "/api/uploads/abc.png", res.URL)

	content, err := os.ReadFile(filepath.Join(dir, "abc.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(content))

	url, err := store.GetURL(ctx, "abc.png")
	require.NoError(t, err)
	assert.Equal(t, res.URL, url)

	require.NoError(t, store.Delete(ctx, "abc.png"))
	_, err = os.Stat(filepath.Join(dir, "abc.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocal_DoesNotOverwrite(t *testing.T) {
	store, err := NewLocal(t.TempDir(), "/api/uploads")
	require.NoError(t, err)
	ctx := context.Background()

	_, err = store.Upload(ctx, &UploadInput{Key: "same.txt", Data: strings.NewReader("first")})
	require.NoError(t, err)
	_, err = store.Upload(ctx, &UploadInput{Key: "same.txt", Data: strings.NewReader("second")})
	assert.Error(t, err)
}

func TestLocal_RejectsInvalidKeys(t *testing.T) {
	store, err := NewLocal(t.TempDir(), "/api/uploads")
	require.NoError(t, err)
	ctx := context.Background()

	for _, key := range []string{"", ".", "..", "../etc/passwd", `a\b`, "dir/file"} {
		t.Run(key, func(t *testing.T) {
			_, err := store.Upload(ctx, &UploadInput{Key: key, Data: strings.NewReader("x")})
			assert.ErrorIs(t, err, ErrInvalidKey)
			assert.ErrorIs(t, store.Delete(ctx, key), ErrInvalidKey)
		})
	}
}
