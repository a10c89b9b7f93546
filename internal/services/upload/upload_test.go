package upload

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/miracle-catalog/internal/filestore"
)

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestService_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := filestore.NewLocal(dir, "/api/uploads")
	require.NoError(t, err)

	svc := NewService(store, 1024, nil, newNoopLogger())
	f, err := svc.Save(context.Background(), "foto.JPG", "image/jpeg", 5, strings.NewReader("hello"))

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(f.Filename, ".JPG"))
	assert.Len(t, f.Filename, 36+len(".JPG"))
	assert.Equal(t, "foto.JPG", f.OriginalName)
	assert.Equal(t, "/api/uploads/"+f.Filename, f.URL)

	content, err := os.ReadFile(filepath.Join(dir, f.Filename))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))
}

func TestService_Save_TooLarge(t *testing.T) {
	store, err := filestore.NewLocal(t.TempDir(), "/api/uploads")
	require.NoError(t, err)

	svc := NewService(store, 4, nil, newNoopLogger())
	_, err = svc.Save(context.Background(), "a.txt", "text/plain", 5, strings.NewReader("hello"))

	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestExtension(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple", in: "report.pdf", want: ".pdf"},
		{name: "double", in: "archive.tar.gz", want: ".gz"},
		{name: "none", in: "README", want: ""},
		{name: "path traversal", in: "../../etc/passwd", want: ""},
		{name: "windows path", in: `C:\photos\img.png`, want: ".png"},
		{name: "unsafe chars", in: "x.p/hp", want: ""},
		{name: "space in ext", in: "x.j pg", want: ""},
		{name: "too long", in: "x." + strings.Repeat("a", 20), want: ""},
		{name: "dot only", in: "file.", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extension(tt.in))
		})
	}
}
