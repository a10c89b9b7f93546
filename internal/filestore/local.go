package filestore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Local хранит файлы в каталоге на диске.
type Local struct {
	dir     string
	baseURL string
}

// NewLocal создаёт каталог dir при необходимости.
// baseURL — префикс, под которым каталог раздаётся по HTTP.
func NewLocal(dir, baseURL string) (*Local, error) {
	const op = "filestore.NewLocal"
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Local{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Dir возвращает каталог с файлами.
func (l *Local) Dir() string {
	return l.dir
}

// Upload записывает файл. Недописанный файл удаляется.
func (l *Local) Upload(ctx context.Context, input *UploadInput) (*UploadResult, error) {
	const op = "filestore.Local.Upload"
	if !validKey(input.Key) {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidKey)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	path := filepath.Join(l.dir, input.Key)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if _, err = io.Copy(f, input.Data); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = f.Close(); err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &UploadResult{Key: input.Key, URL: l.url(input.Key)}, nil
}

// Delete удаляет файл.
func (l *Local) Delete(_ context.Context, key string) error {
	const op = "filestore.Local.Delete"
	if !validKey(key) {
		return fmt.Errorf("%s: %w", op, ErrInvalidKey)
	}
	if err := os.Remove(filepath.Join(l.dir, key)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetURL возвращает URL файла под префиксом раздачи.
func (l *Local) GetURL(_ context.Context, key string) (string, error) {
	if !validKey(key) {
		return "", fmt.Errorf("filestore.Local.GetURL: %w", ErrInvalidKey)
	}
	return l.url(key), nil
}

func (l *Local) url(key string) string {
	return l.baseURL + "/" + key
}
