// Package filestore сохраняет загруженные пользователями файлы.
//
// Поддерживаются два бэкенда: локальный каталог, раздаваемый самим сервисом,
// и S3-совместимое хранилище (AWS S3, MinIO).
package filestore

import (
	"context"
	"errors"
	"io"
	"strings"
)

// ErrInvalidKey — ключ пустой или пытается выйти за пределы хранилища.
var ErrInvalidKey = errors.New("invalid file key")

// Store описывает операции хранилища файлов.
type Store interface {
	// Upload сохраняет файл и возвращает ключ и публичный URL.
	Upload(ctx context.Context, input *UploadInput) (*UploadResult, error)
	// Delete удаляет файл по ключу.
	Delete(ctx context.Context, key string) error
	// GetURL возвращает публичный URL файла.
	GetURL(ctx context.Context, key string) (string, error)
}

// UploadInput содержит параметры загрузки.
type UploadInput struct {
	Key         string
	ContentType string
	Size        int64
	Data        io.Reader
}

// UploadResult — результат успешной загрузки.
type UploadResult struct {
	Key string
	URL string
}

// validKey допускает только плоские имена файлов.
func validKey(key string) bool {
	return key != "" && key != "." && key != ".." && !strings.ContainsAny(key, `/\`)
}
