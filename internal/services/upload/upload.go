// Package upload сохраняет загруженные файлы под случайными именами.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/miracle-catalog/internal/filestore"
	"github.com/magabrotheeeer/miracle-catalog/internal/metrics"
	"github.com/magabrotheeeer/miracle-catalog/internal/models"
)

// ErrTooLarge — файл превышает допустимый размер.
var ErrTooLarge = errors.New("file too large")

const maxExtLen = 16

// Service сохраняет файлы в filestore.Store.
type Service struct {
	store    filestore.Store
	maxBytes int64
	metrics  metrics.Recorder
	log      *slog.Logger
}

// NewService создает новый экземпляр Service. maxBytes <= 0 снимает ограничение.
func NewService(store filestore.Store, maxBytes int64, rec metrics.Recorder, log *slog.Logger) *Service {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &Service{
		store:    store,
		maxBytes: maxBytes,
		metrics:  rec,
		log:      log,
	}
}

// MaxBytes возвращает лимит размера файла.
func (s *Service) MaxBytes() int64 {
	return s.maxBytes
}

// Save сохраняет файл как <uuid><ext>, где ext берётся из исходного имени.
func (s *Service) Save(ctx context.Context, originalName, contentType string, size int64, data io.Reader) (*models.UploadedFile, error) {
	const op = "upload.Save"

	if s.maxBytes > 0 && size > s.maxBytes {
		return nil, ErrTooLarge
	}

	key := uuid.NewString() + extension(originalName)
	res, err := s.store.Upload(ctx, &filestore.UploadInput{
		Key:         key,
		ContentType: contentType,
		Size:        size,
		Data:        data,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.metrics.RecordUpload(size)
	s.log.Info("file uploaded", slog.String("key", res.Key), slog.Int64("size", size))

	return &models.UploadedFile{
		Filename:     res.Key,
		OriginalName: originalName,
		URL:          res.URL,
	}, nil
}

// extension возвращает расширение исходного имени, если оно безопасно для ключа.
func extension(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	ext := path.Ext(path.Base(name))
	if len(ext) < 2 || len(ext) > maxExtLen {
		return ""
	}
	for _, r := range ext[1:] {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return ""
		}
	}
	return ext
}
