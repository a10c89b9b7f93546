// Package upload реализует HTTP-обработчик загрузки файлов.
//
// Файл передаётся multipart-полем "file" и сохраняется под новым именем
// <uuid><ext>. Исходное имя возвращается клиенту только для отображения.
package upload

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/miracle-catalog/internal/http/response"
	"github.com/magabrotheeeer/miracle-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/miracle-catalog/internal/models"
	uploadsvc "github.com/magabrotheeeer/miracle-catalog/internal/services/upload"
)

const (
	formField = "file"
	// Запас на заголовки multipart сверх размера самого файла.
	multipartOverhead = 1 << 20
	maxMemory         = 8 << 20
)

// Service описывает сохранение файла.
type Service interface {
	Save(ctx context.Context, originalName, contentType string, size int64, data io.Reader) (*models.UploadedFile, error)
	MaxBytes() int64
}

// Handler обрабатывает POST /api/upload.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Загрузить файл
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Файл"
// @Success 200 {object} models.UploadedFile
// @Failure 400 {object} response.ErrorResponse
// @Failure 413 {object} response.ErrorResponse
// @Router /api/upload [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.upload"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if max := h.service.MaxBytes(); max > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, max+multipartOverhead)
	}

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Info("upload rejected: body too large")
			render.Status(r, http.StatusRequestEntityTooLarge)
			render.JSON(w, r, response.Error("file too large"))
			return
		}
		log.Info("failed to parse multipart form", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid multipart form"))
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	file, header, err := r.FormFile(formField)
	if err != nil {
		log.Info("file field missing", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("field file is required"))
		return
	}
	defer func() {
		_ = file.Close()
	}()

	res, err := h.service.Save(r.Context(), header.Filename, header.Header.Get("Content-Type"), header.Size, file)
	if err != nil {
		if errors.Is(err, uploadsvc.ErrTooLarge) {
			render.Status(r, http.StatusRequestEntityTooLarge)
			render.JSON(w, r, response.Error("file too large"))
			return
		}
		log.Error("failed to store file", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not store file"))
		return
	}

	render.JSON(w, r, res)
}
