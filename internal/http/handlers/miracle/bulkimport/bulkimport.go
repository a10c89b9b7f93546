// Package bulkimport реализует HTTP-обработчик массового импорта чудес.
//
// Элементы проверяются и сохраняются по одному: ошибка в одном элементе
// попадает в отчёт и не мешает импорту остальных.
package bulkimport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/miracle-catalog/internal/http/response"
	"github.com/magabrotheeeer/miracle-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/miracle-catalog/internal/models"
)

// Service описывает массовый импорт.
type Service interface {
	BulkImport(ctx context.Context, items []models.MiracleInput) models.BulkImportResult
}

// Handler обрабатывает POST /api/miracles/bulk-import.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Массовый импорт
// @Tags miracles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.BulkImportRequest true "Список документов"
// @Success 200 {object} models.BulkImportResult
// @Failure 400 {object} response.ErrorResponse
// @Router /api/miracles/bulk-import [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.miracle.bulkimport"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.BulkImportRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Info("validation failed", sl.Err(err))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	res := h.service.BulkImport(r.Context(), req.Miracles)
	log.Info("bulk import done", slog.Int("imported", res.ImportedCount), slog.Int("failed", res.ErrorCount))
	render.JSON(w, r, res)
}
