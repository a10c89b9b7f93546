// Package read реализует HTTP-обработчик получения чуда по идентификатору.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/miracle-catalog/internal/http/response"
	"github.com/magabrotheeeer/miracle-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/miracle-catalog/internal/models"
	"github.com/magabrotheeeer/miracle-catalog/internal/services/miracle"
)

// Service описывает чтение чуда.
type Service interface {
	Get(ctx context.Context, id string) (*models.Miracle, error)
}

// Handler обрабатывает GET /api/miracles/{id}.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить чудо
// @Tags miracles
// @Produce json
// @Param id path string true "Идентификатор"
// @Success 200 {object} models.Miracle
// @Failure 404 {object} response.ErrorResponse
// @Router /api/miracles/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.miracle.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	m, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, miracle.ErrNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("miracle not found"))
			return
		}
		log.Error("failed to read miracle", slog.String("id", id), sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read miracle"))
		return
	}

	render.JSON(w, r, m)
}
