// Package stats отдаёт агрегаты каталога.
package stats

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/miracle-catalog/internal/http/response"
	"github.com/magabrotheeeer/miracle-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/miracle-catalog/internal/models"
)

// Service описывает получение статистики.
type Service interface {
	Stats(ctx context.Context) (*models.Stats, error)
}

// Handler обрабатывает GET /api/stats.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Статистика каталога
// @Tags catalog
// @Produce json
// @Success 200 {object} models.Stats
// @Router /api/stats [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.stats"

	st, err := h.service.Stats(r.Context())
	if err != nil {
		h.log.Error("failed to load stats",
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			sl.Err(err),
		)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not load stats"))
		return
	}
	render.JSON(w, r, st)
}
