// Package filters отдаёт доступные значения фильтров каталога.
package filters

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

// Service описывает получение фильтров.
type Service interface {
	Filters(ctx context.Context) (*models.Filters, error)
}

// Handler обрабатывает GET /api/filters.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Значения фильтров
// @Tags catalog
// @Produce json
// @Success 200 {object} models.Filters
// @Router /api/filters [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.filters"

	f, err := h.service.Filters(r.Context())
	if err != nil {
		h.log.Error("failed to load filters",
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			sl.Err(err),
		)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not load filters"))
		return
	}
	render.JSON(w, r, f)
}
