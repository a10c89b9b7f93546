// Package list реализует HTTP-обработчик выдачи каталога с фильтрами.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/miracle-catalog/internal/http/response"
	"github.com/magabrotheeeer/miracle-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/miracle-catalog/internal/models"
)

// Service описывает выборку каталога.
type Service interface {
	List(ctx context.Context, f models.MiracleFilter) ([]models.Miracle, error)
}

// Handler обрабатывает GET /api/miracles.
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
// @Summary Список чудес
// @Tags miracles
// @Produce json
// @Param status query string false "recognized | investigating"
// @Param country query string false "Страна"
// @Param century query string false "Век"
// @Param search query string false "Подстрока названия"
// @Param limit query int false "Не больше 1000"
// @Success 200 {array} models.Miracle
// @Failure 400 {object} response.ErrorResponse
// @Router /api/miracles [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.miracle.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	q := r.URL.Query()
	filter := models.MiracleFilter{
		Status:  q.Get("status"),
		Country: q.Get("country"),
		Century: q.Get("century"),
		Search:  q.Get("search"),
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("limit must be a positive integer"))
			return
		}
		filter.Limit = limit
	}

	list, err := h.service.List(r.Context(), filter)
	if err != nil {
		log.Error("failed to list miracles", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list miracles"))
		return
	}

	log.Debug("miracles listed", slog.Int("count", len(list)))
	render.JSON(w, r, list)
}
