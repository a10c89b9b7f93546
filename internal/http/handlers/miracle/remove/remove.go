// Package remove реализует HTTP-обработчик удаления чуда.
package remove

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
	"github.com/magabrotheeeer/miracle-catalog/internal/services/miracle"
)

// Service описывает удаление чуда.
type Service interface {
	Delete(ctx context.Context, id string) error
}

// Handler обрабатывает DELETE /api/miracles/{id}.
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
// @Summary Удалить чудо
// @Tags miracles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Идентификатор"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.ErrorResponse
// @Router /api/miracles/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.miracle.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, miracle.ErrNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("miracle not found"))
			return
		}
		log.Error("failed to delete miracle", slog.String("id", id), sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not delete miracle"))
		return
	}

	log.Info("miracle deleted", slog.String("id", id))
	render.JSON(w, r, response.Message{Message: "Miracle deleted"})
}
