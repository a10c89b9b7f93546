// Package removecentury реализует HTTP-обработчик удаления всех чудес века.
package removecentury

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

// Service описывает удаление по веку.
type Service interface {
	DeleteByCentury(ctx context.Context, century string) (int, error)
}

// Response — итог удаления.
type Response struct {
	Message      string `json:"message"`
	Century      string `json:"century"`
	DeletedCount int    `json:"deleted_count"`
}

// Handler обрабатывает DELETE /api/miracles/by-century/{century}.
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
// @Summary Удалить все чудеса века
// @Tags miracles
// @Produce json
// @Security BearerAuth
// @Param century path string true "Век"
// @Success 200 {object} Response
// @Failure 404 {object} response.ErrorResponse
// @Router /api/miracles/by-century/{century} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.miracle.removecentury"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	century := chi.URLParam(r, "century")
	n, err := h.service.DeleteByCentury(r.Context(), century)
	if err != nil {
		if errors.Is(err, miracle.ErrNoneInCentury) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("no miracles found for this century"))
			return
		}
		log.Error("failed to delete miracles", slog.String("century", century), sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not delete miracles"))
		return
	}

	render.JSON(w, r, Response{
		Message:      "Miracles deleted",
		Century:      century,
		DeletedCount: n,
	})
}
