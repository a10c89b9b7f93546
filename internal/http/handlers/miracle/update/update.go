// Package update реализует HTTP-обработчик частичного обновления чуда.
//
// Меняются только поля, присутствующие в теле запроса со значением не null.
package update

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/miracle-catalog/internal/http/response"
	"github.com/magabrotheeeer/miracle-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/miracle-catalog/internal/models"
	"github.com/magabrotheeeer/miracle-catalog/internal/services/miracle"
)

// Service описывает обновление чуда.
type Service interface {
	Update(ctx context.Context, id string, patch models.MiraclePatch) (*models.Miracle, error)
}

// Handler обрабатывает PUT /api/miracles/{id}.
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
// @Summary Обновить чудо
// @Tags miracles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Идентификатор"
// @Param request body models.MiraclePatch true "Изменяемые поля"
// @Success 200 {object} models.Miracle
// @Failure 404 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /api/miracles/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.miracle.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	var patch models.MiraclePatch
	if err := render.DecodeJSON(r.Body, &patch); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(patch); err != nil {
		log.Info("validation failed", sl.Err(err))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	m, err := h.service.Update(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, miracle.ErrNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("miracle not found"))
			return
		}
		log.Error("failed to update miracle", slog.String("id", id), sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update miracle"))
		return
	}

	log.Info("miracle updated", slog.String("id", id))
	render.JSON(w, r, m)
}
