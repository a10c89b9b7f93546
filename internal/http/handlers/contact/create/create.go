// Package create принимает сообщения из формы обратной связи.
package create

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

// Service описывает приём сообщения.
type Service interface {
	Create(ctx context.Context, in models.ContactMessageInput) (*models.ContactMessage, error)
}

// Handler обрабатывает POST /api/contact-messages.
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
// @Summary Отправить сообщение
// @Tags contact
// @Accept json
// @Produce json
// @Param request body models.ContactMessageInput true "Сообщение"
// @Success 200 {object} models.ContactMessage
// @Failure 422 {object} response.ErrorResponse
// @Router /api/contact-messages [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.contact.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.ContactMessageInput
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

	msg, err := h.service.Create(r.Context(), req)
	if err != nil {
		log.Error("failed to save contact message", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not save message"))
		return
	}

	log.Info("contact message saved", slog.String("id", msg.ID), slog.String("type", msg.Type))
	render.JSON(w, r, msg)
}
