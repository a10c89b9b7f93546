// Package list отдаёт сообщения обратной связи авторизованным пользователям.
package list

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

// Service описывает выдачу сообщений.
type Service interface {
	List(ctx context.Context) ([]models.ContactMessage, error)
}

// Handler обрабатывает GET /api/contact-messages.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Сообщения обратной связи
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ContactMessage
// @Failure 401 {object} response.ErrorResponse
// @Router /api/contact-messages [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.contact.list"

	list, err := h.service.List(r.Context())
	if err != nil {
		h.log.Error("failed to list contact messages",
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			sl.Err(err),
		)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list messages"))
		return
	}
	render.JSON(w, r, list)
}
