// Package me отдаёт профиль текущего пользователя.
package me

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/miracle-catalog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/miracle-catalog/internal/http/response"
)

// Handler обрабатывает GET /api/auth/me. Должен стоять за middlewarectx.Authenticate.
type Handler struct {
	log *slog.Logger
}

// New создает новый Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// ServeHTTP godoc
// @Summary Текущий пользователь
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} response.ErrorResponse
// @Router /api/auth/me [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.me"

	user, ok := middlewarectx.UserFromContext(r.Context())
	if !ok {
		h.log.Error("user missing in context",
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("missing token"))
		return
	}
	render.JSON(w, r, user)
}
