// Package register реализует HTTP-обработчик регистрации пользователя.
//
// В ответ на успешную регистрацию клиент сразу получает токен доступа.
package register

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/miracle-catalog/internal/http/response"
	"github.com/magabrotheeeer/miracle-catalog/internal/lib/password"
	"github.com/magabrotheeeer/miracle-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/miracle-catalog/internal/services/auth"
)

// Request — входные данные для регистрации.
// Длина пароля ограничена в байтах (password.MaxBytes), валидатор считает руны.
type Request struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required,max=100"`
}

const passwordTooLong = "field Password must be at most 72 bytes"

// Service описывает регистрацию.
type Service interface {
	Register(ctx context.Context, email, name, password string) (*auth.Session, error)
}

// Handler обрабатывает POST /api/auth/register.
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
// @Summary Регистрация пользователя
// @Tags auth
// @Accept json
// @Produce json
// @Param request body Request true "Данные пользователя"
// @Success 200 {object} auth.Session
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /api/auth/register [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.register"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("email", req.Email))

	if err := h.validate.Struct(req); err != nil {
		log.Info("validation failed", sl.Err(err))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	if len(req.Password) > password.MaxBytes {
		log.Info("password too long", slog.Int("bytes", len(req.Password)))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error(passwordTooLong))
		return
	}

	session, err := h.service.Register(r.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		if errors.Is(err, password.ErrTooLong) {
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error(passwordTooLong))
			return
		}
		if errors.Is(err, auth.ErrDuplicateEmail) {
			log.Info("email already registered")
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, response.Error("email already registered"))
			return
		}
		log.Error("registration failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to register user"))
		return
	}

	log.Info("user registered", slog.String("user_id", session.User.ID))
	render.JSON(w, r, session)
}
