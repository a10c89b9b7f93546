// Package middlewarectx содержит HTTP middleware сервиса.
//
// Authenticate извлекает bearer-токен из заголовка Authorization, определяет
// по нему пользователя и кладёт его в контекст запроса. При неудаче запрос
// завершается с 401 и причиной отказа в теле ответа.
package middlewarectx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/miracle-catalog/internal/http/response"
	"github.com/magabrotheeeer/miracle-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/miracle-catalog/internal/models"
	"github.com/magabrotheeeer/miracle-catalog/internal/services/auth"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// User — ключ текущего пользователя в контексте.
const User Key = "user"

// Resolver определяет пользователя по токену.
type Resolver interface {
	Resolve(ctx context.Context, token string) (*models.User, error)
}

// Authenticate возвращает middleware, пропускающий только запросы с валидным токеном.
func Authenticate(resolver Resolver, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.Authenticate"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			user, err := resolver.Resolve(r.Context(), BearerToken(r))
			if err != nil {
				var authErr *auth.AuthError
				if errors.As(err, &authErr) {
					log.Info("request rejected", slog.String("reason", authErr.Reason))
					w.Header().Set("WWW-Authenticate", "Bearer")
					render.Status(r, http.StatusUnauthorized)
					render.JSON(w, r, response.Error(authErr.Reason))
					return
				}
				log.Error("failed to resolve user", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("internal error"))
				return
			}

			ctx := context.WithValue(r.Context(), User, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerToken возвращает токен из заголовка Authorization или пустую строку.
// Схема сравнивается без учёта регистра.
func BearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// UserFromContext возвращает пользователя, сохранённого Authenticate.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(User).(*models.User)
	return user, ok && user != nil
}
