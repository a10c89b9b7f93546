// Package catalog собирает HTTP-приложение каталога: маршруты, зависимости и жизненный цикл сервера.
package catalog

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/miracle-catalog/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/miracle-catalog/internal/http/handlers/auth/me"
	"github.com/magabrotheeeer/miracle-catalog/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/miracle-catalog/internal/http/handlers/catalog/filters"
	"github.com/magabrotheeeer/miracle-catalog/internal/http/handlers/catalog/stats"
	contactcreate "github.com/magabrotheeeer/miracle-catalog/internal/http/handlers/contact/create"
	contactlist "github.com/magabrotheeeer/miracle-catalog/internal/http/handlers/contact/list"
	"github.com/magabrotheeeer/miracle-catalog/internal/http/handlers/health"
	"github.com/magabrotheeeer/miracle-catalog/internal/http/handlers/miracle/bulkimport"
	"github.com/magabrotheeeer/miracle-catalog/internal/http/handlers/miracle/create"
	"github.com/magabrotheeeer/miracle-catalog/internal/http/handlers/miracle/list"
	"github.com/magabrotheeeer/miracle-catalog/internal/http/handlers/miracle/read"
	"github.com/magabrotheeeer/miracle-catalog/internal/http/handlers/miracle/remove"
	"github.com/magabrotheeeer/miracle-catalog/internal/http/handlers/miracle/removecentury"
	"github.com/magabrotheeeer/miracle-catalog/internal/http/handlers/miracle/template"
	"github.com/magabrotheeeer/miracle-catalog/internal/http/handlers/miracle/update"
	uploadhandler "github.com/magabrotheeeer/miracle-catalog/internal/http/handlers/upload"
	"github.com/magabrotheeeer/miracle-catalog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/miracle-catalog/internal/metrics"
	authservice "github.com/magabrotheeeer/miracle-catalog/internal/services/auth"
	contactservice "github.com/magabrotheeeer/miracle-catalog/internal/services/contact"
	miracleservice "github.com/magabrotheeeer/miracle-catalog/internal/services/miracle"
	uploadservice "github.com/magabrotheeeer/miracle-catalog/internal/services/upload"
)

// UploadsPrefix — URL-префикс, под которым раздаются загруженные файлы.
const UploadsPrefix = "/api/uploads"

// Deps — зависимости HTTP-слоя.
type Deps struct {
	Auth     *authservice.Service
	Miracles *miracleservice.Service
	Contacts *contactservice.Service
	Uploads  *uploadservice.Service
	DB       health.Pinger
	Metrics  *metrics.Collector
	Gatherer prometheus.Gatherer
	// UploadsDir раздаётся статикой под UploadsPrefix. Пустая строка отключает раздачу.
	UploadsDir  string
	CORSOrigins []string
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, d Deps) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		cors.Handler(cors.Options{
			AllowedOrigins:   d.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
	)
	if d.Metrics != nil {
		r.Use(middlewarectx.Metrics(d.Metrics))
	}

	authenticate := middlewarectx.Authenticate(d.Auth, logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			render.JSON(w, r, map[string]string{"message": "Milagres Eucarísticos API"})
		})
		r.Get("/health", health.New(logger, d.DB).ServeHTTP)

		// Открытые конечные точки
		r.Post("/auth/register", register.New(logger, d.Auth).ServeHTTP)
		r.Post("/auth/login", login.New(logger, d.Auth).ServeHTTP)

		r.Get("/miracles", list.New(logger, d.Miracles).ServeHTTP)
		r.Get("/miracles/template/json", template.New(miracleservice.Template).ServeHTTP)
		r.Get("/miracles/{id}", read.New(logger, d.Miracles).ServeHTTP)
		r.Get("/filters", filters.New(logger, d.Miracles).ServeHTTP)
		r.Get("/stats", stats.New(logger, d.Miracles).ServeHTTP)
		r.Post("/contact-messages", contactcreate.New(logger, d.Contacts).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Get("/auth/me", me.New(logger).ServeHTTP)
			r.Post("/miracles", create.New(logger, d.Miracles).ServeHTTP)
			r.Post("/miracles/bulk-import", bulkimport.New(logger, d.Miracles).ServeHTTP)
			r.Put("/miracles/{id}", update.New(logger, d.Miracles).ServeHTTP)
			r.Delete("/miracles/by-century/{century}", removecentury.New(logger, d.Miracles).ServeHTTP)
			r.Delete("/miracles/{id}", remove.New(logger, d.Miracles).ServeHTTP)
			r.Post("/upload", uploadhandler.New(logger, d.Uploads).ServeHTTP)
			r.Get("/contact-messages", contactlist.New(logger, d.Contacts).ServeHTTP)
		})

		if d.UploadsDir != "" {
			r.Handle("/uploads/*", http.StripPrefix(UploadsPrefix+"/", noListing(http.FileServer(http.Dir(d.UploadsDir)))))
		}
	})

	if d.Gatherer != nil {
		r.Handle("/metrics", metrics.Handler(d.Gatherer))
	}
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}

// noListing запрещает просмотр содержимого каталога загрузок.
func noListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
