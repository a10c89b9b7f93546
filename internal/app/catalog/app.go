package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/magabrotheeeer/miracle-catalog/internal/cache"
	"github.com/magabrotheeeer/miracle-catalog/internal/config"
	"github.com/magabrotheeeer/miracle-catalog/internal/filestore"
	"github.com/magabrotheeeer/miracle-catalog/internal/lib/jwt"
	"github.com/magabrotheeeer/miracle-catalog/internal/lib/password"
	"github.com/magabrotheeeer/miracle-catalog/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/miracle-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/miracle-catalog/internal/metrics"
	"github.com/magabrotheeeer/miracle-catalog/internal/migrations"
	authservice "github.com/magabrotheeeer/miracle-catalog/internal/services/auth"
	contactservice "github.com/magabrotheeeer/miracle-catalog/internal/services/contact"
	miracleservice "github.com/magabrotheeeer/miracle-catalog/internal/services/miracle"
	uploadservice "github.com/magabrotheeeer/miracle-catalog/internal/services/upload"
	"github.com/magabrotheeeer/miracle-catalog/internal/storage"
)

const (
	shutdownTimeout   = 15 * time.Second
	rabbitMQRetries   = 5
	rabbitMQRetryWait = 2 * time.Second
)

// App — HTTP-сервер каталога со всеми ресурсами, которые нужно закрыть при остановке.
type App struct {
	server  *http.Server
	logger  *slog.Logger
	db      *storage.Storage
	closers []io.Closer
}

// New поднимает зависимости по конфигу. Redis и RabbitMQ необязательны:
// без адреса кэш и публикация событий отключаются.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.catalog.New"

	db, err := storage.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	a := &App{logger: logger, db: db}

	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		a.close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var cacher cache.Cacher = cache.Nop{}
	if cfg.AddressRedis != "" {
		redisCache, err := cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			a.close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		a.closers = append(a.closers, redisCache)
		cacher = redisCache
	} else {
		logger.Warn("redis address is empty, cache disabled")
	}

	var publisher contactservice.Publisher
	if cfg.RabbitMQURL != "" {
		conn, err := rabbitmq.Connect(cfg.RabbitMQURL, rabbitMQRetries, rabbitMQRetryWait)
		if err != nil {
			a.close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		a.closers = append(a.closers, conn)
		ch, err := rabbitmq.SetupChannel(conn, rabbitmq.ContactQueues(cfg.ContactQueue))
		if err != nil {
			a.close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		publisher = rabbitmq.NewPublisher(ch)
	} else {
		logger.Warn("rabbitmq url is empty, contact events disabled")
	}

	store, uploadsDir, err := newFileStore(ctx, cfg.Uploads)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	hasher, err := password.NewHasher(cfg.BcryptCost)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	tokens := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(reg)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, Deps{
		Auth:        authservice.NewService(db, hasher, tokens, authservice.WithMetrics(collector)),
		Miracles:    miracleservice.NewService(db, cacher, cfg.CacheTTL, logger, miracleservice.WithMetrics(collector)),
		Contacts:    contactservice.NewService(db, publisher, collector, logger),
		Uploads:     uploadservice.NewService(store, cfg.MaxSizeMB<<20, collector, logger),
		DB:          db,
		Metrics:     collector,
		Gatherer:    reg,
		UploadsDir:  uploadsDir,
		CORSOrigins: cfg.CORSOrigins,
	})

	a.server = &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return a, nil
}

// newFileStore возвращает хранилище файлов и локальный каталог для раздачи,
// если файлы лежат на диске.
func newFileStore(ctx context.Context, cfg config.Uploads) (filestore.Store, string, error) {
	if cfg.Backend == "s3" {
		s3, err := filestore.NewS3(ctx, cfg)
		return s3, "", err
	}
	local, err := filestore.NewLocal(cfg.Dir, UploadsPrefix)
	if err != nil {
		return nil, "", err
	}
	return local, local.Dir(), nil
}

// Run обслуживает запросы до отмены ctx, затем останавливает сервер.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.close()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.close()
		return err
	}
}

func (a *App) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.logger.Error("failed to close resource", sl.Err(err))
		}
	}
	a.closers = nil
	if err := a.db.Close(); err != nil {
		a.logger.Error("failed to close database", sl.Err(err))
	}
}
