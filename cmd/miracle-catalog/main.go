// Package main Miracle Catalog API
//
// @title           Milagres Eucarísticos API
// @version         1.0
// @description     Каталог евхаристических чудес: публичное чтение, редактирование для авторизованных пользователей, обращения посетителей.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8001
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/magabrotheeeer/miracle-catalog/docs"
	"github.com/magabrotheeeer/miracle-catalog/internal/app/catalog"
	"github.com/magabrotheeeer/miracle-catalog/internal/config"
	"github.com/magabrotheeeer/miracle-catalog/internal/lib/sl"
)

func main() {
	cfg := config.MustLoad()
	logger := sl.SetupLogger(cfg.Env)

	logger.Info("starting miracle-catalog", slog.String("env", cfg.Env))
	logger.Debug("loaded config", slog.String("config", cfg.String()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := catalog.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize app", sl.Err(err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("app stopped with error", sl.Err(err))
		os.Exit(1)
	}

	logger.Info("miracle-catalog stopped gracefully")
}
