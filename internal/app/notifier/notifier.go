// Package notifier собирает фоновый процесс, который читает события
// contact.created из RabbitMQ и пересылает обращения на почту редакции.
package notifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/miracle-catalog/internal/config"
	"github.com/magabrotheeeer/miracle-catalog/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/miracle-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/miracle-catalog/internal/lib/smtp"
	notifierservice "github.com/magabrotheeeer/miracle-catalog/internal/services/notifier"
)

const (
	rabbitMQRetries   = 10
	rabbitMQRetryWait = 3 * time.Second
)

// App — процесс рассылки уведомлений.
type App struct {
	conn    *amqp.Connection
	ch      *amqp.Channel
	queue   string
	service *notifierservice.Service
	logger  *slog.Logger
}

// New подключается к брокеру и объявляет очередь обращений.
func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.notifier.New"

	if cfg.RabbitMQURL == "" {
		return nil, fmt.Errorf("%s: %w", op, errors.New("rabbitmq url is not set"))
	}
	if cfg.SMTPHost == "" || cfg.SMTPInbox == "" {
		return nil, fmt.Errorf("%s: %w", op, errors.New("smtp host and inbox must be set"))
	}

	conn, err := rabbitmq.Connect(cfg.RabbitMQURL, rabbitMQRetries, rabbitMQRetryWait)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	queues := rabbitmq.ContactQueues(cfg.ContactQueue)
	ch, err := rabbitmq.SetupChannel(conn, queues)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	transport := smtp.NewTransport(cfg.SMTP, logger)

	return &App{
		conn:    conn,
		ch:      ch,
		queue:   queues[0].QueueName,
		service: notifierservice.NewService(logger, transport, cfg.SMTPInbox),
		logger:  logger,
	}, nil
}

// Run обрабатывает очередь до отмены ctx и дожидается начатых отправок.
func (a *App) Run(ctx context.Context) error {
	wait, err := rabbitmq.ConsumerMessage(ctx, a.logger, a.ch, a.queue, a.service.HandleContactCreated)
	if err != nil {
		a.logger.Error("failed to start consumer", slog.String("queue", a.queue), sl.Err(err))
		a.close()
		return err
	}
	a.logger.Info("consuming contact messages", slog.String("queue", a.queue))

	<-ctx.Done()
	a.logger.Info("notifier shutting down gracefully")
	wait()
	a.close()
	return nil
}

func (a *App) close() {
	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close channel", sl.Err(err))
	}
	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close connection", sl.Err(err))
	}
}
