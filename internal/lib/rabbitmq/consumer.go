package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/miracle-catalog/internal/lib/sl"
)

// ConsumeChannel — часть amqp.Channel, нужная для чтения очереди.
type ConsumeChannel interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
}

// Handler обрабатывает тело сообщения. Ошибка возвращает сообщение в очередь,
// кроме ошибок, обёрнутых в Permanent: такие сообщения уходят в dead-letter очередь.
type Handler func(ctx context.Context, body []byte) error

// ErrPermanent помечает сообщение, повторная доставка которого ничего не изменит.
var ErrPermanent = errors.New("permanent message failure")

// Permanent оборачивает err так, что потребитель не вернёт сообщение в очередь.
func Permanent(err error) error {
	return fmt.Errorf("%w: %w", ErrPermanent, err)
}

// maxInFlight ограничивает число одновременно обрабатываемых сообщений.
const maxInFlight = 10

// ConsumerMessage читает очередь queueName и передаёт сообщения handler.
// Возвращённая функция ждёт завершения всех начатых обработчиков после отмены ctx.
func ConsumerMessage(ctx context.Context, log *slog.Logger, ch ConsumeChannel, queueName string, handler Handler) (wait func(), err error) {
	const op = "rabbitmq.ConsumerMessage"
	delivery, err := ch.Consume(
		queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log = log.With(slog.String("op", op), slog.String("queue", queueName))
	sem := make(chan struct{}, maxInFlight)
	var wg sync.WaitGroup
	done := make(chan struct{})

	go func() {
		defer close(done)
		for {
			select {
			case d, ok := <-delivery:
				if !ok {
					log.Info("delivery channel closed")
					return
				}
				sem <- struct{}{}
				wg.Add(1)
				go func(d amqp.Delivery) {
					defer func() {
						<-sem
						wg.Done()
					}()
					if err := handler(ctx, d.Body); err != nil {
						requeue := !errors.Is(err, ErrPermanent)
						log.Error("failed to handle message", slog.Bool("requeue", requeue), sl.Err(err))
						if nackErr := d.Nack(false, requeue); nackErr != nil {
							log.Error("failed to nack message", sl.Err(nackErr))
						}
						return
					}
					if ackErr := d.Ack(false); ackErr != nil {
						log.Error("failed to ack message", sl.Err(ackErr))
					}
				}(d)
			case <-ctx.Done():
				return
			}
		}
	}()

	return func() {
		<-done
		wg.Wait()
	}, nil
}
