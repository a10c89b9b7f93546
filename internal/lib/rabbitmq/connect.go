// Package rabbitmq содержит подключение к RabbitMQ, объявление топологии,
// публикацию и потребление событий каталога.
package rabbitmq

import (
	"fmt"
	"time"

	"github.com/streadway/amqp"
)

// Connect подключается к брокеру, повторяя попытку retries раз с паузой delay.
func Connect(connection string, retries int, delay time.Duration) (*amqp.Connection, error) {
	const op = "rabbitmq.Connect"
	var conn *amqp.Connection
	var err error

	if retries < 1 {
		retries = 1
	}
	for i := range retries {
		conn, err = amqp.Dial(connection)
		if err == nil {
			return conn, nil
		}
		if i < retries-1 {
			time.Sleep(delay)
		}
	}

	return nil, fmt.Errorf("%s: %w", op, err)
}

// Topology описывает обменник и привязанные к нему очереди.
type Topology interface {
	Qos(prefetchCount, prefetchSize int, global bool) error
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	QueueBind(name, key, exchange string, noWait bool, args amqp.Table) error
}

// SetupChannel открывает канал и объявляет топологию событий.
func SetupChannel(conn *amqp.Connection, queues []QueueConfig) (*amqp.Channel, error) {
	const op = "rabbitmq.SetupChannel"

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = Declare(ch, queues); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ch, nil
}

// Declare объявляет durable direct-обменник и очереди. Повторный вызов безопасен.
func Declare(ch Topology, queues []QueueConfig) error {
	if err := ch.Qos(10, 0, false); err != nil {
		return fmt.Errorf("failed to set QoS: %w", err)
	}

	if err := ch.ExchangeDeclare(
		ExchangeName,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("failed to declare exchange %s: %w", ExchangeName, err)
	}

	for _, q := range queues {
		var args amqp.Table
		if q.DeadLetterQueue != "" {
			if _, err := ch.QueueDeclare(
				q.DeadLetterQueue,
				true,
				false,
				false,
				false,
				nil,
			); err != nil {
				return fmt.Errorf("failed to declare dead-letter queue %s: %w", q.DeadLetterQueue, err)
			}
			// Обменник по умолчанию доставляет в очередь с именем, равным ключу.
			args = amqp.Table{
				"x-dead-letter-exchange":    "",
				"x-dead-letter-routing-key": q.DeadLetterQueue,
			}
		}

		if _, err := ch.QueueDeclare(
			q.QueueName,
			true,
			false,
			false,
			false,
			args,
		); err != nil {
			return fmt.Errorf("failed to declare queue %s: %w", q.QueueName, err)
		}

		if err := ch.QueueBind(
			q.QueueName,
			q.RoutingKey,
			ExchangeName,
			false,
			nil,
		); err != nil {
			return fmt.Errorf("failed to bind queue %s with routing key %s: %w", q.QueueName, q.RoutingKey, err)
		}
	}
	return nil
}
