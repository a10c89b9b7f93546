package rabbitmq

// ExchangeName — обменник для событий каталога.
const ExchangeName = "miracles.events"

// RoutingKeyContactCreated — событие о новом сообщении обратной связи.
const RoutingKeyContactCreated = "contact.created"

// DeadLetterSuffix добавляется к имени очереди для её dead-letter очереди.
const DeadLetterSuffix = ".dead"

// QueueConfig связывает очередь с ключом маршрутизации.
// Непустой DeadLetterQueue получает сообщения, отклонённые без повторной доставки.
type QueueConfig struct {
	QueueName       string
	RoutingKey      string
	DeadLetterQueue string
}

// ContactQueues возвращает очереди, которые читает рассыльщик уведомлений.
func ContactQueues(queueName string) []QueueConfig {
	if queueName == "" {
		queueName = RoutingKeyContactCreated
	}
	return []QueueConfig{
		{
			QueueName:       queueName,
			RoutingKey:      RoutingKeyContactCreated,
			DeadLetterQueue: queueName + DeadLetterSuffix,
		},
	}
}
