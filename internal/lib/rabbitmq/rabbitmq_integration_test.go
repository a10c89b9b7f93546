//go:build integration

package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRabbitMQ(ctx context.Context, t *testing.T) string {
	t.Helper()
	if url := os.Getenv("TEST_RABBITMQ_URL"); url != "" {
		t.Logf("Using external RabbitMQ service: %s", url)
		return url
	}

	req := testcontainers.ContainerRequest{
		Image:        "rabbitmq:3-management",
		ExposedPorts: []string{"5672/tcp"},
		Env: map[string]string{
			"RABBITMQ_DEFAULT_USER": "guest",
			"RABBITMQ_DEFAULT_PASS": "guest",
		},
		WaitingFor: wait.ForLog("Server startup complete").WithStartupTimeout(2 * time.Minute),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate rabbitmq container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5672/tcp")
	require.NoError(t, err)
	return fmt.Sprintf("amqp://guest:guest@%s:%s/", host, port.Port())
}

func TestPublishAndConsume(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	conn, err := Connect(setupRabbitMQ(ctx, t), 5, time.Second)
	require.NoError(t, err)
	defer func() { _ = conn.Close() }()

	ch, err := SetupChannel(conn, ContactQueues("it.contact.created"))
	require.NoError(t, err)
	defer func() { _ = ch.Close() }()

	got := make(chan map[string]string, 1)
	wait, err := ConsumerMessage(ctx, newNoopLogger(), ch, "it.contact.created", func(_ context.Context, body []byte) error {
		var m map[string]string
		if err := json.Unmarshal(body, &m); err != nil {
			return err
		}
		got <- m
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, NewPublisher(ch).Publish(ctx, RoutingKeyContactCreated, map[string]string{"id": "c-1"}))

	select {
	case m := <-got:
		assert.Equal(t, "c-1", m["id"])
	case <-time.After(10 * time.Second):
		t.Fatal("message was not delivered")
	}

	cancel()
	wait()
}
