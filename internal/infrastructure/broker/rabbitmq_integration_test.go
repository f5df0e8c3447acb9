//go:build integration

package broker_test

/*
	Para rodar: go test -tags=integration -v ./internal/infrastructure/broker -run TestRabbitMQ_PublishAndConsume -count=1
*/

import (
	"context"
	"fmt"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/cadastro-funcionarios/internal/application/employee"
	"github.com/jhoicas/cadastro-funcionarios/internal/infrastructure/broker"
)

// startRabbitMQ sobe um RabbitMQ descartável e devolve o container e a URI AMQP.
func startRabbitMQ(t *testing.T) (tc.Container, string) {
	t.Helper()
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "rabbitmq:3.13",
		ExposedPorts: []string{"5672/tcp"},
		WaitingFor:   wait.ForListeningPort("5672/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err, "subir rabbitmq")
	t.Cleanup(func() { _ = c.Terminate(ctx) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "5672/tcp")
	require.NoError(t, err)
	return c, fmt.Sprintf("amqp://guest:guest@%s:%s/", host, port.Port())
}

// consume abre uma conexão própria e devolve as entregas da fila.
func consume(t *testing.T, uri, queue string) <-chan amqp.Delivery {
	t.Helper()
	msgs := consume(t, uri, queue)

	ev := employee.Event{
		ID: "ev-1", Action: employee.ActionCreated, FullName: "Maria Silva",
		CPF: "529.982.247-25", Row: 2, OccurredAt: time.Now(),
	}
	require.NoError(t, pub.Publish(ctx, ev))

	select {
	case m := <-msgs:
		assert.Equal(t, "Cadastro de FUNCIONÁRIO Maria Silva", string(m.Body))
		assert.Equal(t, "529.982.247-25", m.Headers["cpf"])
		assert.Equal(t, "ev-1", m.MessageId)
		assert.Equal(t, uint8(amqp.Persistent), m.DeliveryMode)
	case <-time.After(10 * time.Second):
		t.Fatal("timeout esperando mensagem")
	}
}

// Derruba as conexões no servidor: o Publisher precisa reconectar sozinho.
func TestRabbitMQ_ReconectaAposQuedaDaConexao(t *testing.T) {
	ctx := context.Background()
	c, uri := startRabbitMQ(t)
	queue := "funcionarios_reconexao"

	pub, err := broker.NewPublisher(uri, queue)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pub.Close() })

	code, _, err := c.Exec(ctx, []string{"rabbitmqctl", "close_all_connections", "teste de reconexão"})
	require.NoError(t, err)
	require.Zero(t, code)

	ev := employee.Event{
		ID: "ev-2", Action: employee.ActionDeleted, FullName: "Maria Silva",
		CPF: "529.982.247-25", Row: 2, OccurredAt: time.Now(),
	}
	msgs := consume(t, uri, queue)

	// A queda chega ao cliente de forma assíncrona: uma publicação pode ainda sair
	// pela conexão antiga e se perder, então repete até o evento ser entregue.
	require.Eventually(t, func() bool {
		if err := pub.Publish(ctx, ev); err != nil {
			return false
		}
		select {
		case m := <-msgs:
			return m.MessageId == "ev-2" && string(m.Body) == "Exclusão de FUNCIONÁRIO Maria Silva"
		case <-time.After(500 * time.Millisecond):
			return false
		}
	}, 20*time.Second, 100*time.Millisecond)
}

func TestRabbitMQ_PublishDepoisDeClose(t *testing.T) {
	_, uri := startRabbitMQ(t)
	pub, err := broker.NewPublisher(uri, "funcionarios_close")
	require.NoError(t, err)
	require.NoError(t, pub.Close())

	err = pub.Publish(context.Background(), employee.Event{ID: "ev-3", Action: employee.ActionCreated})
	assert.ErrorIs(t, err, broker.ErrPublisherClosed)
}
