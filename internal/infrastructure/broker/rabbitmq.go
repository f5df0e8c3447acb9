// Package broker publica os eventos do cadastro em uma fila RabbitMQ.
package broker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/jhoicas/cadastro-funcionarios/internal/application/employee"
)

var _ employee.EventPublisher = (*Publisher)(nil)

// publishTimeout vale quando o contexto do chamador não tem prazo.
const publishTimeout = 2 * time.Second

// ErrPublisherClosed é devolvido por Publish depois de Close.
var ErrPublisherClosed = errors.New("broker: publisher fechado")

// Publisher publica mensagens persistentes na fila configurada (exchange padrão).
// Se a conexão cair, o próximo Publish reconecta e declara a fila de novo.
type Publisher struct {
	mu     sync.Mutex
	uri    string
	queue  string
	conn   *amqp.Connection
	ch     *amqp.Channel
	closed bool
}

// NewPublisher conecta, abre um canal e garante a fila durável.
func NewPublisher(uri, queue string) (*Publisher, error) {
	p := &Publisher{uri: uri, queue: queue}
	if err := p.connect(); err != nil {
		return nil, err
	}
	return p, nil
}

// connect abre conexão e canal e declara a fila. Chamado com mu travado (ou na construção).
func (p *Publisher) connect() error {
	conn, err := amqp.Dial(p.uri)
	if err != nil {
		return fmt.Errorf("broker: conectar: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("broker: abrir canal: %w", err)
	}

	_, err = ch.QueueDeclare(
		p.queue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("broker: declarar fila %q: %w", p.queue, err)
	}
	p.conn, p.ch = conn, ch
	return nil
}

// ensureChannel reconecta quando o canal ou a conexão estão fechados.
func (p *Publisher) ensureChannel() error {
	if p.closed {
		return ErrPublisherClosed
	}
	if p.ch != nil && !p.ch.IsClosed() && p.conn != nil && !p.conn.IsClosed() {
		return nil
	}
	p.drop()
	return p.connect()
}

// drop descarta canal e conexão atuais, ignorando erros de fechamento.
func (p *Publisher) drop() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
	p.ch, p.conn = nil, nil
}

// Publish envia o evento como texto com os metadados nos cabeçalhos.
// Um canal que se revela fechado na publicação é reaberto e a mensagem reenviada uma vez.
func (p *Publisher) Publish(ctx context.Context, ev employee.Event) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, publishTimeout)
		defer cancel()
	}
	body, headers := Message(ev)
	msg := amqp.Publishing{
		ContentType:  "text/plain",
		DeliveryMode: amqp.Persistent,
		MessageId:    ev.ID,
		Timestamp:    ev.OccurredAt,
		Body:         []byte(body),
		Headers:      headers,
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ensureChannel(); err != nil {
		return err
	}
	err := p.publish(ctx, msg)
	if !errors.Is(err, amqp.ErrClosed) {
		return err
	}
	p.drop()
	if err := p.ensureChannel(); err != nil {
		return err
	}
	return p.publish(ctx, msg)
}

func (p *Publisher) publish(ctx context.Context, msg amqp.Publishing) error {
	return p.ch.PublishWithContext(
		ctx,
		"",      // exchange padrão
		p.queue, // routing key = nome da fila
		false,   // mandatory
		false,   // immediate
		msg,
	)
}

// Message monta o corpo ("Cadastro de FUNCIONÁRIO Maria") e os cabeçalhos do evento.
func Message(ev employee.Event) (string, amqp.Table) {
	body := fmt.Sprintf("%s de FUNCIONÁRIO %s", capitalize(ev.Action), ev.FullName)
	headers := amqp.Table{
		"action":    ev.Action,
		"cpf":       ev.CPF,
		"nome":      ev.FullName,
		"row":       int32(ev.Row),
		"timestamp": ev.OccurredAt.Format(time.RFC3339),
	}
	return body, headers
}

// Close fecha canal e conexão; Publish passa a devolver ErrPublisherClosed.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	var errCh, errConn error
	if p.ch != nil && !p.ch.IsClosed() {
		errCh = p.ch.Close()
	}
	if p.conn != nil && !p.conn.IsClosed() {
		errConn = p.conn.Close()
	}
	p.ch, p.conn = nil, nil
	return errors.Join(errCh, errConn)
}

func capitalize(s string) string {
	for i := range s {
		if i > 0 {
			return strings.ToUpper(s[:i]) + s[i:]
		}
	}
	return strings.ToUpper(s)
}
