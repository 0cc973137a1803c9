package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/cypu/rulebook-api/internal/mail"
)

// Publisher is a mail.Sender that enqueues messages instead of delivering
// them.  The broker connection is opened lazily and reopened after it drops.
type Publisher struct {
	url   string
	queue string
	log   *zap.SugaredLogger

	mu   sync.Mutex
	conn *amqp.Connection
}

var _ mail.Sender = (*Publisher)(nil)

func NewPublisher(url, queue string, log *zap.SugaredLogger) *Publisher {
	return &Publisher{url: url, queue: queue, log: log}
}

func (p *Publisher) connection() (*amqp.Connection, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.conn != nil && !p.conn.IsClosed() {
		return p.conn, nil
	}
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return nil, fmt.Errorf("dial broker: %w", err)
	}
	p.conn = conn
	return conn, nil
}

// Send publishes msg as a persistent MailJob on the mail queue.
func (p *Publisher) Send(ctx context.Context, msg mail.Message) error {
	if msg.To == "" {
		return mail.ErrNoRecipient
	}
	conn, err := p.connection()
	if err != nil {
		p.log.Warnw("mail publish failed", "error", err)
		return err
	}
	ch, err := conn.Channel()
	if err != nil {
		p.log.Warnw("mail publish failed, channel open", "error", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	job := MailJob{ID: uuid.NewString(), Message: msg, EnqueuedAt: time.Now().UTC()}
	body, err := json.Marshal(job)
	if err != nil {
		return err
	}
	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    job.ID,
		Timestamp:    job.EnqueuedAt,
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
		p.log.Warnw("mail publish failed", "job", job.ID, "error", err)
		return err
	}
	return nil
}

// Close drops the broker connection.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.conn == nil || p.conn.IsClosed() {
		return nil
	}
	return p.conn.Close()
}
