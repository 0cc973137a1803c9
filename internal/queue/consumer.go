package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/cypu/rulebook-api/internal/mail"
)

const (
	minBackoff = time.Second
	maxBackoff = 30 * time.Second
)

// StartMailConsumer consumes the mail queue and hands every job to deliver.
// It reconnects with exponential backoff and returns only when ctx is done.
// A job that cannot be decoded or delivered is rejected without requeue.
func StartMailConsumer(ctx context.Context, url, queue string, deliver mail.Sender, log *zap.SugaredLogger) error {
	backoff := minBackoff
	for {
		conn, err := amqp.Dial(url)
		if err != nil {
			log.Warnw("mail consumer failed to dial broker", "error", err, "retry_in", backoff)
			if !sleep(ctx, backoff) {
				return ctx.Err()
			}
			if backoff < maxBackoff {
				backoff *= 2
			}
			continue
		}
		backoff = minBackoff

		err = consumeLoop(ctx, conn, queue, deliver, log)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Warnw("mail consumer loop ended, reconnecting", "error", err)
		if !sleep(ctx, 2*time.Second) {
			return ctx.Err()
		}
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func consumeLoop(ctx context.Context, conn *amqp.Connection, queue string, deliver mail.Sender, log *zap.SugaredLogger) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(10, 0, false); err != nil {
		log.Warnw("mail consumer failed to set qos", "error", err)
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	msgs, err := ch.Consume(queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			if err := handleDelivery(ctx, d.Body, deliver); err != nil {
				log.Errorw("mail job failed", "message_id", d.MessageId, "error", err)
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func handleDelivery(ctx context.Context, body []byte, deliver mail.Sender) error {
	var job MailJob
	if err := json.Unmarshal(body, &job); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	return deliver.Send(ctx, job.Message)
}
