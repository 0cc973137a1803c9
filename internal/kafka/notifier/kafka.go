package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/cypu/rulebook-api/internal/config"
)

type kafkaNotifier struct {
	logger *zap.SugaredLogger
	w      *kafka.Writer
}

// NewKafkaNotifier writes events asynchronously to cfg.Topic.  The writer is
// closed once ctx is done; wg is released after that.
func NewKafkaNotifier(ctx context.Context, wg *sync.WaitGroup, logger *zap.SugaredLogger, cfg config.KafkaConfig) Notifier {
	w := &kafka.Writer{
		Addr:        kafka.TCP(fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		Topic:       cfg.Topic,
		Async:       true,
		Balancer:    &kafka.LeastBytes{},
		ErrorLogger: zap.NewStdLog(logger.Desugar()),
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		logger.Info("shutting down kafka writer")
		if err := w.Close(); err != nil {
			logger.Errorw("failed to close kafka writer", "error", err)
		}
	}()

	return &kafkaNotifier{logger: logger, w: w}
}

func (k *kafkaNotifier) ContentChanged(ctx context.Context, ev Event) error {
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	value, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	key := ev.ID
	if key == "" {
		key = ev.ParentID
	}
	if err := k.w.WriteMessages(ctx, kafka.Message{
		Key:     []byte(key),
		Value:   value,
		Headers: []kafka.Header{{Key: "X-Content-Kind", Value: []byte(ev.Kind)}},
	}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	return nil
}
