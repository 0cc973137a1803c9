package notifier

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cypu/rulebook-api/internal/config"
)

func TestNoopNotifier(t *testing.T) {
	assert.NoError(t, NewNoopNotifier().ContentChanged(context.Background(), Event{Kind: KindPage}))
}

func TestEvent_JSON(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	b, err := json.Marshal(Event{Kind: KindChapter, ParentID: "book", Change: ChangeReordered, At: at})
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"chapter","parentId":"book","change":"reordered","at":"2024-01-02T03:04:05Z"}`, string(b))
}

func TestKafkaNotifier_ClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}
	n := NewKafkaNotifier(ctx, wg, zap.NewNop().Sugar(), config.KafkaConfig{Host: "127.0.0.1", Port: 1, Topic: "cypu-content"})
	require.NotNil(t, n)

	cancel()
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("kafka writer was not closed")
	}
}
