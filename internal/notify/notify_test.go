package notify

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fekuna/omnipos-warehouse-service/pkg/logger"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMulti_FansOutAndSkipsNil(t *testing.T) {
	a, b := NewFeed(10), NewFeed(10)
	m := Multi(a, nil, b)

	m.Notify(context.Background(), Info("Order created", "Order #1 has been created."))

	require.Len(t, a.Recent(0), 1)
	require.Len(t, b.Recent(0), 1)
	assert.False(t, a.Recent(1)[0].CreatedAt.IsZero())
	assert.Equal(t, VariantDefault, b.Recent(1)[0].Variant)
}

func TestFeed_BoundedNewestFirst(t *testing.T) {
	f := NewFeed(3)
	for _, title := range []string{"a", "b", "c", "d"} {
		f.Notify(context.Background(), Info(title, ""))
	}

	got := f.Recent(0)
	require.Len(t, got, 3)
	assert.Equal(t, "d", got[0].Title)
	assert.Equal(t, "b", got[2].Title)
	assert.Len(t, f.Recent(2), 2)
}

func TestLogNotifier_Levels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	n := NewLogNotifier(logger.Wrap(zap.New(core)))

	n.Notify(context.Background(), Info("Product added", "Lamp has been added to inventory."))
	n.Notify(context.Background(), Alert("Login failed", "Invalid email or password."))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "Login failed", entries[1].ContextMap()["title"])
}

type fakeWriter struct {
	mu     sync.Mutex
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.msgs = append(w.msgs, msgs...)
	return w.err
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaNotifier_Publishes(t *testing.T) {
	w := &fakeWriter{}
	k := &KafkaNotifier{writer: w, timeout: time.Second, logger: logger.NewNop()}

	k.Notify(context.Background(), Alert("Login failed", "Invalid email or password."))
	require.NoError(t, k.Close())

	require.Len(t, w.msgs, 1)
	assert.Equal(t, []byte(VariantDestructive), w.msgs[0].Key)

	var n Notification
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &n))
	assert.Equal(t, "Login failed", n.Title)
	assert.True(t, w.closed)
}

func TestKafkaNotifier_WriteErrorIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	w := &fakeWriter{err: errors.New("broker down")}
	k := &KafkaNotifier{writer: w, timeout: time.Second, logger: logger.Wrap(zap.New(core))}

	k.Notify(context.Background(), Info("Order created", ""))
	require.NoError(t, k.Close())

	assert.Equal(t, 1, logs.FilterMessage("failed to publish notification").Len())
}
