package notify

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/fekuna/omnipos-warehouse-service/pkg/logger"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaNotifier publishes notifications to a topic. Writes happen off the
// caller's goroutine; failures are logged and dropped.
type KafkaNotifier struct {
	writer  messageWriter
	timeout time.Duration
	logger  logger.ZapLogger
	wg      sync.WaitGroup
}

func NewKafkaNotifier(brokers []string, topic string, log logger.ZapLogger) *KafkaNotifier {
	return &KafkaNotifier{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		},
		timeout: 5 * time.Second,
		logger:  log,
	}
}

func (k *KafkaNotifier) Notify(_ context.Context, n Notification) {
	payload, err := json.Marshal(n)
	if err != nil {
		k.logger.Error("failed to marshal notification", zap.Error(err))
		return
	}

	k.wg.Add(1)
	go func() {
		defer k.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), k.timeout)
		defer cancel()

		err := k.writer.WriteMessages(ctx, kafka.Message{
			Key:   []byte(n.Variant),
			Value: payload,
		})
		if err != nil {
			k.logger.Error("failed to publish notification", zap.String("title", n.Title), zap.Error(err))
		}
	}()
}

// Close waits for in-flight writes and closes the underlying writer.
func (k *KafkaNotifier) Close() error {
	k.wg.Wait()
	if c, ok := k.writer.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
