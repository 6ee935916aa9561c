// Package listener turns order requests published on Kafka into orders.
package listener

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fekuna/omnipos-warehouse-service/internal/order"
	"github.com/fekuna/omnipos-warehouse-service/internal/order/dto"
	"github.com/fekuna/omnipos-warehouse-service/pkg/logger"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const EventOrderRequested = "OrderRequested"

// MessageReader is the part of *kafka.Reader the listener uses.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

type OrderListener struct {
	reader MessageReader
	uc     order.UseCase
	logger logger.ZapLogger
	retry  time.Duration
}

// NewKafkaReader builds a consumer-group reader for the order topic.
func NewKafkaReader(brokers []string, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
}

func NewOrderListener(reader MessageReader, uc order.UseCase, log logger.ZapLogger) *OrderListener {
	return &OrderListener{
		reader: reader,
		uc:     uc,
		logger: log,
		retry:  time.Second,
	}
}

// Start blocks until ctx is cancelled.
func (l *OrderListener) Start(ctx context.Context) error {
	l.logger.Info("starting order kafka listener")
	defer func() {
		if err := l.reader.Close(); err != nil {
			l.logger.Warn("failed to close kafka reader", zap.Error(err))
		}
	}()

	for {
		msg, err := l.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				l.logger.Info("stopping order kafka listener")
				return nil
			}
			l.logger.Error("failed to read kafka message", zap.Error(err))
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(l.retry):
			}
			continue
		}
		l.processMessage(ctx, msg.Value)
	}
}

type OrderRequestedEvent struct {
	EventID   string              `json:"event_id"`
	EventType string              `json:"event_type"`
	Payload   OrderRequestPayload `json:"payload"`
	Timestamp time.Time           `json:"timestamp"`
}

type OrderRequestPayload struct {
	UserID        string             `json:"user_id"`
	CustomerName  string             `json:"customer_name"`
	CustomerEmail string             `json:"customer_email"`
	Items         []OrderItemPayload `json:"items"`
}

type OrderItemPayload struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (l *OrderListener) processMessage(ctx context.Context, value []byte) {
	var event OrderRequestedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("failed to unmarshal event", zap.Error(err))
		return
	}

	if event.EventType != EventOrderRequested {
		return
	}

	input := &dto.CreateOrderInput{
		UserID:        event.Payload.UserID,
		CustomerName:  event.Payload.CustomerName,
		CustomerEmail: event.Payload.CustomerEmail,
		Items:         make([]dto.OrderLine, 0, len(event.Payload.Items)),
	}
	for _, item := range event.Payload.Items {
		input.Items = append(input.Items, dto.OrderLine{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	o, err := l.uc.CreateOrder(ctx, input)
	if err != nil {
		// Rejected requests are dropped; the event is not redelivered.
		l.logger.Error("failed to create order from event",
			zap.String("event_id", event.EventID),
			zap.Error(err),
		)
		return
	}

	l.logger.Info("order created from event",
		zap.String("event_id", event.EventID),
		zap.String("order_id", o.ID),
	)
}
