package events

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writer messageWriter
	topic  string
	logger *slog.Logger
}

// KafkaConfig zero values fall back to the defaults below. kafka-go's own defaults (1s batch
// linger, 10 attempts) are tuned for throughput; events here are single messages written
// on the request path, so they flush immediately and give up quickly.
type KafkaConfig struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
	BatchTimeout time.Duration
	MaxAttempts  int
}

const (
	defaultWriteTimeout = 2 * time.Second
	defaultBatchTimeout = 5 * time.Millisecond
	defaultMaxAttempts  = 3
)

func NewKafkaPublisher(cfg KafkaConfig, logger *slog.Logger) (*KafkaPublisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka brokers not configured")
	}
	if cfg.Topic == "" {
		return nil, errors.New("kafka topic not configured")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return newKafkaPublisher(newKafkaWriter(cfg), cfg.Topic, logger), nil
}

func newKafkaWriter(cfg KafkaConfig) *kafka.Writer {
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = defaultWriteTimeout
	}
	if cfg.BatchTimeout <= 0 {
		cfg.BatchTimeout = defaultBatchTimeout
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultMaxAttempts
	}

	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		WriteTimeout: cfg.WriteTimeout,
		BatchTimeout: cfg.BatchTimeout,
		BatchSize:    1,
		MaxAttempts:  cfg.MaxAttempts,
		RequiredAcks: kafka.RequireOne,
	}
}

func newKafkaPublisher(w messageWriter, topic string, logger *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer: w,
		topic:  topic,
		logger: logger.With("component", "events.kafka", "topic", topic),
	}
}

// Publish writes e keyed by booking id so all events of one booking land on one partition.
func (p *KafkaPublisher) Publish(ctx context.Context, e Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(e.BookingID.String()),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(e.ID.String())},
			{Key: "event_type", Value: []byte(e.Kind)},
		},
		Time: e.OccurredAt,
	}
	msg.Headers = InjectTraceHeaders(ctx, msg.Headers)

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Warn("publish failed", slog.String("event_type", string(e.Kind)), slog.String("booking_id", e.BookingID.String()), slog.Any("err", err))
		return err
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// InjectTraceHeaders appends W3C trace context headers to Kafka headers.
func InjectTraceHeaders(ctx context.Context, headers []kafka.Header) []kafka.Header {
	carrier := &headerCarrier{headers: headers}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	return carrier.headers
}

func HeaderValue(headers []kafka.Header, key string) string {
	for _, h := range headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

type headerCarrier struct {
	headers []kafka.Header
}

var _ propagation.TextMapCarrier = (*headerCarrier)(nil)

func (c *headerCarrier) Get(key string) string {
	return HeaderValue(c.headers, key)
}

func (c *headerCarrier) Keys() []string {
	keys := make([]string, 0, len(c.headers))
	for _, h := range c.headers {
		keys = append(keys, h.Key)
	}
	return keys
}

func (c *headerCarrier) Set(key, value string) {
	for i := range c.headers {
		if c.headers[i].Key == key {
			c.headers[i].Value = []byte(value)
			return
		}
	}
	c.headers = append(c.headers, kafka.Header{Key: key, Value: []byte(value)})
}
