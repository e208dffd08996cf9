package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/twmb/franz-go/pkg/kgo"

	"oficina/internal/config"
	"oficina/internal/infrastructure/encoding/avro"
	"oficina/pkg/logger"
)

// WorkOrderProducer publishes submitted work orders to Kafka as Avro binaries.
// The application layer hands over plain JSON; the conversion to the Avro
// schema happens here so the domain stays encoding-agnostic.
type WorkOrderProducer struct {
	client  *kgo.Client
	encoder *avro.Encoder
	topic   string
	logger  logger.Logger
}

func NewWorkOrderProducer(cfg config.KafkaConfig, log logger.Logger) (*WorkOrderProducer, error) {
	encoder, err := avro.NewWorkOrderEncoder()
	if err != nil {
		return nil, fmt.Errorf("create avro encoder: %w", err)
	}

	opts := []kgo.Opt{
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(cfg.OrderTopic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.DisableIdempotentWrite(),
	}

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	log.Info("kafka producer ready",
		logger.Any("brokers", cfg.Brokers),
		logger.String("topic", cfg.OrderTopic),
	)

	return &WorkOrderProducer{
		client:  client,
		encoder: encoder,
		topic:   cfg.OrderTopic,
		logger:  log,
	}, nil
}

func (p *WorkOrderProducer) PublishWorkOrder(ctx context.Context, payload []byte) error {
	if len(payload) == 0 {
		return fmt.Errorf("payload is empty")
	}

	var order map[string]interface{}
	if err := json.Unmarshal(payload, &order); err != nil {
		return fmt.Errorf("decode work order json: %w", err)
	}

	native, err := avro.ToWorkOrderNative(order)
	if err != nil {
		return fmt.Errorf("map work order to avro: %w", err)
	}

	binary, err := p.encoder.Encode(native)
	if err != nil {
		return fmt.Errorf("encode work order: %w", err)
	}

	key := messageKey(order)

	rec := &kgo.Record{
		Topic:     p.topic,
		Key:       []byte(key),
		Value:     binary,
		Timestamp: time.Now().UTC(),
	}

	results := p.client.ProduceSync(ctx, rec)
	if err := results.FirstErr(); err != nil {
		p.logger.Error("publish work order failed",
			logger.String("topic", p.topic),
			logger.String("key", key),
			logger.Error(err),
		)
		return fmt.Errorf("publish to kafka topic %s: %w", p.topic, err)
	}

	return nil
}

func (p *WorkOrderProducer) Close(ctx context.Context) error {
	p.logger.Info("closing kafka producer", logger.String("topic", p.topic))
	if p.client != nil {
		p.client.Close()
	}
	return nil
}

// messageKey keys records by order id so partitions keep per-order ordering.
// A fresh uuid keeps publishing working if the id is somehow absent.
func messageKey(order map[string]interface{}) string {
	if id, ok := order["id"].(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}
