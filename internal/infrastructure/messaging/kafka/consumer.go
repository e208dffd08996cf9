package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	kafkago "github.com/segmentio/kafka-go"

	app "oficina/internal/application/workorder"
	"oficina/internal/config"
	domain "oficina/internal/domain/workorder"
	"oficina/internal/infrastructure/encoding/avro"
	"oficina/pkg/logger"
)

// WorkOrderConsumer reads Avro-encoded work orders from Kafka and hands them
// to the application service for persistence and stock consumption.
type WorkOrderConsumer struct {
	reader  *kafkago.Reader
	encoder *avro.Encoder
	handler *app.Service
	logger  logger.Logger
}

func NewWorkOrderConsumer(cfg config.KafkaConfig, handler *app.Service, log logger.Logger) (*WorkOrderConsumer, error) {
	encoder, err := avro.NewWorkOrderEncoder()
	if err != nil {
		return nil, fmt.Errorf("create avro encoder: %w", err)
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  cfg.Brokers,
		GroupID:  cfg.ConsumerGroup,
		Topic:    cfg.OrderTopic,
		MinBytes: 1e3,
		MaxBytes: 1e6,
	})

	return &WorkOrderConsumer{
		reader:  reader,
		encoder: encoder,
		handler: handler,
		logger:  log,
	}, nil
}

func (c *WorkOrderConsumer) Start(ctx context.Context) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		order, err := c.decode(msg.Value)
		if err != nil {
			// Poison messages are logged and skipped so one bad record
			// cannot stall the whole partition.
			c.logger.Error("skipping undecodable work order message",
				logger.String("key", string(msg.Key)),
				logger.Error(err),
			)
			continue
		}

		if err := c.handler.HandleConsumedOrder(ctx, order); err != nil {
			return fmt.Errorf("handle work order %s: %w", order.ID, err)
		}
	}
}

func (c *WorkOrderConsumer) decode(value []byte) (*domain.WorkOrder, error) {
	native, err := c.encoder.Decode(value)
	if err != nil {
		return nil, fmt.Errorf("decode avro: %w", err)
	}

	plain, err := json.Marshal(avro.FromNative(native))
	if err != nil {
		return nil, fmt.Errorf("flatten avro native: %w", err)
	}

	var order domain.WorkOrder
	if err := json.Unmarshal(plain, &order); err != nil {
		return nil, fmt.Errorf("decode work order: %w", err)
	}

	return &order, nil
}

func (c *WorkOrderConsumer) Close() {
	_ = c.reader.Close()
}
