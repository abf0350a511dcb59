package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/pollen-stats/internal/config"
	"github.com/couchcryptid/pollen-stats/internal/domain"
	"github.com/couchcryptid/pollen-stats/internal/observability"
	kafkago "github.com/segmentio/kafka-go"
)

// messageWriter is the subset of *kafkago.Writer used by Publisher.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Publisher produces season summaries to a Kafka topic.
type Publisher struct {
	writer  messageWriter
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewPublisher creates a Kafka producer for the configured summary topic.
func NewPublisher(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) *Publisher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Publisher{writer: w, logger: logger, metrics: metrics}
}

// Publish serializes one season summary and writes it keyed by the dataset
// key, so republishing a season lands on the same partition.
func (p *Publisher) Publish(ctx context.Context, summary domain.Summary) error {
	msg, err := serializeToMessage(summary)
	if err != nil {
		p.metrics.PublishErrors.Inc()
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.metrics.PublishErrors.Inc()
		return fmt.Errorf("publish season %s: %w", summary.Key, err)
	}
	p.metrics.SummariesPublished.Inc()
	p.logger.Info("season summary published", "season", summary.Key, "city", summary.City)
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// serializeToMessage marshals a Summary into a Kafka message.
func serializeToMessage(summary domain.Summary) (kafkago.Message, error) {
	data, err := json.Marshal(summary)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize season summary: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(summary.Key),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "city", Value: []byte(summary.City)},
			{Key: "generated_at", Value: []byte(summary.GeneratedAt.Format(time.RFC3339))},
		},
	}, nil
}
