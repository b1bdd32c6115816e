package kafka_middleware

import (
	"context"
	"time"

	"staybook/pkg/kafka"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	messagesPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "staybook_kafka_messages_published_total",
			Help: "Kafka messages published, by topic and outcome.",
		},
		[]string{"topic", "outcome"},
	)

	messagesConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "staybook_kafka_messages_consumed_total",
			Help: "Kafka messages consumed, by topic and outcome.",
		},
		[]string{"topic", "outcome"},
	)

	publishDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "staybook_kafka_publish_duration_seconds",
			Help:    "Kafka publish latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"topic"},
	)
)

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// MetricsProducerMiddleware records publish counts and latency.
func MetricsProducerMiddleware() kafka.ProducerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next func(ctx context.Context, msg kafka.Message) error) error {
		start := time.Now()
		err := next(ctx, msg)
		publishDuration.WithLabelValues(msg.Topic).Observe(time.Since(start).Seconds())
		messagesPublished.WithLabelValues(msg.Topic, outcome(err)).Inc()
		return err
	}
}

// MetricsConsumerMiddleware records consume counts.
func MetricsConsumerMiddleware() kafka.ConsumerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next kafka.MessageHandler) error {
		err := next(ctx, msg)
		messagesConsumed.WithLabelValues(msg.Topic, outcome(err)).Inc()
		return err
	}
}
