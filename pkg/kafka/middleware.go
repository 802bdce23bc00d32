package kafka

import (
	"context"
	"fmt"
	"time"

	"myroom/pkg/logger"
)

// LoggingMiddleware logs every publish with its outcome.
func LoggingMiddleware(log *logger.Logger) ProducerMiddleware {
	return func(ctx context.Context, msg Message, next PublishFunc) error {
		start := time.Now()
		err := next(ctx, msg)

		args := []any{
			"key", msg.Key,
			"event_id", msg.EventID(),
			"event_type", msg.EventType(),
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if err != nil {
			log.Warn("Failed to publish message", append(args, "error", err)...)
			return err
		}
		log.Debug("Message published", args...)
		return nil
	}
}

// PublishObserver receives the outcome of every publish.
type PublishObserver interface {
	ObservePublish(eventType string, err error, duration time.Duration)
}

func MetricsMiddleware(o PublishObserver) ProducerMiddleware {
	return func(ctx context.Context, msg Message, next PublishFunc) error {
		start := time.Now()
		err := next(ctx, msg)
		o.ObservePublish(msg.EventType(), err, time.Since(start))
		return err
	}
}

func formatArgs(msg string, args []any) string {
	return fmt.Sprintf(msg, args...)
}
