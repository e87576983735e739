package streams

import (
	"context"

	"san-monitor/internal/models"
)

// IoEventProducer hands normalized events to the consumer in the order given.
// Both the file-system watcher and the HTTP ingestion path publish through it, so
// the engine sees a single ordered stream.
//
//go:generate mockgen -source=io_event_producer.go -destination=./mocks/io_event_producer_mock.go -package=mocks
type IoEventProducer interface {
	Produce(ctx context.Context, source string, ioEvents []models.IoEvent) error
}

const (
	SourceWatcher = "watcher"
	SourceHTTP    = "http"
)

type ioEventProducer struct {
	queue *EventQueue[models.IoEvent]
}

func NewIoEventProducer(queue *EventQueue[models.IoEvent]) IoEventProducer {
	return &ioEventProducer{
		queue: queue,
	}
}

func (producer *ioEventProducer) Produce(ctx context.Context, source string, ioEvents []models.IoEvent) error {
	for _, event := range ioEvents {
		if err := producer.queue.Publish(ctx, event); err != nil {
			return err
		}
		metricIoEventProducedTotal.WithLabelValues(source).Inc()
	}
	metricIoEventQueueDepth.Set(float64(producer.queue.Len()))
	return nil
}
