package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"san-monitor/internal/aggregators"
	"san-monitor/internal/events"
	"san-monitor/internal/models"
	"san-monitor/internal/shared/loggers"
	"san-monitor/internal/shared/metrics"
	"san-monitor/internal/shared/svcerrors"
	"san-monitor/internal/shared/ulid"
)

const (
	defaultAuditFlushSize     = 100
	defaultAuditFlushInterval = time.Second
)

//go:generate mockgen -source=io_event_consumer.go -destination=./mocks/io_event_consumer_mock.go -package=mocks
type IoEventConsumer interface {
	Start(ctx context.Context)
	Stop()
}

type AuditOptions struct {
	FlushSize     int
	FlushInterval time.Duration
}

type ioEventConsumer struct {
	queue    *EventQueue[models.IoEvent]
	ingester aggregators.EventIngester

	sinks         []AuditEventSink
	flushSize     int
	flushInterval time.Duration
	pending       []events.AuditEvent

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
	now    func() time.Time
}

func NewIoEventConsumer(queue *EventQueue[models.IoEvent], ingester aggregators.EventIngester, sinks []AuditEventSink, options AuditOptions, logger loggers.Logger) IoEventConsumer {
	if options.FlushSize <= 0 {
		options.FlushSize = defaultAuditFlushSize
	}
	if options.FlushInterval <= 0 {
		options.FlushInterval = defaultAuditFlushInterval
	}
	return &ioEventConsumer{
		queue:         queue,
		ingester:      ingester,
		sinks:         sinks,
		flushSize:     options.FlushSize,
		flushInterval: options.FlushInterval,
		stopCh:        make(chan struct{}),
		logger:        logger,
		now:           time.Now,
	}
}

// Start spawns the single worker. One worker keeps events in publish order, which the
// engine's rotation logic depends on.
func (consumer *ioEventConsumer) Start(ctx context.Context) {
	consumer.wg.Add(1)
	go func() {
		defer consumer.wg.Done()

		consumer.run(ctx)
	}()
}

// Stop drains what is already queued, flushes pending audit events and waits for the worker.
func (consumer *ioEventConsumer) Stop() {
	consumer.stopOnce.Do(func() { close(consumer.stopCh) })
	consumer.wg.Wait()
}

func (consumer *ioEventConsumer) run(ctx context.Context) {
	ticker := time.NewTicker(consumer.flushInterval)
	defer ticker.Stop()

	// The final flush must outlive a cancelled ctx.
	defer consumer.flush(context.WithoutCancel(ctx))

	messages := consumer.queue.Messages()
	for {
		select {
		case <-ctx.Done():
			return
		case <-consumer.stopCh:
			consumer.drain(ctx, messages)
			return
		case <-ticker.C:
			consumer.flush(ctx)
		case event, ok := <-messages:
			if !ok {
				return
			}
			consumer.handle(ctx, event)
		}
	}
}

func (consumer *ioEventConsumer) drain(ctx context.Context, messages <-chan models.IoEvent) {
	for {
		select {
		case event, ok := <-messages:
			if !ok {
				return
			}
			consumer.handle(ctx, event)
		default:
			return
		}
	}
}

func (consumer *ioEventConsumer) handle(ctx context.Context, event models.IoEvent) {
	defer func() {
		if r := recover(); r != nil {
			consumer.logger.Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Str(loggers.FieldEventPath, event.Path).
				Msg("consumer panic recovered")

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}

			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricIoEventConsumedTotal.WithLabelValues(svcErr.Code).Inc()
		}
	}()

	eventCtx := consumer.logger.With().
		Str(loggers.FieldRequestID, ulid.NewULID()).
		Str(loggers.FieldEventKind, string(event.Kind)).
		Str(loggers.FieldEventPath, event.Path).
		Logger().WithContext(ctx)

	consumer.ingester.Ingest(eventCtx, event)
	metricIoEventConsumedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricIoEventQueueDepth.Set(float64(consumer.queue.Len()))

	if len(consumer.sinks) == 0 {
		return
	}
	consumer.pending = append(consumer.pending, events.NewAuditEvent(event, consumer.now().UTC()))
	if len(consumer.pending) >= consumer.flushSize {
		consumer.flush(ctx)
	}
}

// flush hands the pending batch to every sink. Sink errors are logged and counted only.
func (consumer *ioEventConsumer) flush(ctx context.Context) {
	if len(consumer.pending) == 0 {
		return
	}
	batch := consumer.pending
	consumer.pending = nil

	for _, sink := range consumer.sinks {
		if err := sink.Append(ctx, batch); err != nil {
			svcErr := errInternalAuditSinkFailed(sink.Name(), err)
			metricAuditAppendTotal.WithLabelValues(sink.Name(), svcErr.Code).Inc()
			consumer.logger.Error().
				Err(svcErr).
				Str(loggers.FieldSink, sink.Name()).
				Int("batch_size", len(batch)).
				Msg("audit sink append failed")
			continue
		}
		metricAuditAppendTotal.WithLabelValues(sink.Name(), metrics.ValueNoError).Inc()
	}
}
