package ingestors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"san-monitor/internal/models"
	"san-monitor/internal/shared/loggers"
	"san-monitor/internal/shared/metrics"
	"san-monitor/internal/shared/ulid"
	"san-monitor/internal/shared/validators"
	"san-monitor/internal/stores"
	"san-monitor/internal/streams"
)

const (
	maxBatchBytes = 2 * 1024 * 1024
)

const (
	FormatJSON = "json"
)

// IngestResult represents the result of a batch ingestion operation.
type IngestResult struct {
	BatchID       string `json:"batchId"`
	AcceptedCount int    `json:"acceptedCount"`
}

// eventPayload is one element of the posted JSON array.
type eventPayload struct {
	Kind        string `json:"kind" validate:"required,oneof=created modified deleted moved moved_to"`
	Path        string `json:"path" validate:"required,max=4096"`
	IsDirectory bool   `json:"isDirectory"`
	Timestamp   string `json:"timestamp"`
}

//go:generate mockgen -source=event_ingestion_service.go -destination=./mocks/event_ingestion_service_mock.go -package=mocks
type EventIngestionService interface {
	// IngestBatch validates a JSON array of events, records the batch under its idempotency
	// key and publishes the events to the aggregation engine.
	IngestBatch(ctx context.Context, idempotencyKey string, format string, r io.Reader) (*IngestResult, error)
}

type eventIngestionService struct {
	batchStore stores.EventBatchStore
	producer   streams.IoEventProducer
	validate   *validators.Validate
	now        func() time.Time
}

func NewEventIngestionService(batchStore stores.EventBatchStore, producer streams.IoEventProducer) EventIngestionService {
	return &eventIngestionService{
		batchStore: batchStore,
		producer:   producer,
		validate:   validators.NewJSON(),
		now:        time.Now,
	}
}

func (s *eventIngestionService) IngestBatch(ctx context.Context, idempotencyKey string, format string, r io.Reader) (*IngestResult, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started ingesting event batch with idempotency key: %s, format: %s", idempotencyKey, format)

	receivedAt := s.now().UTC()
	ioEvents, err := s.validateEventBatch(format, r, receivedAt)
	if err != nil {
		logger.Debug().Err(err).Msg("event batch rejected")
		metricEventBatchIngestedTotal.WithLabelValues(codeValidationFailed).Inc()
		return nil, err
	}

	batchID := strings.TrimSpace(idempotencyKey)
	if batchID == "" {
		batchID = ulid.NewULID()
	}

	eventBatch := &models.EventBatch{
		BatchID:    batchID,
		ReceivedAt: receivedAt,
		Events:     ioEvents,
	}

	err = s.batchStore.Put(ctx, eventBatch)
	if err != nil {
		if errors.Is(err, stores.ErrEventBatchAlreadyExist) {
			svcError := errEventBatchAlreadyProcessed(err)
			metricEventBatchIngestedTotal.WithLabelValues(svcError.Code).Inc()
			return nil, svcError
		}
		svcError := errInternalEventBatchStoreFailed(err)
		metricEventBatchIngestedTotal.WithLabelValues(svcError.Code).Inc()
		return nil, svcError
	}

	err = s.producer.Produce(ctx, streams.SourceHTTP, ioEvents)
	if err != nil {
		// Release the key so a retry is accepted instead of answered with ING_1001.
		if deleteErr := s.batchStore.Delete(context.WithoutCancel(ctx), batchID); deleteErr != nil {
			logger.Error().Err(deleteErr).Msgf("failed to release idempotency key %s", batchID)
		}
		svcError := errInternalEventPublishFailed(err)
		metricEventBatchIngestedTotal.WithLabelValues(svcError.Code).Inc()
		return nil, svcError
	}

	metricEventBatchIngestedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricEventsAcceptedTotal.Add(float64(len(ioEvents)))
	return &IngestResult{BatchID: batchID, AcceptedCount: len(ioEvents)}, nil
}

func (s *eventIngestionService) validateEventBatch(format string, r io.Reader, receivedAt time.Time) ([]models.IoEvent, error) {
	if r == nil {
		return nil, errValidationFailed("empty request body", nil)
	}

	if !strings.Contains(strings.ToLower(format), FormatJSON) {
		return nil, errValidationFailed(fmt.Sprintf("unsupported input format: %q", format), nil)
	}

	buf, err := io.ReadAll(io.LimitReader(r, maxBatchBytes+1))
	if err != nil {
		return nil, errValidationFailed("failed to read request body", err)
	}
	if len(buf) > maxBatchBytes {
		return nil, errValidationFailed("batch too large: must be <= 2MB", nil)
	}

	var payloads []eventPayload
	if err := json.Unmarshal(buf, &payloads); err != nil {
		return nil, errValidationFailed("invalid json: expected an array of events", err)
	}
	if len(payloads) == 0 {
		return nil, errValidationFailed("events cannot be empty", nil)
	}

	ioEvents := make([]models.IoEvent, 0, len(payloads))
	for i := range payloads {
		event, err := s.toIoEvent(&payloads[i], i, receivedAt)
		if err != nil {
			return nil, err
		}
		ioEvents = append(ioEvents, event)
	}
	return ioEvents, nil
}

func (s *eventIngestionService) toIoEvent(payload *eventPayload, index int, receivedAt time.Time) (models.IoEvent, error) {
	payload.Kind = strings.ToLower(strings.TrimSpace(payload.Kind))
	payload.Path = strings.TrimSpace(payload.Path)

	if err := s.validate.Struct(payload); err != nil {
		var validationErrors validators.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			return models.IoEvent{}, errValidationFailed(fmt.Sprintf("item at index %d: %s", index, formatFieldError(validationErrors[0])), nil)
		}
		return models.IoEvent{}, errValidationFailed(fmt.Sprintf("item at index %d: invalid event", index), err)
	}

	timestamp := receivedAt
	if payload.Timestamp != "" {
		parsed, err := s.parseTime(payload.Timestamp, index)
		if err != nil {
			return models.IoEvent{}, err
		}
		timestamp = parsed
	}

	return models.NewIoEvent(models.EventKind(payload.Kind), payload.Path, payload.IsDirectory, timestamp), nil
}

// parseTime parses a time string in RFC3339 format, with or without fractional seconds.
func (s *eventIngestionService) parseTime(timeStr string, index int) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, timeStr)
	if err == nil {
		return t.UTC(), nil
	}

	return time.Time{}, errValidationFailed(fmt.Sprintf("item at index %d: invalid time format: %s", index, timeStr), nil)
}

func formatFieldError(e validators.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("missing %s", e.Field())
	case "max":
		return fmt.Sprintf("%s too long: max %s characters", e.Field(), e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", e.Field(), e.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", e.Field(), e.Tag())
	}
}
