package ingestors_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"san-monitor/internal/ingestors"
	"san-monitor/internal/models"
	"san-monitor/internal/shared/filestorages"
	"san-monitor/internal/shared/svcerrors"
	"san-monitor/internal/stores"
	storemocks "san-monitor/internal/stores/mocks"
	"san-monitor/internal/streams"
	streammocks "san-monitor/internal/streams/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (ingestors.EventIngestionService, *storemocks.MockEventBatchStore, *streammocks.MockIoEventProducer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	batchStore := storemocks.NewMockEventBatchStore(ctrl)
	producer := streammocks.NewMockIoEventProducer(ctrl)
	return ingestors.NewEventIngestionService(batchStore, producer), batchStore, producer
}

func requireServiceError(t *testing.T, err error, code, category string) *svcerrors.ServiceError {
	t.Helper()
	require.Error(t, err, "expected error")
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, code, svcErr.Code)
	assert.Equal(t, category, svcErr.Category)
	return svcErr
}

func TestIngestBatch_ErrValidationFailed_InvalidFormat(t *testing.T) {
	t.Parallel()

	service, _, _ := newTestService(t)

	result, err := service.IngestBatch(context.Background(), "key1", "application/xml", bytes.NewReader([]byte(`[]`)))

	requireServiceError(t, err, "ING_1000", "invalid_argument")
	assert.Nil(t, result, "expected nil result on error")
}

func TestIngestBatch_ErrValidationFailed_BatchTooLarge(t *testing.T) {
	t.Parallel()

	service, _, _ := newTestService(t)
	largeBody := make([]byte, 2*1024*1024+1)

	_, err := service.IngestBatch(context.Background(), "key1", "application/json", bytes.NewReader(largeBody))

	svcErr := requireServiceError(t, err, "ING_1000", "invalid_argument")
	assert.Equal(t, "batch too large: must be <= 2MB", svcErr.Message)
}

func TestIngestBatch_ErrValidationFailed_EventValidation(t *testing.T) {
	t.Parallel()

	service, _, _ := newTestService(t)

	tests := []struct {
		name          string
		json          string
		expectMessage string
	}{
		{
			name:          "empty events",
			json:          `[]`,
			expectMessage: "events cannot be empty",
		},
		{
			name:          "not an array",
			json:          `{"kind":"created","path":"/a"}`,
			expectMessage: "invalid json: expected an array of events",
		},
		{
			name:          "missing kind",
			json:          `[{"path":"/a"}]`,
			expectMessage: "item at index 0: missing kind",
		},
		{
			name:          "unknown kind",
			json:          `[{"kind":"created","path":"/a"},{"kind":"opened","path":"/a"}]`,
			expectMessage: "item at index 1: kind must be one of [created modified deleted moved moved_to]",
		},
		{
			name:          "missing path",
			json:          `[{"kind":"deleted","path":"   "}]`,
			expectMessage: "item at index 0: missing path",
		},
		{
			name:          "path too long",
			json:          `[{"kind":"deleted","path":"/` + strings.Repeat("a", 4096) + `"}]`,
			expectMessage: "item at index 0: path too long: max 4096 characters",
		},
		{
			name:          "invalid timestamp",
			json:          `[{"kind":"created","path":"/a","timestamp":"yesterday"}]`,
			expectMessage: "item at index 0: invalid time format: yesterday",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := service.IngestBatch(context.Background(), "key1", "application/json", strings.NewReader(tt.json))

			svcErr := requireServiceError(t, err, "ING_1000", "invalid_argument")
			assert.Equal(t, tt.expectMessage, svcErr.Message)
			assert.Nil(t, result)
		})
	}
}

func TestIngestBatch_ErrBatchAlreadyProcessed(t *testing.T) {
	t.Parallel()

	service, batchStore, _ := newTestService(t)

	batchStore.EXPECT().Put(gomock.Any(), gomock.Any()).Return(stores.ErrEventBatchAlreadyExist)

	_, err := service.IngestBatch(context.Background(), "key1", "application/json", strings.NewReader(`[{"kind":"created","path":"/a"}]`))

	requireServiceError(t, err, "ING_1001", "resource_conflict")
}

func TestIngestBatch_ErrBatchPutFailed(t *testing.T) {
	t.Parallel()

	service, batchStore, _ := newTestService(t)

	batchStore.EXPECT().Put(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	_, err := service.IngestBatch(context.Background(), "key1", "application/json", strings.NewReader(`[{"kind":"created","path":"/a"}]`))

	svcErr := requireServiceError(t, err, "ING_9000", "internal")
	assert.True(t, svcErr.IsInternalError())
}

func TestIngestBatch_ErrEventPublishFailed(t *testing.T) {
	t.Parallel()

	service, batchStore, producer := newTestService(t)

	batchStore.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)
	producer.EXPECT().Produce(gomock.Any(), streams.SourceHTTP, gomock.Any()).Return(context.DeadlineExceeded)
	batchStore.EXPECT().Delete(gomock.Any(), "key1").Return(nil)

	_, err := service.IngestBatch(context.Background(), "key1", "application/json", strings.NewReader(`[{"kind":"created","path":"/a"}]`))

	svcErr := requireServiceError(t, err, "ING_9001", "internal")
	assert.ErrorIs(t, svcErr, context.DeadlineExceeded)
}

func TestIngestBatch_RetryAcceptedAfterPublishFailure(t *testing.T) {
	t.Parallel()

	fileStorage, err := filestorages.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	ctrl := gomock.NewController(t)
	producer := streammocks.NewMockIoEventProducer(ctrl)
	service := ingestors.NewEventIngestionService(stores.NewEventBatchStore(fileStorage), producer)

	body := `[{"kind":"created","path":"/a"}]`

	gomock.InOrder(
		producer.EXPECT().Produce(gomock.Any(), streams.SourceHTTP, gomock.Any()).Return(context.Canceled),
		producer.EXPECT().Produce(gomock.Any(), streams.SourceHTTP, gomock.Any()).Return(nil),
	)

	_, err = service.IngestBatch(context.Background(), "key-retry", "application/json", strings.NewReader(body))
	requireServiceError(t, err, "ING_9001", "internal")

	result, err := service.IngestBatch(context.Background(), "key-retry", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, 1, result.AcceptedCount)

	_, err = service.IngestBatch(context.Background(), "key-retry", "application/json", strings.NewReader(body))
	requireServiceError(t, err, "ING_1001", "resource_conflict")
}

func TestIngestBatch_Success(t *testing.T) {
	t.Parallel()

	service, batchStore, producer := newTestService(t)

	body := `[
		{"kind":"created","path":"/mnt/san01/a.txt","isDirectory":false,"timestamp":"2025-12-28T18:03:00.000Z"},
		{"kind":" Modified ","path":"/mnt/san01/a.txt","timestamp":"2025-12-28T18:03:00.200Z"},
		{"kind":"moved_to","path":"/mnt/san01/dir","isDirectory":true,"timestamp":"2025-12-28T19:03:00.300+01:00"}
	]`
	ts := time.Date(2025, 12, 28, 18, 3, 0, 0, time.UTC)
	expected := []models.IoEvent{
		models.NewIoEvent(models.EventCreated, "/mnt/san01/a.txt", false, ts),
		models.NewIoEvent(models.EventModified, "/mnt/san01/a.txt", false, ts.Add(200*time.Millisecond)),
		models.NewIoEvent(models.EventMovedTo, "/mnt/san01/dir", true, ts.Add(300*time.Millisecond)),
	}

	batchStore.EXPECT().Put(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, batch *models.EventBatch) error {
			assert.Equal(t, "batch-123", batch.BatchID)
			assert.Equal(t, expected, batch.Events)
			return nil
		})
	producer.EXPECT().Produce(gomock.Any(), streams.SourceHTTP, expected).Return(nil)

	result, err := service.IngestBatch(context.Background(), " batch-123 ", "application/json; charset=utf-8", strings.NewReader(body))

	require.NoError(t, err)
	assert.Equal(t, &ingestors.IngestResult{BatchID: "batch-123", AcceptedCount: 3}, result)
}

func TestIngestBatch_DefaultsBatchIDAndTimestamp(t *testing.T) {
	t.Parallel()

	service, batchStore, producer := newTestService(t)
	before := time.Now().UTC()

	batchStore.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)
	producer.EXPECT().Produce(gomock.Any(), streams.SourceHTTP, gomock.Len(1)).
		DoAndReturn(func(_ context.Context, _ string, ioEvents []models.IoEvent) error {
			assert.False(t, ioEvents[0].Timestamp.Before(before), "timestamp defaults to receipt time")
			return nil
		})

	result, err := service.IngestBatch(context.Background(), "", "application/json", strings.NewReader(`[{"kind":"deleted","path":"/a"}]`))

	require.NoError(t, err)
	assert.Len(t, result.BatchID, 26, "generated batch IDs are ULIDs")
}
