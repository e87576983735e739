package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"san-monitor/internal/models"
	"san-monitor/internal/shared/filestorages"
)

var (
	ErrEventBatchAlreadyExist = errors.New("event batch already exists")
)

// EventBatchStore records accepted event batches with a create-if-not-exists PUT. A second
// Put for the same batch ID fails with ErrEventBatchAlreadyExist, which makes a retried
// POST with the same idempotency key a no-op. Delete releases the key of a batch that never
// reached the queue so the client can retry it.
//
//go:generate mockgen -source=event_batch_store.go -destination=./mocks/event_batch_store_mock.go -package=mocks
type EventBatchStore interface {
	Put(ctx context.Context, eventBatch *models.EventBatch) error
	Delete(ctx context.Context, batchID string) error
}

type eventBatchStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewEventBatchStore(fileStorage filestorages.FileStorage) EventBatchStore {
	return &eventBatchStore{fileStorage: fileStorage, dir: "event-batches"}
}

func (s *eventBatchStore) Put(ctx context.Context, eventBatch *models.EventBatch) error {
	jsonData, err := json.Marshal(eventBatch)
	if err != nil {
		return fmt.Errorf("failed to marshal event batch: %w", err)
	}
	reader := bytes.NewReader(jsonData)

	key := s.key(eventBatch.BatchID)

	_, err = s.fileStorage.Put(ctx, key, reader, filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return ErrEventBatchAlreadyExist
		}
		return fmt.Errorf("failed to put event batch: %w", err)
	}
	return nil
}

func (s *eventBatchStore) Delete(ctx context.Context, batchID string) error {
	err := s.fileStorage.Delete(ctx, s.key(batchID))
	if err != nil && !errors.Is(err, filestorages.ErrFileNotFound) {
		return fmt.Errorf("failed to delete event batch: %w", err)
	}
	return nil
}

func (s *eventBatchStore) key(batchID string) string {
	return fmt.Sprintf("%s/%s.json", s.dir, batchID)
}
