package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"sync"
	"time"

	"san-monitor/internal/events"
	"san-monitor/internal/models"
	"san-monitor/internal/shared/filestorages"
	"san-monitor/internal/shared/ulid"
)

const (
	sinkEventLog = "event_log"

	// hourBucketLayout names the per-hour directory under the event log root.
	hourBucketLayout = "20060102T15"
)

// EventLogQuery filters the audit log. Zero values disable a filter; Start and End are inclusive.
type EventLogQuery struct {
	Kind  models.EventKind
	Start time.Time
	End   time.Time
	Limit int
}

type OperationStats struct {
	WriteOperations  int64 `json:"writeOperations"`
	ReadOperations   int64 `json:"readOperations"`
	CreateOperations int64 `json:"createOperations"`
	DeleteOperations int64 `json:"deleteOperations"`
	TotalEvents      int64 `json:"totalEvents"`
}

// EventLogStats counts logged events per kind. In OperationStats, writes are
// modified+moved+moved_to and reads are approximated by creations.
type EventLogStats struct {
	DetailedStats  map[models.EventKind]int64 `json:"detailedStats"`
	OperationStats OperationStats             `json:"operationStats"`
}

// EventLogStore is the append-only audit log of ingested events. Each Append writes one
// immutable JSON file per hour bucket:
//
//	event-log/20251228T18/01JG8Z3K4N5P6Q7R8S9T0V1W2X.json
//
// Cleanup is the only operation that rewrites or removes files.
//
//go:generate mockgen -source=event_log_store.go -destination=./mocks/event_log_store_mock.go -package=mocks
type EventLogStore interface {
	Name() string
	Append(ctx context.Context, auditEvents []events.AuditEvent) error
	// Query returns matching events ordered by timestamp, newest first.
	Query(ctx context.Context, query EventLogQuery) ([]events.AuditEvent, error)
	Stats(ctx context.Context, start, end time.Time) (*EventLogStats, error)
	// Cleanup removes events with a timestamp before cutoff and returns how many were removed.
	Cleanup(ctx context.Context, cutoff time.Time) (int, error)
}

type eventLogStore struct {
	fileStorage filestorages.FileStorage
	dir         string

	// cleanupMu serializes rewrites so two cleanups never race on one file.
	cleanupMu sync.Mutex
}

func NewEventLogStore(fileStorage filestorages.FileStorage) EventLogStore {
	return &eventLogStore{fileStorage: fileStorage, dir: "event-log"}
}

func (s *eventLogStore) Name() string { return sinkEventLog }

func (s *eventLogStore) Append(ctx context.Context, auditEvents []events.AuditEvent) error {
	if len(auditEvents) == 0 {
		return nil
	}

	byBucket := make(map[string][]events.AuditEvent)
	for _, event := range auditEvents {
		bucket := event.Timestamp.UTC().Format(hourBucketLayout)
		byBucket[bucket] = append(byBucket[bucket], event)
	}

	for bucket, bucketEvents := range byBucket {
		key := fmt.Sprintf("%s/%s/%s.json", s.dir, bucket, ulid.NewULID())
		if err := s.write(ctx, key, bucketEvents, false); err != nil {
			return err
		}
	}
	return nil
}

func (s *eventLogStore) Query(ctx context.Context, query EventLogQuery) ([]events.AuditEvent, error) {
	matched := make([]events.AuditEvent, 0)
	err := s.scan(ctx, query.Start, query.End, func(_ string, fileEvents []events.AuditEvent) error {
		for _, event := range fileEvents {
			if query.Kind != "" && event.Kind != query.Kind {
				continue
			}
			if inRange(event.Timestamp, query.Start, query.End) {
				matched = append(matched, event)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Timestamp.Equal(matched[j].Timestamp) {
			return matched[i].ID > matched[j].ID
		}
		return matched[i].Timestamp.After(matched[j].Timestamp)
	})
	if query.Limit > 0 && len(matched) > query.Limit {
		matched = matched[:query.Limit]
	}
	return matched, nil
}

func (s *eventLogStore) Stats(ctx context.Context, start, end time.Time) (*EventLogStats, error) {
	detailed := make(map[models.EventKind]int64)
	var total int64
	err := s.scan(ctx, start, end, func(_ string, fileEvents []events.AuditEvent) error {
		for _, event := range fileEvents {
			if inRange(event.Timestamp, start, end) {
				detailed[event.Kind]++
				total++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &EventLogStats{
		DetailedStats: detailed,
		OperationStats: OperationStats{
			WriteOperations:  detailed[models.EventModified] + detailed[models.EventMoved] + detailed[models.EventMovedTo],
			ReadOperations:   detailed[models.EventCreated],
			CreateOperations: detailed[models.EventCreated],
			DeleteOperations: detailed[models.EventDeleted],
			TotalEvents:      total,
		},
	}, nil
}

func (s *eventLogStore) Cleanup(ctx context.Context, cutoff time.Time) (int, error) {
	s.cleanupMu.Lock()
	defer s.cleanupMu.Unlock()

	deleted := 0
	err := s.scan(ctx, time.Time{}, cutoff, func(key string, fileEvents []events.AuditEvent) error {
		kept := make([]events.AuditEvent, 0, len(fileEvents))
		for _, event := range fileEvents {
			if !event.Timestamp.Before(cutoff) {
				kept = append(kept, event)
			}
		}
		removed := len(fileEvents) - len(kept)
		if removed == 0 {
			return nil
		}

		if len(kept) == 0 {
			if err := s.fileStorage.Delete(ctx, key); err != nil && !errors.Is(err, filestorages.ErrFileNotFound) {
				return fmt.Errorf("failed to delete event log file %s: %w", key, err)
			}
		} else if err := s.write(ctx, key, kept, true); err != nil {
			return err
		}
		deleted += removed
		return nil
	})
	if err != nil {
		return deleted, err
	}
	return deleted, nil
}

// scan visits every file whose hour bucket can hold events in [start, end].
func (s *eventLogStore) scan(ctx context.Context, start, end time.Time, visit func(key string, fileEvents []events.AuditEvent) error) error {
	keys, err := s.fileStorage.List(ctx, s.dir)
	if err != nil {
		return fmt.Errorf("failed to list event log: %w", err)
	}

	for _, key := range keys {
		if !bucketOverlaps(key, start, end) {
			continue
		}
		fileEvents, err := s.read(ctx, key)
		if err != nil {
			if errors.Is(err, filestorages.ErrFileNotFound) {
				continue
			}
			return err
		}
		if err := visit(key, fileEvents); err != nil {
			return err
		}
	}
	return nil
}

func (s *eventLogStore) read(ctx context.Context, key string) ([]events.AuditEvent, error) {
	readCloser, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get event log file %s: %w", key, err)
	}

	defer readCloser.Close()
	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read event log file %s: %w", key, err)
	}
	var fileEvents []events.AuditEvent
	if err := json.Unmarshal(data, &fileEvents); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event log file %s: %w", key, err)
	}
	return fileEvents, nil
}

func (s *eventLogStore) write(ctx context.Context, key string, fileEvents []events.AuditEvent, overwrite bool) error {
	jsonData, err := json.Marshal(fileEvents)
	if err != nil {
		return fmt.Errorf("failed to marshal event log file: %w", err)
	}
	_, err = s.fileStorage.Put(ctx, key, bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: overwrite})
	if err != nil {
		return fmt.Errorf("failed to put event log file %s: %w", key, err)
	}
	return nil
}

// bucketOverlaps reports whether the hour bucket in key intersects [start, end].
// Keys without a parseable bucket are always visited.
func bucketOverlaps(key string, start, end time.Time) bool {
	bucketStart, err := time.Parse(hourBucketLayout, path.Base(path.Dir(key)))
	if err != nil {
		return true
	}
	bucketEnd := bucketStart.Add(time.Hour)
	if !start.IsZero() && !bucketEnd.After(start) {
		return false
	}
	if !end.IsZero() && bucketStart.After(end) {
		return false
	}
	return true
}

func inRange(ts, start, end time.Time) bool {
	if !start.IsZero() && ts.Before(start) {
		return false
	}
	if !end.IsZero() && ts.After(end) {
		return false
	}
	return true
}
