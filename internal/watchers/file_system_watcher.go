package watchers

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"san-monitor/internal/models"
	"san-monitor/internal/shared/loggers"
	"san-monitor/internal/streams"

	"github.com/fsnotify/fsnotify"
)

// FileSystemWatcher turns file-system notifications under the configured locations into
// IoEvents and publishes them in arrival order.
//
//go:generate mockgen -source=file_system_watcher.go -destination=./mocks/file_system_watcher_mock.go -package=mocks
type FileSystemWatcher interface {
	// Start watches every existing location recursively. Missing locations are logged and skipped.
	Start(ctx context.Context) error
	Stop()
}

type fileSystemWatcher struct {
	settings models.MonitorSettings
	producer streams.IoEventProducer

	watcher *fsnotify.Watcher
	// dirs is only touched before the loop starts and from the loop goroutine.
	dirs map[string]struct{}

	wg     sync.WaitGroup
	cancel context.CancelFunc

	logger loggers.Logger
	now    func() time.Time
}

func NewFileSystemWatcher(settings models.MonitorSettings, producer streams.IoEventProducer, logger loggers.Logger) FileSystemWatcher {
	return &fileSystemWatcher{
		settings: settings,
		producer: producer,
		dirs:     make(map[string]struct{}),
		logger:   logger,
		now:      time.Now,
	}
}

func (w *fileSystemWatcher) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file system watcher: %w", err)
	}
	w.watcher = watcher

	for _, location := range w.settings.Locations {
		info, err := os.Stat(location)
		if err != nil || !info.IsDir() {
			w.logger.Warn().
				Str(loggers.FieldLocation, location).
				Msg("monitored location does not exist or is not a directory, skipping")
			continue
		}
		if err := w.addRecursive(location); err != nil {
			w.logger.Error().Err(err).Str(loggers.FieldLocation, location).Msg("failed to watch location")
			continue
		}
		w.logger.Info().Str(loggers.FieldLocation, location).Msg("watching location")
	}

	ctx, w.cancel = context.WithCancel(ctx)
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		w.run(ctx)
	}()
	return nil
}

// Stop cancels a publish that is blocked on a full queue, then closes the watcher.
func (w *fileSystemWatcher) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
	if w.watcher != nil {
		_ = w.watcher.Close()
	}
}

func (w *fileSystemWatcher) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case notification, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(ctx, notification)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			metricWatcherErrorsTotal.Inc()
			w.logger.Error().Err(err).Msg("file system watcher error")
		}
	}
}

func (w *fileSystemWatcher) handle(ctx context.Context, notification fsnotify.Event) {
	kind, ok := toEventKind(notification.Op)
	if !ok {
		return
	}

	path := notification.Name
	isDirectory := w.isDirectory(path, kind)

	if kind == models.EventCreated && isDirectory {
		if err := w.addRecursive(path); err != nil {
			w.logger.Warn().Err(err).Str(loggers.FieldEventPath, path).Msg("failed to watch new directory")
		}
	}

	if !w.settings.Monitors(path) {
		return
	}

	event := models.NewIoEvent(kind, path, isDirectory, w.now().UTC())
	if err := w.producer.Produce(ctx, streams.SourceWatcher, []models.IoEvent{event}); err != nil {
		w.logger.Warn().Err(err).Str(loggers.FieldEventPath, path).Msg("failed to publish watcher event")
		return
	}
	metricWatcherEventsTotal.WithLabelValues(string(kind)).Inc()
}

// isDirectory stats paths that still exist; for removed or renamed paths it falls back to
// the set of directories being watched.
func (w *fileSystemWatcher) isDirectory(path string, kind models.EventKind) bool {
	if kind == models.EventDeleted || kind == models.EventMoved {
		_, known := w.dirs[path]
		if known {
			delete(w.dirs, path)
			metricWatchedDirectories.Set(float64(len(w.dirs)))
		}
		return known
	}
	info, err := os.Stat(path)
	if err != nil {
		_, known := w.dirs[path]
		return known
	}
	return info.IsDir()
}

func (w *fileSystemWatcher) addRecursive(root string) error {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		w.dirs[path] = struct{}{}
		return nil
	})
	metricWatchedDirectories.Set(float64(len(w.dirs)))
	return err
}

// toEventKind maps a notification to an event kind. Chmod-only notifications are ignored.
func toEventKind(op fsnotify.Op) (models.EventKind, bool) {
	switch {
	case op.Has(fsnotify.Create):
		return models.EventCreated, true
	case op.Has(fsnotify.Write):
		return models.EventModified, true
	case op.Has(fsnotify.Remove):
		return models.EventDeleted, true
	case op.Has(fsnotify.Rename):
		return models.EventMoved, true
	default:
		return "", false
	}
}
