package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"san-monitor/internal/aggregators"
	internalhttp "san-monitor/internal/http"
	"san-monitor/internal/ingestors"
	"san-monitor/internal/models"
	"san-monitor/internal/shared/configs"
	"san-monitor/internal/shared/filestorages"
	"san-monitor/internal/shared/loggers"
	"san-monitor/internal/stores"
	"san-monitor/internal/streams"
	"san-monitor/internal/watchers"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	engine        *aggregators.AggregationEngine
	watcher       watchers.FileSystemWatcher
	consumer      streams.IoEventConsumer
	broadcaster   streams.WorkloadBroadcaster
	natsForwarder *streams.NatsEventForwarder

	backgroundCtx    context.Context
	backgroundCancel context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "san-monitor").
		Logger()

	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	settings := config.Monitor.Settings()
	engine := aggregators.NewAggregationEngine(settings, aggregators.NewThresholdClassifier(), aggregators.NewBurstDetector())

	// audit sinks receive every event after the engine has processed it
	eventLogStore := stores.NewEventLogStore(fileStorage)
	var sinks []streams.AuditEventSink
	if config.Audit.Enabled {
		sinks = append(sinks, eventLogStore)
	}
	var natsForwarder *streams.NatsEventForwarder
	if config.Forwarding.NATS.Enabled {
		natsForwarder, err = streams.NewNatsEventForwarder(config.Forwarding.NATS.URL, config.Forwarding.NATS.Subject)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize nats forwarder: %w", err)
		}
		sinks = append(sinks, natsForwarder)
	}

	ioEventQueue := streams.NewEventQueue[models.IoEvent](config.Queue.Buffer)
	ioEventProducer := streams.NewIoEventProducer(ioEventQueue)
	consumerLogger := appLogger.With().Str(loggers.FieldComponent, "consumer").Logger()
	consumer := streams.NewIoEventConsumer(ioEventQueue, engine, sinks, streams.AuditOptions{
		FlushSize:     config.Audit.FlushSize,
		FlushInterval: config.Audit.FlushInterval(),
	}, consumerLogger)

	watcherLogger := appLogger.With().Str(loggers.FieldComponent, "watcher").Logger()
	watcher := watchers.NewFileSystemWatcher(settings, ioEventProducer, watcherLogger)

	broadcasterLogger := appLogger.With().Str(loggers.FieldComponent, "broadcaster").Logger()
	broadcaster := streams.NewWorkloadBroadcaster(engine, config.Push.Interval(), broadcasterLogger)

	batchStore := stores.NewEventBatchStore(fileStorage)
	ingestionService := ingestors.NewEventIngestionService(batchStore, ioEventProducer)

	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(internalhttp.RouterDeps{
		QueryService:     engine,
		IngestionService: ingestionService,
		EventLogStore:    eventLogStore,
		Broadcaster:      broadcaster,
		Settings:         settings,
	}, httpLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:        config,
		appLogger:     appLogger,
		server:        server,
		engine:        engine,
		watcher:       watcher,
		consumer:      consumer,
		broadcaster:   broadcaster,
		natsForwarder: natsForwarder,
	}, nil
}

// Start starts the background workers and then the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting san-monitor service on port %d (log_level=%s, file_storage_root_dir=%s, window_seconds=%d, locations=%v)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.FileStorage.RootDir,
			app.config.Monitor.WindowSeconds,
			app.config.Monitor.Locations)

	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.consumer.Start(app.backgroundCtx)
	app.broadcaster.Start(app.backgroundCtx)
	if err := app.watcher.Start(app.backgroundCtx); err != nil {
		return fmt.Errorf("failed to start file system watcher: %w", err)
	}
	app.engine.SetMonitoringActive(true)

	return app.server.ListenAndServe()
}

// Shutdown stops intake first, then drains the queue into the engine and the audit sinks.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	app.watcher.Stop()
	app.engine.SetMonitoringActive(false)
	app.appLogger.Info().Msg("File system watcher stopped")

	app.consumer.Stop()
	app.appLogger.Info().Msg("Event consumer drained")

	if app.backgroundCancel != nil {
		app.backgroundCancel()
	}
	// closes websocket subscriptions, which ends their handlers
	app.broadcaster.Stop()
	app.appLogger.Info().Msg("Background workers stopped")

	if app.natsForwarder != nil {
		if err := app.natsForwarder.Close(); err != nil {
			app.appLogger.Warn().Err(err).Msg("failed to close nats connection")
		}
	}

	return nil
}
