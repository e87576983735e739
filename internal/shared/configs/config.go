package configs

import (
	"time"

	"san-monitor/internal/models"
)

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
	Monitor     MonitorConfig     `mapstructure:"monitor"`
	Queue       QueueConfig       `mapstructure:"queue"`
	Audit       AuditConfig       `mapstructure:"audit"`
	Forwarding  ForwardingConfig  `mapstructure:"forwarding"`
	Push        PushConfig        `mapstructure:"push"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// FileStorageConfig holds file storage configuration.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// MonitorConfig holds the window and threshold settings of the aggregation engine and the
// locations the file-system watcher observes.
type MonitorConfig struct {
	Locations             []string         `mapstructure:"locations"`
	WindowSeconds         int              `mapstructure:"window_seconds" validate:"min=1"`
	EnableVolumeDetection bool             `mapstructure:"enable_volume_detection"`
	Thresholds            ThresholdsConfig `mapstructure:"thresholds"`
}

type ThresholdsConfig struct {
	ReadFrequencyThreshold    int64   `mapstructure:"read_frequency_threshold" validate:"min=1"`
	WriteFrequencyThreshold   int64   `mapstructure:"write_frequency_threshold" validate:"min=1"`
	ModificationRateThreshold int64   `mapstructure:"modification_rate_threshold" validate:"min=1"`
	BurstIntensityMultiplier  float64 `mapstructure:"burst_intensity_multiplier" validate:"min=1"`
	BurstTimeWindowSeconds    int     `mapstructure:"burst_time_window_seconds" validate:"min=1"`
}

// QueueConfig sizes the event queue between the event sources and the engine.
type QueueConfig struct {
	Buffer int `mapstructure:"buffer" validate:"min=1"`
}

// AuditConfig controls recording of ingested events in the event log.
type AuditConfig struct {
	Enabled         bool `mapstructure:"enabled"`
	FlushSize       int  `mapstructure:"flush_size" validate:"min=1"`
	FlushIntervalMs int  `mapstructure:"flush_interval_ms" validate:"min=1"`
}

type ForwardingConfig struct {
	NATS NATSConfig `mapstructure:"nats"`
}

// NATSConfig enables publishing every ingested event to a NATS subject.
type NATSConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url" validate:"required_if=Enabled true"`
	Subject string `mapstructure:"subject" validate:"required_if=Enabled true"`
}

// PushConfig sets how often live workload snapshots go to websocket clients.
type PushConfig struct {
	IntervalMs int `mapstructure:"interval_ms" validate:"min=1"`
}

// Settings converts the monitor section into the engine's settings.
func (c MonitorConfig) Settings() models.MonitorSettings {
	return models.MonitorSettings{
		WindowDuration: time.Duration(c.WindowSeconds) * time.Second,
		Thresholds: models.Thresholds{
			ReadFrequencyThreshold:    c.Thresholds.ReadFrequencyThreshold,
			WriteFrequencyThreshold:   c.Thresholds.WriteFrequencyThreshold,
			ModificationRateThreshold: c.Thresholds.ModificationRateThreshold,
			BurstIntensityMultiplier:  c.Thresholds.BurstIntensityMultiplier,
			BurstTimeWindowSeconds:    c.Thresholds.BurstTimeWindowSeconds,
		},
		Locations:             append([]string(nil), c.Locations...),
		EnableVolumeDetection: c.EnableVolumeDetection,
	}
}

func (c AuditConfig) FlushInterval() time.Duration {
	return time.Duration(c.FlushIntervalMs) * time.Millisecond
}

func (c PushConfig) Interval() time.Duration {
	return time.Duration(c.IntervalMs) * time.Millisecond
}
