package configs

import (
	"fmt"
	"strings"

	"san-monitor/internal/models"
	"san-monitor/internal/shared/validators"

	"github.com/spf13/viper"
)

const envPrefix = "SAN_MONITOR"

// LoadConfig reads configuration from file and validates it.
// Any key can be overridden from the environment, e.g. SAN_MONITOR_SERVER_PORT.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	thresholds := models.DefaultThresholds()

	v.SetDefault("monitor.locations", []string{})
	v.SetDefault("monitor.window_seconds", 1)
	v.SetDefault("monitor.enable_volume_detection", true)
	v.SetDefault("monitor.thresholds.read_frequency_threshold", thresholds.ReadFrequencyThreshold)
	v.SetDefault("monitor.thresholds.write_frequency_threshold", thresholds.WriteFrequencyThreshold)
	v.SetDefault("monitor.thresholds.modification_rate_threshold", thresholds.ModificationRateThreshold)
	v.SetDefault("monitor.thresholds.burst_intensity_multiplier", thresholds.BurstIntensityMultiplier)
	v.SetDefault("monitor.thresholds.burst_time_window_seconds", thresholds.BurstTimeWindowSeconds)

	v.SetDefault("queue.buffer", 1024)

	v.SetDefault("audit.enabled", true)
	v.SetDefault("audit.flush_size", 100)
	v.SetDefault("audit.flush_interval_ms", 1000)

	v.SetDefault("forwarding.nats.enabled", false)
	v.SetDefault("forwarding.nats.subject", "san-monitor.events")

	v.SetDefault("push.interval_ms", 500)
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// "Config.Forwarding.NATS.URL" -> "forwarding.nats.url"
	if e.StructNamespace() != "" {
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			field = strings.ToLower(strings.Join(parts[1:], "."))
		}
	}

	var msg string
	switch tag {
	case "required", "required_if":
		msg = fmt.Sprintf("%s (required)", field)
	case "min":
		msg = fmt.Sprintf("%s (min=%s)", field, e.Param())
	case "max":
		msg = fmt.Sprintf("%s (max=%s)", field, e.Param())
	case "gt":
		msg = fmt.Sprintf("%s (gt=%s)", field, e.Param())
	case "oneof":
		msg = fmt.Sprintf("%s (oneof=%s)", field, e.Param())
	default:
		msg = fmt.Sprintf("%s (%s)", field, tag)
	}

	return msg
}
