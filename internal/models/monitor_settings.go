package models

import (
	"strings"
	"time"
)

// Thresholds drive high-load classification and burst detection.
type Thresholds struct {
	ReadFrequencyThreshold    int64   `json:"readFrequencyThreshold"`
	WriteFrequencyThreshold   int64   `json:"writeFrequencyThreshold"`
	ModificationRateThreshold int64   `json:"modificationRateThreshold"`
	BurstIntensityMultiplier  float64 `json:"burstIntensityMultiplier"`
	// BurstTimeWindowSeconds is the number of trailing windows in the burst baseline;
	// windows are expected to last about one second.
	BurstTimeWindowSeconds int `json:"burstTimeWindowSeconds"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		ReadFrequencyThreshold:    100,
		WriteFrequencyThreshold:   100,
		ModificationRateThreshold: 50,
		BurstIntensityMultiplier:  3.0,
		BurstTimeWindowSeconds:    5,
	}
}

// MonitorSettings is the immutable configuration handed to the engine and the watcher.
type MonitorSettings struct {
	WindowDuration        time.Duration `json:"-"`
	Thresholds            Thresholds    `json:"thresholds"`
	Locations             []string      `json:"locations"`
	EnableVolumeDetection bool          `json:"enableVolumeDetection"`
}

// Monitors reports whether path falls under one of the configured locations.
// With volume detection disabled every path is monitored.
func (s MonitorSettings) Monitors(path string) bool {
	if !s.EnableVolumeDetection {
		return true
	}
	for _, location := range s.Locations {
		if location != "" && strings.HasPrefix(path, location) {
			return true
		}
	}
	return false
}
