package aggregators

import (
	"san-monitor/internal/models"
)

const minTrailingWindows = 2

// BurstDetector compares a just-sealed window against the average of the trailing sample.
//
// The trailing buffer already contains the sealed window when Detect runs, so the window
// is part of its own baseline. That dampens detection; it is kept as is. A category whose
// sample average is zero is satisfied by any count, since 0 >= 0*multiplier.
//
//go:generate mockgen -source=burst_detector.go -destination=./mocks/burst_detector_mock.go -package=mocks
type BurstDetector interface {
	// Detect returns the paths to mark as burst, or nil when no burst is found.
	Detect(trailing []*models.TimeWindow, closed *models.TimeWindow, thresholds models.Thresholds) []string
}

type burstDetector struct{}

func NewBurstDetector() BurstDetector {
	return &burstDetector{}
}

func (d *burstDetector) Detect(trailing []*models.TimeWindow, closed *models.TimeWindow, thresholds models.Thresholds) []string {
	if closed == nil || len(trailing) < minTrailingWindows {
		return nil
	}

	sample := trailing
	if n := thresholds.BurstTimeWindowSeconds; n > 0 && len(sample) > n {
		sample = sample[len(sample)-n:]
	}

	var reads, writes, modifications float64
	for _, window := range sample {
		reads += float64(window.ReadCount)
		writes += float64(window.WriteCount)
		modifications += float64(window.ModificationCount)
	}
	count := float64(len(sample))
	multiplier := thresholds.BurstIntensityMultiplier

	burst := float64(closed.ReadCount) >= reads/count*multiplier ||
		float64(closed.WriteCount) >= writes/count*multiplier ||
		float64(closed.ModificationCount) >= modifications/count*multiplier
	if !burst {
		return nil
	}

	return closed.ActivePaths()
}
