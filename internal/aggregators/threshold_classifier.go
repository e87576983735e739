package aggregators

import (
	"san-monitor/internal/models"
)

//go:generate mockgen -source=threshold_classifier.go -destination=./mocks/threshold_classifier_mock.go -package=mocks
type ThresholdClassifier interface {
	// Classify reports whether the path's activity in window meets any threshold.
	Classify(path string, window *models.TimeWindow, thresholds models.Thresholds) bool
}

type thresholdClassifier struct{}

func NewThresholdClassifier() ThresholdClassifier {
	return &thresholdClassifier{}
}

func (c *thresholdClassifier) Classify(path string, window *models.TimeWindow, thresholds models.Thresholds) bool {
	if window == nil {
		return false
	}
	return window.ReadsFor(path) >= thresholds.ReadFrequencyThreshold ||
		window.WritesFor(path) >= thresholds.WriteFrequencyThreshold ||
		window.ModificationsFor(path) >= thresholds.ModificationRateThreshold
}
