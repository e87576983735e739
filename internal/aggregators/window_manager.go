package aggregators

import (
	"time"

	"san-monitor/internal/models"
	"san-monitor/internal/shared/ringbuffers"
)

const (
	windowHistoryCapacity  = 1000
	trailingWindowCapacity = 60
)

// WindowTransition reports what Observe did with the open window.
// Closed is nil when the very first event opens the first window.
type WindowTransition struct {
	Rotated bool
	Closed  *models.TimeWindow
}

// WindowManager owns the open window plus two bounded collections of sealed windows:
// a long-term history for queries and a short trailing buffer for burst detection.
// Sealed windows are never mutated again. Not safe for concurrent use.
type WindowManager struct {
	duration time.Duration
	current  *models.TimeWindow
	history  *ringbuffers.RingBuffer[*models.TimeWindow]
	trailing *ringbuffers.RingBuffer[*models.TimeWindow]
}

func NewWindowManager(duration time.Duration) *WindowManager {
	return &WindowManager{
		duration: duration,
		history:  ringbuffers.New[*models.TimeWindow](windowHistoryCapacity),
		trailing: ringbuffers.New[*models.TimeWindow](trailingWindowCapacity),
	}
}

// Observe rotates when no window is open or ts reaches WindowStart+duration.
// Windows are half-open, so ts == WindowStart+duration belongs to the next window.
// A ts earlier than WindowStart stays in the open window.
func (m *WindowManager) Observe(ts time.Time) WindowTransition {
	if m.current != nil && ts.Sub(m.current.WindowStart) < m.duration {
		return WindowTransition{}
	}

	closed := m.current
	if closed != nil {
		m.history.Push(closed)
		m.trailing.Push(closed)
	}
	m.current = models.NewTimeWindow(ts)

	return WindowTransition{Rotated: true, Closed: closed}
}

// Current returns the open window, or nil before the first event.
func (m *WindowManager) Current() *models.TimeWindow {
	return m.current
}

// History returns up to limit sealed windows, newest last.
func (m *WindowManager) History(limit int) []*models.TimeWindow {
	return m.history.Last(limit)
}

// Trailing returns the burst-detection buffer, newest last.
func (m *WindowManager) Trailing() []*models.TimeWindow {
	return m.trailing.Items()
}
