package aggregators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowManager_Observe_FirstEventOpensWindow(t *testing.T) {
	t.Parallel()

	manager := NewWindowManager(time.Second)
	start := time.Date(2025, 12, 28, 18, 3, 0, 0, time.UTC)

	assert.Nil(t, manager.Current())

	transition := manager.Observe(start)
	assert.True(t, transition.Rotated)
	assert.Nil(t, transition.Closed, "first window has nothing to seal")
	require.NotNil(t, manager.Current())
	assert.Equal(t, start, manager.Current().WindowStart)
	assert.Empty(t, manager.History(10))
	assert.Empty(t, manager.Trailing())
}

func TestWindowManager_Observe_Boundaries(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 12, 28, 18, 3, 0, 0, time.UTC)

	tests := []struct {
		name          string
		offset        time.Duration
		expectRotated bool
	}{
		{name: "same instant", offset: 0, expectRotated: false},
		{name: "inside window", offset: 999 * time.Millisecond, expectRotated: false},
		{name: "exactly at end", offset: time.Second, expectRotated: true},
		{name: "after end", offset: 3 * time.Second, expectRotated: true},
		{name: "before start", offset: -time.Second, expectRotated: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			manager := NewWindowManager(time.Second)
			manager.Observe(start)

			transition := manager.Observe(start.Add(tt.offset))
			assert.Equal(t, tt.expectRotated, transition.Rotated)
			if tt.expectRotated {
				require.NotNil(t, transition.Closed)
				assert.Equal(t, start, transition.Closed.WindowStart)
				assert.Equal(t, start.Add(tt.offset), manager.Current().WindowStart, "new window starts at the event timestamp")
			} else {
				assert.Nil(t, transition.Closed)
				assert.Equal(t, start, manager.Current().WindowStart)
			}
		})
	}
}

func TestWindowManager_Observe_NewWindowStartsAtEventNotGrid(t *testing.T) {
	t.Parallel()

	manager := NewWindowManager(time.Second)
	start := time.Date(2025, 12, 28, 18, 3, 0, 0, time.UTC)

	manager.Observe(start)
	manager.Observe(start.Add(2500 * time.Millisecond))

	assert.Equal(t, start.Add(2500*time.Millisecond), manager.Current().WindowStart)
	assert.Len(t, manager.History(10), 1, "idle gaps do not produce empty windows")
}

func TestWindowManager_History_IsBounded(t *testing.T) {
	t.Parallel()

	manager := NewWindowManager(time.Second)
	start := time.Date(2025, 12, 28, 18, 3, 0, 0, time.UTC)

	for i := 0; i <= windowHistoryCapacity+5; i++ {
		manager.Observe(start.Add(time.Duration(i) * time.Second))
	}

	history := manager.History(windowHistoryCapacity * 2)
	assert.Len(t, history, windowHistoryCapacity)
	assert.Len(t, manager.Trailing(), trailingWindowCapacity)

	// Oldest windows were evicted, newest is last.
	assert.Equal(t, start.Add(5*time.Second), history[0].WindowStart)
	assert.Equal(t, start.Add(time.Duration(windowHistoryCapacity+4)*time.Second), history[len(history)-1].WindowStart)

	assert.Len(t, manager.History(10), 10)
	assert.Empty(t, manager.History(0))
}
