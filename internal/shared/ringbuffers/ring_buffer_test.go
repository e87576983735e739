package ringbuffers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRingBuffer_PushBelowCapacity(t *testing.T) {
	t.Parallel()

	buf := New[int](3)
	buf.Push(1)
	buf.Push(2)

	assert.Equal(t, 2, buf.Len())
	assert.Equal(t, 3, buf.Cap())
	assert.Equal(t, []int{1, 2}, buf.Items())
}

func TestRingBuffer_EvictsOldestPastCapacity(t *testing.T) {
	t.Parallel()

	buf := New[int](3)
	for i := 1; i <= 7; i++ {
		buf.Push(i)
	}

	assert.Equal(t, 3, buf.Len())
	assert.Equal(t, []int{5, 6, 7}, buf.Items())
}

func TestRingBuffer_Last(t *testing.T) {
	t.Parallel()

	buf := New[string](4)
	for _, s := range []string{"a", "b", "c", "d", "e"} {
		buf.Push(s)
	}

	tests := []struct {
		name     string
		n        int
		expected []string
	}{
		{name: "zero", n: 0, expected: []string{}},
		{name: "negative", n: -1, expected: []string{}},
		{name: "two most recent", n: 2, expected: []string{"d", "e"}},
		{name: "all", n: 4, expected: []string{"b", "c", "d", "e"}},
		{name: "more than held", n: 10, expected: []string{"b", "c", "d", "e"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, buf.Last(tt.n))
		})
	}
}

func TestRingBuffer_ItemsIsCopy(t *testing.T) {
	t.Parallel()

	buf := New[int](2)
	buf.Push(1)
	items := buf.Items()
	items[0] = 42

	assert.Equal(t, []int{1}, buf.Items())
}

func TestRingBuffer_InvalidCapacity(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { New[int](0) })
}
