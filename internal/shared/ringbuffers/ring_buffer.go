package ringbuffers

// RingBuffer is a fixed-capacity FIFO. Pushing past capacity evicts the oldest item.
// It is not safe for concurrent use; callers guard it with their own lock.
type RingBuffer[T any] struct {
	items []T
	head  int // index of the oldest item
	size  int
}

// New creates a RingBuffer holding at most capacity items. Capacity must be positive.
func New[T any](capacity int) *RingBuffer[T] {
	if capacity <= 0 {
		panic("ringbuffers: capacity must be positive")
	}
	return &RingBuffer[T]{items: make([]T, capacity)}
}

func (b *RingBuffer[T]) Push(item T) {
	capacity := len(b.items)
	if b.size < capacity {
		b.items[(b.head+b.size)%capacity] = item
		b.size++
		return
	}
	b.items[b.head] = item
	b.head = (b.head + 1) % capacity
}

func (b *RingBuffer[T]) Len() int { return b.size }

func (b *RingBuffer[T]) Cap() int { return len(b.items) }

// Items returns a copy of the buffered items, oldest first.
func (b *RingBuffer[T]) Items() []T {
	return b.Last(b.size)
}

// Last returns a copy of the n most recent items, oldest first.
// n is clamped to [0, Len()].
func (b *RingBuffer[T]) Last(n int) []T {
	if n > b.size {
		n = b.size
	}
	if n <= 0 {
		return []T{}
	}
	out := make([]T, n)
	start := b.size - n
	for i := 0; i < n; i++ {
		out[i] = b.items[(b.head+start+i)%len(b.items)]
	}
	return out
}
