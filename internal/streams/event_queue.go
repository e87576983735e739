package streams

import (
	"context"
)

const defaultBuffer = 1024

// EventQueue is a bounded FIFO between event sources and the single consumer worker.
// Publish blocks while the queue is full, so events are never dropped.
type EventQueue[T any] struct {
	ch chan T
}

// NewEventQueue creates a queue holding up to buffer messages. A non-positive buffer
// uses the default of 1024.
func NewEventQueue[T any](buffer int) *EventQueue[T] {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &EventQueue[T]{ch: make(chan T, buffer)}
}

// Publish enqueues msg, waiting for space until ctx is done.
func (queue *EventQueue[T]) Publish(ctx context.Context, msg T) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case queue.ch <- msg:
		return nil
	}
}

func (queue *EventQueue[T]) Messages() <-chan T { return queue.ch }

func (queue *EventQueue[T]) Len() int { return len(queue.ch) }

func (queue *EventQueue[T]) Cap() int { return cap(queue.ch) }

// Close must only be called once every producer has stopped publishing.
func (queue *EventQueue[T]) Close() {
	close(queue.ch)
}
