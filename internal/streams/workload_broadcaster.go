package streams

import (
	"context"
	"sync"
	"time"

	"san-monitor/internal/aggregators"
	"san-monitor/internal/models"
	"san-monitor/internal/shared/loggers"
)

const (
	defaultPushInterval = 500 * time.Millisecond
	subscriberBuffer    = 1
)

// WorkloadBroadcaster polls the query service on a fixed interval and fans the snapshot
// out to subscribers. A subscriber that has not consumed the previous snapshot gets the
// newer one instead; stale snapshots are dropped, never queued.
//
//go:generate mockgen -source=workload_broadcaster.go -destination=./mocks/workload_broadcaster_mock.go -package=mocks
type WorkloadBroadcaster interface {
	Start(ctx context.Context)
	Stop()
	// Subscribe returns a channel of snapshots and a function that releases it.
	Subscribe() (<-chan *models.WorkloadSnapshot, func())
}

type workloadBroadcaster struct {
	queryService aggregators.WorkloadQueryService
	interval     time.Duration

	mu          sync.Mutex
	subscribers map[chan *models.WorkloadSnapshot]struct{}

	wg       sync.WaitGroup
	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewWorkloadBroadcaster(queryService aggregators.WorkloadQueryService, interval time.Duration, logger loggers.Logger) WorkloadBroadcaster {
	if interval <= 0 {
		interval = defaultPushInterval
	}
	return &workloadBroadcaster{
		queryService: queryService,
		interval:     interval,
		subscribers:  make(map[chan *models.WorkloadSnapshot]struct{}),
		stopCh:       make(chan struct{}),
		logger:       logger,
	}
}

func (b *workloadBroadcaster) Start(ctx context.Context) {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()

		ticker := time.NewTicker(b.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-b.stopCh:
				return
			case <-ticker.C:
				b.push()
			}
		}
	}()
}

// Stop halts the ticker and closes every remaining subscriber channel.
func (b *workloadBroadcaster) Stop() {
	b.stopOnce.Do(func() { close(b.stopCh) })
	b.wg.Wait()

	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subscribers {
		delete(b.subscribers, ch)
		close(ch)
	}
	metricWorkloadSubscribers.Set(0)
}

func (b *workloadBroadcaster) Subscribe() (<-chan *models.WorkloadSnapshot, func()) {
	ch := make(chan *models.WorkloadSnapshot, subscriberBuffer)

	b.mu.Lock()
	b.subscribers[ch] = struct{}{}
	metricWorkloadSubscribers.Set(float64(len(b.subscribers)))
	b.mu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if _, ok := b.subscribers[ch]; ok {
				delete(b.subscribers, ch)
				close(ch)
			}
			metricWorkloadSubscribers.Set(float64(len(b.subscribers)))
		})
	}
	return ch, unsubscribe
}

func (b *workloadBroadcaster) push() {
	b.mu.Lock()
	count := len(b.subscribers)
	b.mu.Unlock()
	if count == 0 {
		return
	}

	snapshot := b.queryService.CurrentWorkload()
	metricWorkloadPushTotal.Inc()

	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subscribers {
		select {
		case ch <- snapshot:
		default:
			// Replace the unread snapshot with the newer one.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snapshot:
			default:
				b.logger.Debug().Msg("workload subscriber skipped")
			}
		}
	}
}
