package streams

import (
	"context"
	"testing"
	"time"

	aggregatormocks "san-monitor/internal/aggregators/mocks"
	"san-monitor/internal/models"
	"san-monitor/internal/shared/loggers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestWorkloadBroadcaster_PushesToSubscribers(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	queryService := aggregatormocks.NewMockWorkloadQueryService(ctrl)
	snapshot := &models.WorkloadSnapshot{TotalPathsMonitored: 7, MonitoringActive: true}
	queryService.EXPECT().CurrentWorkload().Return(snapshot).MinTimes(1)

	broadcaster := NewWorkloadBroadcaster(queryService, 10*time.Millisecond, loggers.Nop())
	updates, unsubscribe := broadcaster.Subscribe()
	defer unsubscribe()

	broadcaster.Start(context.Background())
	defer broadcaster.Stop()

	select {
	case got := <-updates:
		assert.Same(t, snapshot, got)
	case <-time.After(time.Second):
		t.Fatal("no snapshot pushed")
	}
}

func TestWorkloadBroadcaster_SkipsQueryWithoutSubscribers(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	queryService := aggregatormocks.NewMockWorkloadQueryService(ctrl)
	queryService.EXPECT().CurrentWorkload().Times(0)

	broadcaster := NewWorkloadBroadcaster(queryService, 5*time.Millisecond, loggers.Nop())
	broadcaster.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	broadcaster.Stop()
}

func TestWorkloadBroadcaster_StopClosesSubscribers(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	queryService := aggregatormocks.NewMockWorkloadQueryService(ctrl)
	queryService.EXPECT().CurrentWorkload().Return(&models.WorkloadSnapshot{}).AnyTimes()

	broadcaster := NewWorkloadBroadcaster(queryService, time.Hour, loggers.Nop())
	updates, unsubscribe := broadcaster.Subscribe()
	broadcaster.Start(context.Background())
	broadcaster.Stop()

	_, ok := <-updates
	assert.False(t, ok)

	// Releasing after Stop is a no-op.
	require.NotPanics(t, unsubscribe)
}

func TestWorkloadBroadcaster_UnsubscribeClosesChannel(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	queryService := aggregatormocks.NewMockWorkloadQueryService(ctrl)

	broadcaster := NewWorkloadBroadcaster(queryService, time.Hour, loggers.Nop())
	updates, unsubscribe := broadcaster.Subscribe()
	unsubscribe()
	unsubscribe()

	_, ok := <-updates
	assert.False(t, ok)
}
