package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"san-monitor/internal/models"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialWorkloadStream(t *testing.T, serverURL string) *websocket.Conn {
	t.Helper()

	wsURL := "ws" + strings.TrimPrefix(serverURL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	_ = resp.Body.Close()
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestWorkloadStream_PushesSnapshotsAndAnswersPing(t *testing.T) {
	t.Parallel()

	router, mocks := newTestRouter(t)

	snapshots := make(chan *models.WorkloadSnapshot, 1)
	unsubscribed := make(chan struct{})
	var once sync.Once
	mocks.broadcaster.EXPECT().Subscribe().Return((<-chan *models.WorkloadSnapshot)(snapshots), func() {
		once.Do(func() {
			close(snapshots)
			close(unsubscribed)
		})
	})

	server := httptest.NewServer(router)
	defer server.Close()
	conn := dialWorkloadStream(t, server.URL)
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("ping")))
	messageType, payload, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, websocket.TextMessage, messageType)
	assert.Equal(t, "pong", string(payload))

	snapshots <- &models.WorkloadSnapshot{TotalPathsMonitored: 7, MonitoringActive: true}
	var pushed models.WorkloadSnapshot
	require.NoError(t, conn.ReadJSON(&pushed))
	assert.Equal(t, 7, pushed.TotalPathsMonitored)
	assert.True(t, pushed.MonitoringActive)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	select {
	case <-unsubscribed:
	case <-time.After(5 * time.Second):
		t.Fatal("subscription was not released after the client closed")
	}
}

func TestWorkloadStream_ClosesWhenBroadcasterStops(t *testing.T) {
	t.Parallel()

	router, mocks := newTestRouter(t)

	snapshots := make(chan *models.WorkloadSnapshot)
	mocks.broadcaster.EXPECT().Subscribe().Return((<-chan *models.WorkloadSnapshot)(snapshots), func() {})

	server := httptest.NewServer(router)
	defer server.Close()
	conn := dialWorkloadStream(t, server.URL)
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	close(snapshots)

	_, _, err := conn.ReadMessage()
	require.Error(t, err)
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure))
}

func TestWorkloadStream_RejectsPlainRequests(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rr := serve(router, http.MethodGet, "/ws", nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
