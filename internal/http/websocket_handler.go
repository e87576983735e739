package http

import (
	"net/http"
	"sync"
	"time"

	"san-monitor/internal/models"
	"san-monitor/internal/shared/loggers"
	"san-monitor/internal/streams"

	"github.com/gorilla/websocket"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = 30 * time.Second

	wsPingText = "ping"
	wsPongText = "pong"
)

// workloadStreamHandler upgrades GET /ws and pushes every broadcast workload snapshot to
// the client as a JSON text frame. A "ping" text frame is answered with "pong".
type workloadStreamHandler struct {
	broadcaster streams.WorkloadBroadcaster
	upgrader    websocket.Upgrader
}

func newWorkloadStreamHandler(broadcaster streams.WorkloadBroadcaster) *workloadStreamHandler {
	return &workloadStreamHandler{
		broadcaster: broadcaster,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Handle blocks until the client disconnects or the broadcaster stops.
func (h *workloadStreamHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	logger := loggers.Ctx(r.Context())

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already replied with an HTTP error
		logger.Debug().Err(err).Msg("websocket upgrade failed")
		return nil
	}

	metricWebSocketConnections.Inc()
	defer metricWebSocketConnections.Dec()

	snapshots, unsubscribe := h.broadcaster.Subscribe()
	client := &workloadClient{
		conn:      conn,
		snapshots: snapshots,
		replies:   make(chan string, 8),
		logger:    logger,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()

		client.writePump()
	}()

	client.readPump()
	unsubscribe()
	wg.Wait()

	logger.Debug().Msg("websocket client disconnected")
	return nil
}

type workloadClient struct {
	conn      *websocket.Conn
	snapshots <-chan *models.WorkloadSnapshot
	replies   chan string
	logger    *loggers.Logger
}

// writePump owns every write on the connection. It returns when the snapshot channel is
// closed or a write fails, closing the connection either way.
func (c *workloadClient) writePump() {
	ticker := time.NewTicker(wsPingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case snapshot, ok := <-c.snapshots:
			_ = c.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteJSON(snapshot); err != nil {
				c.logger.Debug().Err(err).Msg("failed to push workload snapshot")
				return
			}

		case reply := <-c.replies:
			_ = c.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, []byte(reply)); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump consumes client frames until the connection fails or closes.
func (c *workloadClient) readPump() {
	_ = c.conn.SetReadDeadline(time.Now().Add(wsPongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	for {
		messageType, payload, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				c.logger.Warn().Err(err).Msg("websocket read failed")
			}
			return
		}
		_ = c.conn.SetReadDeadline(time.Now().Add(wsPongWait))

		if messageType != websocket.TextMessage || string(payload) != wsPingText {
			continue
		}
		select {
		case c.replies <- wsPongText:
		default:
			c.logger.Debug().Msg("websocket reply dropped")
		}
	}
}
