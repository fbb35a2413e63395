package api

import (
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	xlogger "ChainPulse/pkg/logger"
)

const liveWriteWait = 10 * time.Second

// A nil CheckOrigin rejects cross-origin handshakes.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type liveMessage struct {
	Type     string      `json:"type"`
	Snapshot interface{} `json:"snapshot,omitempty"`
	Error    string      `json:"error,omitempty"`
}

// Live pushes a snapshot on connect and again every live interval. Ticks read
// the cached snapshot; only POST /api/refresh forces a reload.
func (h *DashboardEchoHandler) Live(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", xlogger.Error(err))
		return nil
	}
	defer conn.Close()

	ctx := c.Request().Context()
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	snap, err := h.dash.Snapshot(ctx)
	if !h.push(conn, snap, err) {
		return nil
	}
	if h.liveInterval <= 0 {
		<-closed
		return nil
	}

	ticker := time.NewTicker(h.liveInterval)
	defer ticker.Stop()
	for {
		select {
		case <-closed:
			return nil
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			snap, err := h.dash.Snapshot(ctx)
			if !h.push(conn, snap, err) {
				return nil
			}
		}
	}
}

func (h *DashboardEchoHandler) push(conn *websocket.Conn, snap interface{}, err error) bool {
	msg := liveMessage{Type: "snapshot", Snapshot: snap}
	if err != nil {
		h.logger.Error("live snapshot error", xlogger.Error(err))
		msg = liveMessage{Type: "error", Error: err.Error()}
	}
	_ = conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
	if err := conn.WriteJSON(msg); err != nil {
		h.logger.Debug("websocket write failed", xlogger.Error(err))
		return false
	}
	return true
}
