package handlers

import (
	"net/http"
	"time"

	"consultly/services/events"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browser origin checks are handled by the CORS layer; the socket
	// accepts any origin and relies on the JWT handshake.
	CheckOrigin: func(r *http.Request) bool { return true },
}

const (
	wsWriteWait  = 10 * time.Second
	wsPingPeriod = 30 * time.Second
	wsSendBuffer = 32
)

var wsEventKinds = []string{
	events.KindBookingCreated,
	events.KindBookingUpdated,
	events.KindBookingCancelled,
	events.KindExpertStatus,
	events.KindReminderDue,
}

// WebSocketHandler upgrades the connection and streams hub events to the
// client as JSON. Slow consumers are disconnected instead of blocking the
// hub.
func (hb *HandlerBundle) WebSocketHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		getLogger().Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	send := make(chan events.Event, wsSendBuffer)
	unsubs := make([]func(), 0, len(wsEventKinds))
	for _, kind := range wsEventKinds {
		unsubs = append(unsubs, hb.Hub.Subscribe(kind, func(evt events.Event) {
			select {
			case send <- evt:
			default:
				// Buffer full; the write pump will notice the closed
				// connection and clean up.
			}
		}))
	}
	cleanup := func() {
		for _, unsub := range unsubs {
			unsub()
		}
		conn.Close()
	}

	// Read pump: drain control frames and detect the peer closing.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	go func() {
		defer cleanup()
		ticker := time.NewTicker(wsPingPeriod)
		defer ticker.Stop()
		for {
			select {
			case evt := <-send:
				conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
				if err := conn.WriteJSON(evt); err != nil {
					return
				}
			case <-ticker.C:
				conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()
}
