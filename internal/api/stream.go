package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/abdulhaseebkhan2166/saranda-quest/internal/logging"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The log stream is a local single-player surface.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// LogHub fans battle log lines out to connected websocket clients. A
// slow client gets dropped instead of blocking the battle pipeline.
type LogHub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
}

type client struct {
	conn *websocket.Conn
	send chan string
}

// NewLogHub creates an empty hub.
func NewLogHub() *LogHub {
	return &LogHub{clients: map[*client]struct{}{}}
}

// Broadcast queues a log line for every connected client.
func (h *LogHub) Broadcast(line string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for cl := range h.clients {
		select {
		case cl.send <- line:
		default:
			// Backpressure: disconnect instead of stalling.
			close(cl.send)
			delete(h.clients, cl)
		}
	}
}

// ServeWS upgrades the request and streams log lines until the client
// goes away.
func (h *LogHub) ServeWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logging.Error("websocket upgrade failed", err, nil)
		return
	}
	cl := &client{conn: conn, send: make(chan string, 64)}

	h.mu.Lock()
	h.clients[cl] = struct{}{}
	h.mu.Unlock()

	go h.writeLoop(cl)
	h.readLoop(cl)
}

func (h *LogHub) writeLoop(cl *client) {
	defer cl.conn.Close()
	for line := range cl.send {
		if err := cl.conn.WriteMessage(websocket.TextMessage, []byte(line)); err != nil {
			return
		}
	}
	cl.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
}

// readLoop drains control frames and detects disconnects.
func (h *LogHub) readLoop(cl *client) {
	defer func() {
		h.mu.Lock()
		if _, ok := h.clients[cl]; ok {
			close(cl.send)
			delete(h.clients, cl)
		}
		h.mu.Unlock()
		cl.conn.Close()
	}()
	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			return
		}
	}
}
