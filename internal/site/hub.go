package site

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/mcp-matrix/internal/logging"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

const writeWait = 5 * time.Second

// reloadMessage is sent to every page after a rebuild.
type reloadMessage struct {
	Type    string `json:"type"`
	BuildID string `json:"build_id"`
}

// Hub tracks the open live-reload sockets.
type Hub struct {
	logger *slog.Logger

	mu      sync.Mutex
	conns   map[*websocket.Conn]struct{}
	buildID string
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger: logging.OrDiscard(logger),
		conns:  make(map[*websocket.Conn]struct{}),
	}
}

// ServeWS upgrades the request, sends the current build ID and holds the
// socket open until the page goes away.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade", "error", err)
		return
	}

	h.mu.Lock()
	h.conns[conn] = struct{}{}
	if h.buildID != "" {
		h.send(conn, h.buildID)
	}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.conns, conn)
		h.mu.Unlock()
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("websocket read", "error", err)
			}
			return
		}
	}
}

// Broadcast records buildID as current and pushes it to every socket.
func (h *Hub) Broadcast(buildID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.buildID = buildID
	for conn := range h.conns {
		h.send(conn, buildID)
	}
}

// Len is the number of open sockets.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// send must be called with h.mu held.
func (h *Hub) send(conn *websocket.Conn, buildID string) {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(reloadMessage{Type: "reload", BuildID: buildID}); err != nil {
		h.logger.Debug("websocket write", "error", err)
		conn.Close()
		delete(h.conns, conn)
	}
}
