package server

import (
	"context"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// LogBroadcaster streams log records to websocket viewers on /logs. It is an
// io.Writer so it can sit behind the slog handler.
type LogBroadcaster struct {
	upgrader  websocket.Upgrader
	clients   map[*websocket.Conn]struct{}
	broadcast chan []byte
	mutex     sync.Mutex
}

// NewLogBroadcaster creates a new LogBroadcaster. Viewers are accepted from
// any origin; the stream is read-only.
func NewLogBroadcaster() *LogBroadcaster {
	return &LogBroadcaster{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		clients:   make(map[*websocket.Conn]struct{}),
		broadcast: make(chan []byte, 256),
	}
}

// Run fans records out to viewers until ctx is done, then disconnects them.
func (b *LogBroadcaster) Run(ctx context.Context) {
	defer b.closeAll()
	for {
		select {
		case <-ctx.Done():
			return
		case message := <-b.broadcast:
			b.send(message)
		}
	}
}

func (b *LogBroadcaster) send(message []byte) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	for client := range b.clients {
		if err := client.WriteMessage(websocket.TextMessage, message); err != nil {
			client.Close()
			delete(b.clients, client)
		}
	}
}

func (b *LogBroadcaster) closeAll() {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	for client := range b.clients {
		client.Close()
		delete(b.clients, client)
	}
}

// Clients returns the number of connected viewers.
func (b *LogBroadcaster) Clients() int {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return len(b.clients)
}

// HandleWebsocket upgrades a viewer connection and keeps it registered until
// the peer goes away.
func (b *LogBroadcaster) HandleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	b.mutex.Lock()
	b.clients[conn] = struct{}{}
	b.mutex.Unlock()

	go func() {
		defer func() {
			b.mutex.Lock()
			delete(b.clients, conn)
			b.mutex.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Write queues a copy of p for the viewers. Records are dropped when the
// queue is full so logging never blocks a request.
func (b *LogBroadcaster) Write(p []byte) (int, error) {
	msg := make([]byte, len(p))
	copy(msg, p)

	select {
	case b.broadcast <- msg:
	default:
	}
	return len(p), nil
}
