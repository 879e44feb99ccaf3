package handlers

import (
	"sync"

	"github.com/gorilla/websocket"

	"agricoop-backend/internal/database/models"
	"agricoop-backend/internal/logger"
)

// ChatHub fans stored messages out to websocket subscribers, one subscriber
// set per conflict thread. Implements service.MessageBroadcaster.
type ChatHub struct {
	mu          sync.RWMutex
	subscribers map[string]map[*websocket.Conn]struct{}
	logger      *logger.Logger
}

// NewChatHub creates an empty hub
func NewChatHub(log *logger.Logger) *ChatHub {
	return &ChatHub{
		subscribers: make(map[string]map[*websocket.Conn]struct{}),
		logger:      log,
	}
}

// Subscribe registers a connection for a conflict thread
func (h *ChatHub) Subscribe(conflictDate string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subscribers[conflictDate] == nil {
		h.subscribers[conflictDate] = make(map[*websocket.Conn]struct{})
	}
	h.subscribers[conflictDate][conn] = struct{}{}
}

// Unsubscribe removes a connection. Safe to call for connections that were
// never subscribed.
func (h *ChatHub) Unsubscribe(conflictDate string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	conns := h.subscribers[conflictDate]
	delete(conns, conn)
	if len(conns) == 0 {
		delete(h.subscribers, conflictDate)
	}
}

// Broadcast sends a message to every live subscriber of the thread.
// Connections that fail to accept the write are dropped; their read loop
// handles cleanup.
func (h *ChatHub) Broadcast(conflictDate string, message *models.ChatMessage) {
	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.subscribers[conflictDate]))
	for conn := range h.subscribers[conflictDate] {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(message); err != nil {
			h.logger.WithField("conflict_date", conflictDate).WithField("error", err.Error()).
				Warn("dropping chat subscriber after failed write")
			conn.Close()
		}
	}
}
