package ws

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Event is a game lifecycle notification pushed to dashboard clients
// observing a chat.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type Hub struct {
	mu    sync.RWMutex
	chats map[int64]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		chats: make(map[int64]map[*websocket.Conn]bool),
	}
}

func (h *Hub) AddConnection(chatID int64, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.chats[chatID] == nil {
		h.chats[chatID] = make(map[*websocket.Conn]bool)
	}
	h.chats[chatID][conn] = true
	log.Debug().Int64("chat_id", chatID).Int("total", len(h.chats[chatID])).Msg("ws client connected")
}

func (h *Hub) RemoveConnection(chatID int64, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.chats[chatID]; ok {
		delete(conns, conn)
		conn.Close()
		if len(conns) == 0 {
			delete(h.chats, chatID)
		}
		log.Debug().Int64("chat_id", chatID).Msg("ws client disconnected")
	}
}

// Broadcast pushes an event to every client observing the chat. Dead
// connections are dropped on write failure, so the write lock is held.
func (h *Hub) Broadcast(chatID int64, event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.chats[chatID]
	if !ok {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Msg("ws marshal")
		return
	}

	for conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Warn().Err(err).Int64("chat_id", chatID).Msg("ws write")
			conn.Close()
			delete(conns, conn)
		}
	}
}
