package websocket

import (
	"context"
	"sync"
	"time"

	"livelink/pkg/logger"
)

const broadcastBuffer = 256

type Hub struct {
	clients      map[*Client]bool
	broadcast    chan Message
	register     chan *Client
	unregister   chan *Client
	rooms        map[string]map[*Client]bool
	defaultRooms []string
	done         chan struct{}
	mutex        sync.RWMutex
	logger       *logger.Logger
}

type Message struct {
	Type      string                 `json:"type"`
	RoomID    string                 `json:"room_id,omitempty"`
	Operator  string                 `json:"operator,omitempty"`
	Timestamp int64                  `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
}

// NewHub creates a hub whose clients are joined to defaultRooms on connect.
func NewHub(log *logger.Logger, defaultRooms ...string) *Hub {
	if log == nil {
		log = logger.Discard()
	}
	return &Hub{
		clients:      make(map[*Client]bool),
		broadcast:    make(chan Message, broadcastBuffer),
		register:     make(chan *Client),
		unregister:   make(chan *Client),
		rooms:        make(map[string]map[*Client]bool),
		defaultRooms: defaultRooms,
		done:         make(chan struct{}),
		logger:       log.WithField("component", "websocket_hub"),
	}
}

// Run processes registrations and broadcasts until ctx is cancelled, then
// disconnects every client.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.shutdown()
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			if message.RoomID != "" {
				h.sendToRoom(message.RoomID, message)
			} else {
				h.sendToAll(message)
			}
		}
	}
}

// Broadcast queues a message for delivery. A message is dropped when the
// queue is full.
func (h *Hub) Broadcast(message Message) bool {
	if message.Timestamp == 0 {
		message.Timestamp = getCurrentTimestamp()
	}
	select {
	case h.broadcast <- message:
		return true
	default:
		h.logger.WithField("type", message.Type).Warn("Broadcast queue full, dropping message")
		return false
	}
}

func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

func (h *Hub) RoomSize(roomID string) int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.rooms[roomID])
}

func (h *Hub) registerClient(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.clients[client] = true
	h.logger.WithOperator(client.Operator).Info("Client registered")

	// Join operator to their personal room
	h.joinRoom(client, "operator_"+client.Operator)
	for _, room := range h.defaultRooms {
		h.joinRoom(client, room)
	}

	welcomeMsg := Message{
		Type:      "welcome",
		Operator:  client.Operator,
		Timestamp: getCurrentTimestamp(),
		Data: map[string]interface{}{
			"message": "Connected successfully",
		},
	}

	h.sendToClient(client, welcomeMsg)
}

func (h *Hub) unregisterClient(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, ok := h.clients[client]; ok {
		h.removeClient(client)
		h.logger.WithOperator(client.Operator).Info("Client unregistered")
	}
}

func (h *Hub) shutdown() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for client := range h.clients {
		h.removeClient(client)
	}
}

// removeClient must be called with the write lock held.
func (h *Hub) removeClient(client *Client) {
	delete(h.clients, client)
	close(client.send)

	for roomID, room := range h.rooms {
		if _, exists := room[client]; exists {
			delete(room, client)
			if len(room) == 0 {
				delete(h.rooms, roomID)
			}
		}
	}
}

func (h *Hub) sendToAll(message Message) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for client := range h.clients {
		h.sendToClient(client, message)
	}
}

func (h *Hub) sendToRoom(roomID string, message Message) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	room, exists := h.rooms[roomID]
	if !exists {
		return
	}

	for client := range room {
		h.sendToClient(client, message)
	}
}

// sendToClient must be called with the write lock held. Slow clients are
// disconnected.
func (h *Hub) sendToClient(client *Client, message Message) {
	data, err := marshalMessage(message)
	if err != nil {
		h.logger.WithError(err).Error("Failed to marshal websocket message")
		return
	}
	select {
	case client.send <- data:
	default:
		h.removeClient(client)
	}
}

// SendToOperator delivers a message to every connection of one operator.
func (h *Hub) SendToOperator(operator string, message Message) bool {
	message.RoomID = "operator_" + operator
	return h.Broadcast(message)
}

func (h *Hub) joinRoom(client *Client, roomID string) {
	if h.rooms[roomID] == nil {
		h.rooms[roomID] = make(map[*Client]bool)
	}
	h.rooms[roomID][client] = true
	client.rooms[roomID] = true
}

func (h *Hub) JoinRoom(client *Client, roomID string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, ok := h.clients[client]; ok {
		h.joinRoom(client, roomID)
	}
}

func (h *Hub) LeaveRoom(client *Client, roomID string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if room, exists := h.rooms[roomID]; exists {
		delete(room, client)
		delete(client.rooms, roomID)

		if len(room) == 0 {
			delete(h.rooms, roomID)
		}
	}
}

func getCurrentTimestamp() int64 {
	return time.Now().Unix()
}
