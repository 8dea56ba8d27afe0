package ws

import (
	"context"
	"log"
	"sync"
)

type userMessage struct {
	userID  string
	payload []byte
}

// Hub owns the client registry. Messages are addressed to a single user and
// fan out to every socket that user has open.
type Hub struct {
	clients    map[*Client]bool
	byUser     map[string]map[*Client]struct{}
	broadcast  chan userMessage
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	stopOnce   sync.Once
	mutex      sync.RWMutex
	logger     *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		byUser:     make(map[string]map[*Client]struct{}),
		broadcast:  make(chan userMessage, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.stopOnce.Do(func() { close(h.done) })
			h.closeAll()
			h.drainPending()
			return

		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			h.clients[client] = true
			set, ok := h.byUser[client.userID]
			if !ok {
				set = make(map[*Client]struct{})
				h.byUser[client.userID] = set
			}
			set[client] = struct{}{}
			total := len(h.clients)
			h.mutex.Unlock()
			h.logf("WS connected | user_id=%s total_clients=%d", client.userID, total)

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			h.remove(client)
			total := len(h.clients)
			h.mutex.Unlock()
			h.logf("WS disconnected | user_id=%s total_clients=%d", client.userID, total)

		case msg := <-h.broadcast:
			h.mutex.RLock()
			targets := make([]*Client, 0, len(h.byUser[msg.userID]))
			for c := range h.byUser[msg.userID] {
				targets = append(targets, c)
			}
			h.mutex.RUnlock()

			var slow []*Client
			for _, client := range targets {
				select {
				case client.send <- msg.payload:
				default:
					slow = append(slow, client)
				}
			}
			if len(slow) > 0 {
				h.mutex.Lock()
				for _, c := range slow {
					h.remove(c)
				}
				h.mutex.Unlock()
			}

			h.logf("WS push | user_id=%s clients=%d dropped=%d", msg.userID, len(targets), len(slow))
		}
	}
}

// remove must be called with the write lock held.
func (h *Hub) remove(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	if set, ok := h.byUser[client.userID]; ok {
		delete(set, client)
		if len(set) == 0 {
			delete(h.byUser, client.userID)
		}
	}
	close(client.send)
}

func (h *Hub) closeAll() {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for c := range h.clients {
		h.remove(c)
	}
}

// drainPending releases clients that were queued while Run was stopping.
func (h *Hub) drainPending() {
	for {
		select {
		case c := <-h.register:
			closeSend(c)
		case <-h.unregister:
		default:
			return
		}
	}
}

func closeSend(c *Client) {
	if c != nil && c.send != nil {
		close(c.send)
	}
}

func (h *Hub) stopped() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

// Register queues client for the hub. Once Run has returned the client is
// released right away so its write pump exits.
func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	if h.stopped() {
		closeSend(client)
		return
	}
	select {
	case h.register <- client:
	case <-h.done:
		closeSend(client)
	}
}

// Unregister never blocks after Run has returned.
func (h *Hub) Unregister(client *Client) {
	if h == nil || h.stopped() {
		return
	}
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// SendToUser queues payload for userID. It never blocks; a full queue drops
// the message.
func (h *Hub) SendToUser(userID string, payload []byte) {
	if h == nil || userID == "" {
		return
	}
	select {
	case h.broadcast <- userMessage{userID: userID, payload: payload}:
	default:
		h.logf("WS push dropped | user_id=%s reason=buffer_full", userID)
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

func (h *Hub) UserClientCount(userID string) int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.byUser[userID])
}

func (h *Hub) logf(format string, args ...any) {
	if h.logger != nil {
		h.logger.Printf(format, args...)
	}
}
