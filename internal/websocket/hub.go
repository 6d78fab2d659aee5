package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"happycust-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Notification is the payload pushed to connected dashboard sessions when a
// widget submission lands in one of the owner's projects.
type Notification struct {
	Kind      string    `json:"kind"`
	ProjectId string    `json:"projectId"`
	EntityId  string    `json:"entityId"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Hub fans notifications out to the dashboard sessions of each project owner.
// A single owner can hold several connections (multiple tabs/devices); Redis
// pub/sub relays messages to sessions held by other instances.
type Hub struct {
	// owner user id -> open sessions
	clients map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// nil when Redis is unavailable; fan-out is then instance-local only
	rdb *redis.Client

	logger logger.ILogger
}

const relayChannel = "dashboard_events"

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.relayFromRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.UserID] = append(h.clients[client.UserID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Dashboard session registered", map[string]interface{}{"user_id": client.UserID})

		case client := <-h.unregister:
			h.mu.Lock()
			// Sole place that closes client.Send. A client can be handed in
			// twice (slow-buffer drop racing a disconnect); the second pass
			// no longer finds it here and must not close again.
			if clients, ok := h.clients[client.UserID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.UserID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.UserID]) == 0 {
					delete(h.clients, client.UserID)
					h.logger.Info("Hub", "Last dashboard session closed", map[string]interface{}{"user_id": client.UserID})
				}
			}
			h.mu.Unlock()
		}
	}
}

// Send pushes a notification to every open session of one project owner,
// locally and via Redis for sessions attached to other instances.
func (h *Hub) Send(userID uuid.UUID, notification Notification) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "notification",
		"data": notification,
	})

	h.mu.RLock()
	clients, localFound := h.clients[userID]
	var stale []*Client
	if localFound {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
				h.logger.Warn("Hub", "Session buffer full, dropping", map[string]interface{}{"user_id": userID})
				stale = append(stale, client)
			}
		}
	}
	h.mu.RUnlock()
	h.dropStale(stale)

	if h.rdb != nil {
		payload := map[string]interface{}{
			"target_user_id": userID.String(),
			"message":        data,
		}
		jsonPayload, _ := json.Marshal(payload)
		h.rdb.Publish(context.Background(), relayChannel, jsonPayload)
	}
}

// Broadcast pushes a notification to every connected session regardless of
// owner. Used for system-wide announcements.
func (h *Hub) Broadcast(notification Notification) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "notification",
		"data": notification,
	})

	h.mu.RLock()
	var stale []*Client
	for _, clients := range h.clients {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
				stale = append(stale, client)
			}
		}
	}
	h.mu.RUnlock()
	h.dropStale(stale)

	if h.rdb != nil {
		payload := map[string]interface{}{
			"target_user_id": "*",
			"message":        data,
		}
		jsonPayload, _ := json.Marshal(payload)
		h.rdb.Publish(context.Background(), relayChannel, jsonPayload)
	}
}

// dropStale hands full-buffer sessions to the unregister handler. Must be
// called with mu released: Run needs the write lock to process them.
func (h *Hub) dropStale(stale []*Client) {
	for _, client := range stale {
		h.unregister <- client
	}
}

// relayFromRedis delivers messages published by other instances to the
// sessions this instance holds.
func (h *Hub) relayFromRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, relayChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var payload struct {
			TargetUserID string          `json:"target_user_id"`
			Message      json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}

		if payload.TargetUserID == "*" {
			h.mu.RLock()
			var stale []*Client
			for _, clients := range h.clients {
				for _, client := range clients {
					select {
					case client.Send <- payload.Message:
					default:
						stale = append(stale, client)
					}
				}
			}
			h.mu.RUnlock()
			h.dropStale(stale)
			continue
		}

		uid, err := uuid.Parse(payload.TargetUserID)
		if err != nil {
			continue
		}

		h.mu.RLock()
		clients, ok := h.clients[uid]
		var stale []*Client
		if ok {
			for _, client := range clients {
				select {
				case client.Send <- payload.Message:
				default:
					stale = append(stale, client)
				}
			}
		}
		h.mu.RUnlock()
		h.dropStale(stale)
	}
}
