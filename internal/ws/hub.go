package ws

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/birthday-onchain/boc-api/internal/chain"
	"github.com/birthday-onchain/boc-api/internal/model"
)

const redisChannel = "boc:events"

// Hub manages all WebSocket connections and fans committed platform events
// out to them. It uses Redis Pub/Sub for horizontal scaling across multiple
// instances.
type Hub struct {
	// Map of account address -> set of connections (one account can have
	// multiple tabs/devices)
	clients map[chain.Address]map[*Client]bool
	mu      sync.RWMutex

	// Channels for registering/unregistering clients
	register   chan *Client
	unregister chan *Client

	// Redis client for Pub/Sub (horizontal scaling)
	rdb *redis.Client
}

// NewHub creates a new WebSocket Hub
func NewHub(rdb *redis.Client) *Hub {
	return &Hub{
		clients:    make(map[chain.Address]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		rdb:        rdb,
	}
}

// Run starts the Hub's main event loop
func (h *Hub) Run(ctx context.Context) {
	// Start Redis subscriber in a goroutine
	go h.subscribeRedis(ctx)

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.addClient(client)

		case client := <-h.unregister:
			h.removeClient(client)
		}
	}
}

// Register queues a client for registration with the hub
func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.Address]; !ok {
		h.clients[client.Address] = make(map[*Client]bool)
	}
	h.clients[client.Address][client] = true
	log.Printf("✅ Client connected: %s (total connections: %d)", client.Address, len(h.clients[client.Address]))
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.clients[client.Address]; ok {
		// A failed send may have evicted the client already; only close
		// the channel once.
		if _, active := clients[client]; active {
			delete(clients, client)
			close(client.send)
		}
		if len(clients) == 0 {
			delete(h.clients, client.Address)
		}
	}
	log.Printf("❌ Client disconnected: %s", client.Address)
}

// SendToAddress delivers an event to one account (all its connections, on
// every instance).
func (h *Hub) SendToAddress(addr chain.Address, event *model.StreamEvent) {
	h.publishToRedis(&TargetedEvent{Target: addr, Event: event})
}

// Broadcast delivers an event to every connected client on every instance.
func (h *Hub) Broadcast(event *model.StreamEvent) {
	h.publishToRedis(&TargetedEvent{Event: event})
}

// sendToLocalAddress delivers an event to an account on this instance only.
// Takes the write lock: a full send buffer evicts the client here.
func (h *Hub) sendToLocalAddress(addr chain.Address, event *model.StreamEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.clients[addr]; ok {
		data, err := json.Marshal(event)
		if err != nil {
			log.Printf("Error marshaling event: %v", err)
			return
		}
		for client := range clients {
			select {
			case client.send <- data:
			default:
				// Client's send buffer is full, close connection
				close(client.send)
				delete(clients, client)
			}
		}
	}
}

// broadcastToLocal delivers an event to all connected local clients. Same
// locking rule as sendToLocalAddress.
func (h *Hub) broadcastToLocal(event *model.StreamEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error marshaling broadcast event: %v", err)
		return
	}

	for _, clients := range h.clients {
		for client := range clients {
			select {
			case client.send <- data:
			default:
				close(client.send)
				delete(clients, client)
			}
		}
	}
}

// IsOnline checks if an account has any active connections on this instance
func (h *Hub) IsOnline(addr chain.Address) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.clients[addr]
	return ok
}

// ========== Redis Pub/Sub for Horizontal Scaling ==========

// TargetedEvent wraps an event with a target address for Redis Pub/Sub. An
// empty target means broadcast.
type TargetedEvent struct {
	Target chain.Address      `json:"target,omitempty"`
	Event  *model.StreamEvent `json:"event"`
}

// publishToRedis publishes an event to Redis for cross-instance delivery
func (h *Hub) publishToRedis(data interface{}) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		log.Printf("Error marshaling for Redis: %v", err)
		return
	}

	if err := h.rdb.Publish(context.Background(), redisChannel, jsonData).Err(); err != nil {
		log.Printf("Error publishing to Redis: %v", err)
	}
}

// subscribeRedis subscribes to Redis and delivers events to local clients
func (h *Hub) subscribeRedis(ctx context.Context) {
	pubsub := h.rdb.Subscribe(ctx, redisChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	log.Println("📡 Redis Pub/Sub subscriber started")

	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-ch:
			var targeted TargetedEvent
			if err := json.Unmarshal([]byte(msg.Payload), &targeted); err != nil {
				log.Printf("Error unmarshaling Redis message: %v", err)
				continue
			}

			if targeted.Event == nil {
				continue
			}
			if targeted.Target != "" {
				h.sendToLocalAddress(targeted.Target, targeted.Event)
			} else {
				h.broadcastToLocal(targeted.Event)
			}
		}
	}
}
