package services

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/onegreenvn/outreach-dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

// AllActivity subscribes to every activity kind
const AllActivity = "all"

// SSEHub manages Server-Sent Events connections for the live activity feed
type SSEHub struct {
	// Map of topic keys to channels
	// Key format: "activity:all" or "activity:<kind>"
	clients map[string]map[chan []byte]bool
	mu      sync.RWMutex
}

// NewSSEHub creates a new SSE hub
func NewSSEHub() *SSEHub {
	return &SSEHub{
		clients: make(map[string]map[chan []byte]bool),
	}
}

func activityKey(kind string) string {
	if kind == "" {
		kind = AllActivity
	}
	return fmt.Sprintf("activity:%s", kind)
}

// RegisterClient registers a new SSE client for an activity kind ("all" for every kind)
func (h *SSEHub) RegisterClient(kind string) chan []byte {
	h.mu.Lock()
	defer h.mu.Unlock()

	key := activityKey(kind)
	clientChan := make(chan []byte, 10) // Buffer size 10

	if h.clients[key] == nil {
		h.clients[key] = make(map[chan []byte]bool)
	}
	h.clients[key][clientChan] = true

	logrus.Infof("SSE client registered for %s (total clients: %d)", key, len(h.clients[key]))
	return clientChan
}

// UnregisterClient unregisters an SSE client
func (h *SSEHub) UnregisterClient(kind string, clientChan chan []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	key := activityKey(kind)
	if h.clients[key] != nil {
		if _, ok := h.clients[key][clientChan]; ok {
			delete(h.clients[key], clientChan)
			close(clientChan)
		}

		// Clean up empty maps
		if len(h.clients[key]) == 0 {
			delete(h.clients, key)
		}
	}

	logrus.Infof("SSE client unregistered for %s (remaining clients: %d)", key, len(h.clients[key]))
}

// BroadcastActivity sends an entry to subscribers of its kind and to "all" subscribers
func (h *SSEHub) BroadcastActivity(entry *models.ActivityLog) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	kindKey := activityKey(string(entry.Kind))
	h.broadcastToKeyLocked(kindKey, entry, h.clients[kindKey])

	allKey := activityKey(AllActivity)
	h.broadcastToKeyLocked(allKey, entry, h.clients[allKey])
}

// broadcastToKeyLocked broadcasts an entry to clients (assumes lock is already held)
func (h *SSEHub) broadcastToKeyLocked(key string, entry *models.ActivityLog, clients map[chan []byte]bool) {
	if len(clients) == 0 {
		return
	}

	entryJSON, err := json.Marshal(entry)
	if err != nil {
		logrus.Errorf("Failed to marshal activity for SSE: %v", err)
		return
	}

	message := fmt.Sprintf("event: activity\ndata: %s\n\n", string(entryJSON))

	// Send to all clients (non-blocking)
	for clientChan := range clients {
		select {
		case clientChan <- []byte(message):
		default:
			logrus.Warnf("SSE client channel full, skipping: %s", key)
		}
	}
}

// GetClientCount returns the number of clients subscribed to a kind
func (h *SSEHub) GetClientCount(kind string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients[activityKey(kind)])
}

// SendHeartbeat sends a heartbeat comment to every client
func (h *SSEHub) SendHeartbeat() {
	h.mu.RLock()
	defer h.mu.RUnlock()

	heartbeat := []byte(fmt.Sprintf(": heartbeat %s\n\n", time.Now().Format(time.RFC3339)))
	for _, clients := range h.clients {
		for clientChan := range clients {
			select {
			case clientChan <- heartbeat:
			default:
				// Skip if channel is full
			}
		}
	}
}
