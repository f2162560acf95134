package api

import (
	"encoding/json"
	"sync"

	"github.com/gridsnake/engine/rules"
	log "github.com/sirupsen/logrus"
)

const subscriberBuffer = 16

// Hub fans frames out to websocket subscribers. Its Draw method is a
// game.DrawFunc.
type Hub struct {
	mu   sync.Mutex
	subs map[chan []byte]struct{}
}

// NewHub creates a hub with no subscribers.
func NewHub() *Hub {
	return &Hub{subs: map[chan []byte]struct{}{}}
}

// Draw encodes the state once and offers it to every subscriber. Subscribers
// that are behind miss the frame, the game is never blocked.
func (h *Hub) Draw(snake *rules.Snake, food *rules.Food) {
	data, err := json.Marshal(NewFrame(snake, food))
	if err != nil {
		log.WithError(err).Error("unable to encode frame")
		return
	}
	h.broadcast(data)
}

func (h *Hub) broadcast(data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs {
		select {
		case ch <- data:
		default:
		}
	}
}

func (h *Hub) subscribe() chan []byte {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan []byte, subscriberBuffer)
	h.subs[ch] = struct{}{}
	return ch
}

func (h *Hub) unsubscribe(ch chan []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subs[ch]; ok {
		delete(h.subs, ch)
		close(ch)
	}
}

func (h *Hub) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
