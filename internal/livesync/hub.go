// Package livesync moves settings revisions from the store to display
// surfaces: a websocket hub pushes revision-change events, and a poller
// fetches the latest committed document on a fixed interval. Polling is the
// correctness path; the hub only shortens the latency between a commit and
// the next poll.
package livesync

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/zearom/caster/internal/logger"
)

// RevisionEvent announces that a category's document has a new revision
type RevisionEvent struct {
	Category string `json:"category"`
	Revision int64  `json:"revision"`
}

// subscriberBuffer bounds the per-client event queue. A client that cannot
// keep up loses intermediate events, which is safe: only the latest revision
// matters.
const subscriberBuffer = 8

// Hub broadcasts revision events to subscribed clients. It implements the
// store's Notifier interface.
type Hub struct {
	upgrader websocket.Upgrader

	mu   sync.RWMutex
	subs map[string]map[*subscriber]struct{} // keyed by category
}

type subscriber struct {
	events chan RevisionEvent
}

// NewHub creates a new revision-notify hub
func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Display surfaces are served from OBS browser sources with
			// arbitrary origins.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		subs: make(map[string]map[*subscriber]struct{}),
	}
}

// NotifyRevision broadcasts a committed revision to every subscriber of the
// category. Subscribers with full queues are skipped, not blocked on.
func (h *Hub) NotifyRevision(category string, revision int64) {
	event := RevisionEvent{Category: category, Revision: revision}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subs[category] {
		select {
		case sub.events <- event:
		default:
			// Queue full; the client will catch up on its next poll.
		}
	}
}

// Subscribe registers an in-process listener for a category's revision
// events. The returned cancel function must be called when done.
func (h *Hub) Subscribe(category string) (<-chan RevisionEvent, func()) {
	sub := &subscriber{events: make(chan RevisionEvent, subscriberBuffer)}

	h.mu.Lock()
	if h.subs[category] == nil {
		h.subs[category] = make(map[*subscriber]struct{})
	}
	h.subs[category][sub] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		delete(h.subs[category], sub)
		h.mu.Unlock()
	}
	return sub.events, cancel
}

// ServeWS upgrades the request to a websocket and streams revision events
// for the category until the client disconnects.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, category string) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	events, cancel := h.Subscribe(category)
	defer cancel()
	defer conn.Close()

	logger.Log.Debug().
		Str("category", category).
		Str("remote", conn.RemoteAddr().String()).
		Msg("Display surface connected for revision notifications")

	// Reader goroutine: only there to observe the close.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case event := <-events:
			if err := conn.WriteJSON(event); err != nil {
				logger.Log.Debug().
					Err(err).
					Str("category", category).
					Msg("Dropping revision subscriber after write error")
				return nil
			}
		case <-done:
			return nil
		}
	}
}
