package httpd

import (
	"fmt"
	"net/http"
	"sync"
	"time"
)

// reloadHub is an explicit registry of open development-reload channels.
// Delivery is best-effort: slow or disconnected subscribers miss events,
// there is no backlog.
type reloadHub struct {
	mu      sync.Mutex
	clients map[chan string]struct{}
}

func newReloadHub() *reloadHub {
	return &reloadHub{clients: make(map[chan string]struct{})}
}

func (h *reloadHub) subscribe() chan string {
	ch := make(chan string, 4)
	h.mu.Lock()
	h.clients[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *reloadHub) unsubscribe(ch chan string) {
	h.mu.Lock()
	delete(h.clients, ch)
	h.mu.Unlock()
}

func (h *reloadHub) broadcast(event string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.clients {
		select {
		case ch <- event:
		default:
		}
	}
}

// handleReloadStream keeps a server-sent-event stream open per connected
// browser tab until the client disconnects.
func (s *Server) handleReloadStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	fmt.Fprint(w, "retry: 1000\n\n")
	flusher.Flush()

	ch := s.reload.subscribe()
	defer s.reload.unsubscribe(ch)

	for {
		select {
		case <-r.Context().Done():
			return
		case event := <-ch:
			fmt.Fprint(w, event)
			flusher.Flush()
		}
	}
}

// handleReloadBroadcast writes a reload event to every open stream.
func (s *Server) handleReloadBroadcast(w http.ResponseWriter, r *http.Request) {
	s.reload.broadcast(fmt.Sprintf("event: reload\ndata: %d\n\n", time.Now().UnixMilli()))
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
