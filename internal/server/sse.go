package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"
)

// Event names sent on the /events stream.
const (
	eventCompletion = "completion"
	eventPreview    = "preview"
)

// SSEWriter helps write Server-Sent Events
type SSEWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

// NewSSEWriter creates a new SSE writer
func NewSSEWriter(w http.ResponseWriter) (*SSEWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	return &SSEWriter{w: w, flusher: flusher}, nil
}

// WriteEvent sends an SSE event
func (s *SSEWriter) WriteEvent(event string, data any) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(s.w, "event: %s\n", event); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.w, "data: %s\n\n", jsonData); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

type completionEvent struct {
	Percent int `json:"percent"`
}

type previewEvent struct {
	HTML string `json:"html"`
}

type sseEvent struct {
	name string
	data any
}

// subscriberBuffer is how many events a slow client may fall behind before
// events are dropped for it.
const subscriberBuffer = 16

// hub fans session notifications out to connected event streams. It is
// called under the session lock, so it never blocks.
type hub struct {
	mu      sync.Mutex
	clients map[chan sseEvent]struct{}
	closed  bool
}

func newHub() *hub {
	return &hub{clients: make(map[chan sseEvent]struct{})}
}

// OnCompletion implements session.Observer.
func (h *hub) OnCompletion(percent int) {
	h.broadcast(sseEvent{name: eventCompletion, data: completionEvent{Percent: percent}})
}

// OnPreview implements session.Observer.
func (h *hub) OnPreview(html string) {
	h.broadcast(sseEvent{name: eventPreview, data: previewEvent{HTML: html}})
}

func (h *hub) broadcast(ev sseEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.clients {
		select {
		case ch <- ev:
		default:
			log.Printf("[events] client is behind, dropping %s event", ev.name)
		}
	}
}

// subscribe registers a client. The returned channel is closed by
// unsubscribe or when the hub shuts down. ok is false after shutdown.
func (h *hub) subscribe() (ch chan sseEvent, ok bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, false
	}
	ch = make(chan sseEvent, subscriberBuffer)
	h.clients[ch] = struct{}{}
	return ch, true
}

func (h *hub) unsubscribe(ch chan sseEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[ch]; ok {
		delete(h.clients, ch)
		close(ch)
	}
}

func (h *hub) close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for ch := range h.clients {
		delete(h.clients, ch)
		close(ch)
	}
}

// handleEvents streams completion and preview updates. The current values
// are sent first.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	ch, ok := s.events.subscribe()
	if !ok {
		s.errorResponse(w, http.StatusServiceUnavailable, "server is shutting down")
		return
	}
	defer s.events.unsubscribe(ch)

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	// the stream outlives the server's write timeout
	if err := http.NewResponseController(w).SetWriteDeadline(time.Time{}); err != nil && !errors.Is(err, http.ErrNotSupported) {
		log.Printf("[events] failed to clear write deadline: %v", err)
	}

	snap := s.session.Snapshot()
	if err := sse.WriteEvent(eventCompletion, completionEvent{Percent: snap.Completion}); err != nil {
		return
	}
	if err := sse.WriteEvent(eventPreview, previewEvent{HTML: s.session.Preview()}); err != nil {
		return
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case ev, open := <-ch:
			if !open {
				return
			}
			if err := sse.WriteEvent(ev.name, ev.data); err != nil {
				log.Printf("Error writing SSE event: %v", err)
				return
			}
		}
	}
}
