package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"placement-engine/internal/events"
)

const ssePingInterval = 25 * time.Second

type EventsHandler struct {
	Hub *events.Hub
}

// ServeSSE streams engine events to the UI. Periodic pings keep proxies and
// browser EventSource reconnect logic from treating the stream as dead.
func (h EventsHandler) ServeSSE(w http.ResponseWriter, r *http.Request) {
	fl, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := h.Hub.Subscribe()
	defer h.Hub.Unsubscribe(ch)

	reqID := RequestIDFrom(r.Context())
	fmt.Fprintf(w, "data: %s\n\n", events.MakeEvent(reqID, events.TypePing, 1, nil))
	fl.Flush()

	ticker := time.NewTicker(ssePingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case evt := <-ch:
			fmt.Fprintf(w, "data: %s\n\n", evt)
			fl.Flush()
		case <-ticker.C:
			fmt.Fprintf(w, "data: %s\n\n", events.MakeEvent(reqID, events.TypePing, 1, nil))
			fl.Flush()
		}
	}
}
