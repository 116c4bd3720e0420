package httpapi

import (
	"net/http"
	"time"
)

type HealthHandler struct {
	Start time.Time
}

func (h HealthHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"ok":       true,
		"service":  "placement-engine",
		"uptime_s": int(time.Since(h.Start).Seconds()),
	})
}
