package httpapi

import (
	"crypto/subtle"
	"net/http"
	"time"
)

type ShutdownHandler struct {
	Token string
	Stop  func()
}

// Post stops the engine. Loopback-only and token-guarded so a hostile web
// page cannot kill the daemon via a forged cross-origin request.
func (h ShutdownHandler) Post(w http.ResponseWriter, r *http.Request) {
	if !isLoopback(r.RemoteAddr) {
		WriteError(w, r, http.StatusForbidden, "forbidden", "loopback only")
		return
	}
	got := r.Header.Get("X-Shutdown-Token")
	if subtle.ConstantTimeCompare([]byte(got), []byte(h.Token)) != 1 {
		WriteError(w, r, http.StatusForbidden, "invalid_token", "bad shutdown token")
		return
	}

	writeJSON(w, map[string]any{"ok": true, "stopping": true})
	go func() {
		time.Sleep(100 * time.Millisecond) // let the response flush
		h.Stop()
	}()
}
