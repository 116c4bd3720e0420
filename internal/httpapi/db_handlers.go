package httpapi

import (
	"database/sql"
	"net"
	"net/http"
)

type DBHandler struct {
	DB *sql.DB
}

// Checkpoint forces a WAL checkpoint so the sqlite file on disk is complete
// before the user copies or backs it up. Loopback-only.
func (h DBHandler) Checkpoint(w http.ResponseWriter, r *http.Request) {
	if h.DB == nil {
		WriteError(w, r, http.StatusNotFound, "no_database", "memory backend has no checkpoint")
		return
	}
	if !isLoopback(r.RemoteAddr) {
		WriteError(w, r, http.StatusForbidden, "forbidden", "loopback only")
		return
	}

	if _, err := h.DB.Exec("PRAGMA wal_checkpoint(FULL)"); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "checkpoint_failed", err.Error())
		return
	}
	writeJSON(w, map[string]any{"ok": true})
}

func isLoopback(remoteAddr string) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
