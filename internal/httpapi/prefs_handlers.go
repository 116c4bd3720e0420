package httpapi

import (
	"encoding/json"
	"net/http"

	"placement-engine/internal/domain"
	"placement-engine/internal/events"
	"placement-engine/internal/store"
)

type PrefsHandler struct {
	Store *store.Store
	Hub   *events.Hub
}

// Get returns the stored preferences, or null if none were ever saved.
func (h PrefsHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"preferences": h.Store.Preferences()})
}

func (h PrefsHandler) Put(w http.ResponseWriter, r *http.Request) {
	var p domain.Preferences
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	p = p.Normalize()
	if err := h.Store.SavePreferences(p); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, events.TypePreferencesUpdated, 1, map[string]any{"minMatchScore": p.MinMatchScore}))
	writeJSON(w, map[string]any{"ok": true, "preferences": p})
}
