package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"placement-engine/internal/domain"
	"placement-engine/internal/events"
	"placement-engine/internal/rank"
	"placement-engine/internal/store"
)

type DigestHandler struct {
	Store *store.Store
	Hub   *events.Hub
	Jobs  func() []domain.Job

	// Now is injectable for tests; defaults to time.Now in NewMux.
	Now func() time.Time
}

func (h DigestHandler) dateParam(r *http.Request) string {
	if d := r.URL.Query().Get("date"); d != "" {
		return d
	}
	return h.Now().UTC().Format("2006-01-02")
}

// Get returns the stored digest for a date (default: today).
func (h DigestHandler) Get(w http.ResponseWriter, r *http.Request) {
	d := h.Store.Digest(h.dateParam(r))
	if d == nil {
		WriteError(w, r, http.StatusNotFound, "digest_not_found", "no digest for that date")
		return
	}
	writeJSON(w, d)
}

// Generate builds today's digest from the current catalog and preferences
// and persists it, replacing any earlier digest for the same date.
func (h DigestHandler) Generate(w http.ResponseWriter, r *http.Request) {
	prefs := h.Store.Preferences()
	if prefs == nil || prefs.Empty() {
		WriteError(w, r, http.StatusBadRequest, "preferences_required", "set preferences before generating a digest")
		return
	}

	d := rank.BuildDigest(h.Jobs(), prefs, h.Now())
	if err := h.Store.SaveDigest(*d); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, events.TypeDigestGenerated, 1, map[string]any{"date": d.Date, "count": len(d.Jobs)}))
	writeJSON(w, d)
}

// Export renders a digest as shareable plain text.
func (h DigestHandler) Export(w http.ResponseWriter, r *http.Request) {
	d := h.Store.Digest(h.dateParam(r))
	if d == nil {
		WriteError(w, r, http.StatusNotFound, "digest_not_found", "no digest for that date")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = fmt.Fprint(w, ExportDigestText(*d))
}

func ExportDigestText(d domain.Digest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Top %d Jobs For You (%s)\n\n", len(d.Jobs), d.Date)
	for i, j := range d.Jobs {
		fmt.Fprintf(&b, "%d. %s at %s\n", i+1, j.Title, j.Company)
		loc := j.Location
		if j.Mode != "" {
			loc += " | " + j.Mode
		}
		fmt.Fprintf(&b, "   %s | Match: %d%%\n", loc, j.MatchScore)
		if j.ApplyURL != "" {
			fmt.Fprintf(&b, "   %s\n", j.ApplyURL)
		}
		b.WriteString("\n")
	}
	return b.String()
}
