package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"placement-engine/internal/domain"
	"placement-engine/internal/events"
	"placement-engine/internal/match"
	"placement-engine/internal/rank"
	"placement-engine/internal/store"
)

type JobsHandler struct {
	Store *store.Store
	Hub   *events.Hub
	Jobs  func() []domain.Job
}

// List serves the filtered, scored, sorted catalog view.
// Query params: keyword, location, mode, experience, source, status,
// sort (latest|match|salary), only_matches.
func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := rank.Filters{
		Keyword:     q.Get("keyword"),
		Location:    q.Get("location"),
		Mode:        q.Get("mode"),
		Experience:  q.Get("experience"),
		Source:      q.Get("source"),
		Status:      q.Get("status"),
		OnlyMatches: q.Get("only_matches") == "true",
	}
	mode := rank.SortMode(q.Get("sort"))
	if mode == "" {
		mode = rank.SortLatest
	}

	list := rank.Apply(h.Jobs(), f, mode, h.Store.Preferences(), h.Store.Status)
	writeJSON(w, list)
}

// ByPath dispatches /jobs/{id}, /jobs/{id}/save, /jobs/{id}/status.
func (h JobsHandler) ByPath(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/jobs/")
	parts := strings.SplitN(rest, "/", 2)
	id := parts[0]
	if id == "" {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "missing job id")
		return
	}

	job, ok := h.jobByID(id)
	if !ok {
		WriteError(w, r, http.StatusNotFound, "job_not_found", "no such job")
		return
	}

	action := ""
	if len(parts) == 2 {
		action = parts[1]
	}

	switch {
	case action == "" && r.Method == http.MethodGet:
		h.get(w, job)
	case action == "save" && r.Method == http.MethodPost:
		h.save(w, r, job)
	case action == "save" && r.Method == http.MethodDelete:
		h.unsave(w, r, job)
	case action == "status" && r.Method == http.MethodPut:
		h.setStatus(w, r, job)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h JobsHandler) jobByID(id string) (domain.Job, bool) {
	for _, j := range h.Jobs() {
		if j.ID == id {
			return j, true
		}
	}
	return domain.Job{}, false
}

func (h JobsHandler) get(w http.ResponseWriter, job domain.Job) {
	job.MatchScore = match.Score(job, h.Store.Preferences())
	writeJSON(w, map[string]any{
		"job":    job,
		"saved":  h.Store.IsSaved(job.ID),
		"status": h.Store.Status(job.ID),
	})
}

func (h JobsHandler) save(w http.ResponseWriter, r *http.Request, job domain.Job) {
	if err := h.Store.SaveJob(job.ID); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}
	writeJSON(w, map[string]any{"ok": true, "id": job.ID, "saved": true})
}

func (h JobsHandler) unsave(w http.ResponseWriter, r *http.Request, job domain.Job) {
	if err := h.Store.UnsaveJob(job.ID); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}
	writeJSON(w, map[string]any{"ok": true, "id": job.ID, "saved": false})
}

func (h JobsHandler) setStatus(w http.ResponseWriter, r *http.Request, job domain.Job) {
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if !domain.ValidStatus(body.Status) {
		WriteError(w, r, http.StatusBadRequest, "invalid_status", "status must be one of: Not Applied, Applied, Rejected, Selected")
		return
	}

	if err := h.Store.SetStatus(job, body.Status); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, events.TypeStatusChanged, 1, map[string]any{"id": job.ID, "status": body.Status}))
	writeJSON(w, map[string]any{"ok": true, "id": job.ID, "status": body.Status})
}

// Saved lists saved jobs with scores attached, in saved order.
func (h JobsHandler) Saved(w http.ResponseWriter, r *http.Request) {
	ids := h.Store.SavedIDs()
	byID := make(map[string]domain.Job)
	for _, j := range h.Jobs() {
		byID[j.ID] = j
	}

	prefs := h.Store.Preferences()
	out := make([]domain.Job, 0, len(ids))
	for _, id := range ids {
		if j, ok := byID[id]; ok {
			j.MatchScore = match.Score(j, prefs)
			out = append(out, j)
		}
	}
	writeJSON(w, out)
}

// StatusHistory serves the capped, newest-first status log.
func (h JobsHandler) StatusHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Store.StatusHistory())
}
