package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"placement-engine/internal/events"
	"placement-engine/internal/prep"
	"placement-engine/internal/store"
)

// Analyzing a one-liner produces junk plans, so short pastes are rejected.
const minJDChars = 200

type AnalysesHandler struct {
	Store     *store.Store
	Hub       *events.Hub
	Generator *prep.Generator
}

func (h AnalysesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Company string `json:"company"`
		Role    string `json:"role"`
		JDText  string `json:"jdText"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if len(strings.TrimSpace(body.JDText)) < minJDChars {
		WriteError(w, r, http.StatusBadRequest, "jd_too_short", "This JD is too short to analyze deeply. Paste full JD for better output.")
		return
	}

	a := h.Generator.Analyze(body.Company, body.Role, body.JDText)
	if err := h.Store.AppendAnalysis(a); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, events.TypeAnalysisCreated, 1, map[string]any{"id": a.ID, "company": a.Company, "role": a.Role}))
	WriteJSON(w, http.StatusCreated, a)
}

func (h AnalysesHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Store.Analyses())
}

// ByPath dispatches /analyses/{id} and /analyses/{id}/skills/toggle.
func (h AnalysesHandler) ByPath(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/analyses/")
	parts := strings.SplitN(rest, "/", 2)
	id := parts[0]
	if id == "" {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "missing analysis id")
		return
	}

	action := ""
	if len(parts) == 2 {
		action = parts[1]
	}

	switch {
	case action == "" && r.Method == http.MethodGet:
		h.get(w, r, id)
	case action == "skills/toggle" && r.Method == http.MethodPost:
		h.toggle(w, r, id)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h AnalysesHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	a := h.Store.AnalysisByID(id)
	if a == nil {
		WriteError(w, r, http.StatusNotFound, "analysis_not_found", "no such analysis")
		return
	}
	writeJSON(w, a)
}

func (h AnalysesHandler) toggle(w http.ResponseWriter, r *http.Request, id string) {
	var body struct {
		Skill string `json:"skill"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	a := h.Store.AnalysisByID(id)
	if a == nil {
		WriteError(w, r, http.StatusNotFound, "analysis_not_found", "no such analysis")
		return
	}
	if err := h.Generator.ToggleSkill(a, body.Skill); err != nil {
		WriteError(w, r, http.StatusBadRequest, "unknown_skill", err.Error())
		return
	}
	if err := h.Store.ReplaceAnalysis(*a); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, events.TypeSkillToggled, 1, map[string]any{
		"id": a.ID, "skill": body.Skill, "readinessScore": a.ReadinessScore,
	}))
	writeJSON(w, a)
}
