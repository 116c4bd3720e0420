package httpapi

import (
	"encoding/json"
	"net/http"

	"placement-engine/internal/resume"
)

type ResumeHandler struct{}

// Score evaluates a submitted resume against the ATS rule set. Stateless:
// nothing is persisted, the UI re-submits on every edit.
func (h ResumeHandler) Score(w http.ResponseWriter, r *http.Request) {
	var doc resume.Resume
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	writeJSON(w, resume.Evaluate(doc))
}
