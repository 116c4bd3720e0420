package httpapi

import (
	"encoding/json"
	"net/http"
)

// APIError is the envelope every non-2xx JSON response carries. The request
// id lets the UI shell correlate a failure with its access-log line.
type APIError struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id,omitempty"`
	} `json:"error"`
}

// writeJSON emits a 200 JSON body. Encoding failures are ignored: the status
// line is already on the wire and there is nothing useful left to do.
func writeJSON(w http.ResponseWriter, v any) {
	WriteJSON(w, http.StatusOK, v)
}

// WriteJSON emits a JSON body with an explicit status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError fills the envelope, stamping the request id from the context.
func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	var e APIError
	e.Error.Code = code
	e.Error.Message = message
	e.Error.RequestID = RequestIDFrom(r.Context())
	WriteJSON(w, status, e)
}
