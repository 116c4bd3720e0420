package httpapi

import (
	"encoding/json"
	"net/http"
	"sync/atomic"

	"placement-engine/internal/config"
)

type ConfigHandler struct {
	CfgVal  *atomic.Value
	Path    string
	LoadCfg func() (config.Config, error)
}

func (h ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	cfg, _ := h.CfgVal.Load().(config.Config)
	writeJSON(w, map[string]any{"config": cfg, "path": h.Path})
}

// Put validates, saves atomically, then reloads so the running config always
// reflects what is on disk.
func (h ConfigHandler) Put(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var cfg config.Config
	if err := dec.Decode(&cfg); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	norm, v := config.NormalizeAndValidate(cfg)
	if !v.OK() {
		WriteJSON(w, http.StatusBadRequest, map[string]any{
			"ok": false, "errors": v.Errors, "warnings": v.Warnings,
		})
		return
	}

	if err := config.SaveAtomic(h.Path, norm); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "config_save_failed", err.Error())
		return
	}

	loaded, err := h.LoadCfg()
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "config_reload_failed", err.Error())
		return
	}
	h.CfgVal.Store(loaded)

	writeJSON(w, map[string]any{"ok": true, "config": loaded, "warnings": v.Warnings})
}
