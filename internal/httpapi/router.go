package httpapi

import (
	"net/http"
	"time"
)

// NewMux wires every route to its handler. Middleware is applied by the
// caller so tests can hit handlers without the full chain.
func NewMux(d Deps) *http.ServeMux {
	jobs := JobsHandler{Store: d.Store, Hub: d.Hub, Jobs: d.Jobs}
	prefs := PrefsHandler{Store: d.Store, Hub: d.Hub}
	digest := DigestHandler{Store: d.Store, Hub: d.Hub, Jobs: d.Jobs, Now: time.Now}
	analyses := AnalysesHandler{Store: d.Store, Hub: d.Hub, Generator: d.Generator}
	cfg := ConfigHandler{CfgVal: d.CfgVal, Path: d.UserCfgPath, LoadCfg: d.LoadCfg}
	sse := EventsHandler{Hub: d.Hub}
	health := HealthHandler{Start: time.Now()}
	db := DBHandler{DB: d.DB}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: health.Get,
	}))
	mux.HandleFunc("/jobs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jobs.List,
	}))
	mux.HandleFunc("/jobs/", jobs.ByPath)
	mux.HandleFunc("/saved", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jobs.Saved,
	}))
	mux.HandleFunc("/status/history", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jobs.StatusHistory,
	}))
	mux.HandleFunc("/preferences", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: prefs.Get,
		http.MethodPut: prefs.Put,
	}))
	mux.HandleFunc("/digest", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  digest.Get,
		http.MethodPost: digest.Generate,
	}))
	mux.HandleFunc("/digest/export", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: digest.Export,
	}))
	mux.HandleFunc("/analyses", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  analyses.List,
		http.MethodPost: analyses.Create,
	}))
	mux.HandleFunc("/analyses/", analyses.ByPath)
	mux.HandleFunc("/resume/score", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ResumeHandler{}.Score,
	}))
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: cfg.Get,
		http.MethodPut: cfg.Put,
	}))
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sse.ServeSSE,
	}))
	mux.HandleFunc("/db/checkpoint", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: db.Checkpoint,
	}))
	if d.Stop != nil {
		stop := ShutdownHandler{Token: d.ShutdownToken, Stop: d.Stop}
		mux.HandleFunc("/shutdown", methodMux(map[string]http.HandlerFunc{
			http.MethodPost: stop.Post,
		}))
	}
	return mux
}
