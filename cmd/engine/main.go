package main

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"golang.org/x/sync/errgroup"

	"placement-engine/internal/catalog"
	"placement-engine/internal/config"
	"placement-engine/internal/domain"
	"placement-engine/internal/events"
	"placement-engine/internal/extract"
	"placement-engine/internal/httpapi"
	"placement-engine/internal/prep"
	"placement-engine/internal/rank"
	"placement-engine/internal/scheduler"
	"placement-engine/internal/store"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("[main] fatal: %v", err)
	}
}

func run() error {
	dataDir, err := resolveDataDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	// One engine per data dir. A second instance would race the sqlite
	// writer and double-generate digests.
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("another engine instance already holds %s", lock.Path())
	}
	defer func() { _ = lock.Unlock() }()

	cfgPath, err := config.EnsureUserConfig(dataDir, "config/config.yml")
	if err != nil {
		return fmt.Errorf("bootstrap config: %w", err)
	}
	loadCfg := func() (config.Config, error) {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return cfg, err
		}
		norm, v := config.NormalizeAndValidate(cfg)
		for _, warn := range v.Warnings {
			log.Printf("[config] warn: %s", warn)
		}
		if !v.OK() {
			return norm, fmt.Errorf("invalid config: %s", strings.Join(v.Errors, "; "))
		}
		return norm, nil
	}
	cfg, err := loadCfg()
	if err != nil {
		return err
	}
	var cfgVal atomic.Value
	cfgVal.Store(cfg)
	log.Printf("[main] config=%s port=%d data_dir=%s", cfgPath, cfg.App.Port, dataDir)

	st, pool, closeStore, err := openStore(dataDir)
	if err != nil {
		return err
	}
	defer closeStore()

	cat := &catalogCache{}
	jobs := func() []domain.Job {
		c := cfgVal.Load().(config.Config)
		return cat.get(c.Catalog.Path)
	}
	log.Printf("[catalog] loaded jobs=%d path=%s", len(jobs()), cfg.Catalog.Path)

	gen := prep.NewGenerator(extract.New(extract.Taxonomy))
	hub := events.NewHub()

	rootCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCtx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	token := shutdownToken()
	deps := httpapi.Deps{
		Store:         st,
		Hub:           hub,
		Jobs:          jobs,
		Generator:     gen,
		CfgVal:        &cfgVal,
		UserCfgPath:   cfgPath,
		LoadCfg:       loadCfg,
		DB:            pool,
		ShutdownToken: token,
		Stop:          cancel,
	}

	handler := httpapi.Chain(
		httpapi.NewMux(deps),
		httpapi.Cors,
		httpapi.RequestID,
		httpapi.Recover,
		httpapi.AccessLog,
		httpapi.RateLimit(cfg.Limits.RequestsPerSec, cfg.Limits.Burst),
	)
	srv := &http.Server{
		Addr:              fmt.Sprintf("127.0.0.1:%d", cfg.App.Port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(sigCtx)

	g.Go(func() error {
		log.Printf("[http] listening addr=%s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Printf("[main] shutting down")
		shCtx, shCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shCancel()
		return srv.Shutdown(shCtx)
	})

	g.Go(func() error {
		scheduler.Every(ctx, time.Minute, "digest", func(context.Context) error {
			return maybeGenerateDigest(&cfgVal, st, jobs, hub, time.Now())
		})
		return nil
	})

	return g.Wait()
}

func resolveDataDir() (string, error) {
	if d := os.Getenv("PLACEMENT_DATA_DIR"); d != "" {
		return d, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".placement-engine"), nil
}

// openStore returns a nil pool with the memory backend so the checkpoint
// endpoint can report there is nothing to checkpoint.
func openStore(dataDir string) (*store.Store, *sql.DB, func(), error) {
	if os.Getenv("PLACEMENT_STORE") == "memory" {
		log.Printf("[store] backend=memory")
		return store.New(store.NewMemKV()), nil, func() {}, nil
	}

	path := filepath.Join(dataDir, "engine.db")
	db, err := store.Open(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := store.Migrate(db.Pool); err != nil {
		_ = db.Close()
		return nil, nil, nil, fmt.Errorf("migrate: %w", err)
	}
	log.Printf("[store] backend=sqlite path=%s", path)
	return store.New(store.NewSQLiteKV(db.Pool)), db.Pool, func() { _ = db.Close() }, nil
}

func shutdownToken() string {
	if t := os.Getenv("PLACEMENT_SHUTDOWN_TOKEN"); t != "" {
		return t
	}
	var b [16]byte
	_, _ = rand.Read(b[:])
	t := hex.EncodeToString(b[:])
	log.Printf("[main] shutdown_token=%s", t)
	return t
}

// catalogCache reloads the catalog when its path or mtime changes, so a
// config PUT that repoints catalog.path takes effect without a restart.
type catalogCache struct {
	mu    sync.Mutex
	path  string
	mtime time.Time
	jobs  []domain.Job
}

func (c *catalogCache) get(path string) []domain.Job {
	c.mu.Lock()
	defer c.mu.Unlock()

	fi, statErr := os.Stat(path)
	if statErr == nil && path == c.path && fi.ModTime().Equal(c.mtime) {
		return c.jobs
	}

	jobs, err := catalog.Load(path)
	if err != nil {
		log.Printf("[catalog] load failed path=%s err=%v", path, err)
		return c.jobs
	}
	c.path = path
	c.jobs = jobs
	if statErr == nil {
		c.mtime = fi.ModTime()
	}
	return jobs
}

// maybeGenerateDigest runs every minute; it generates at most one digest per
// day, after the configured hour, and only when preferences exist. The hour
// guard and the digest date key both use UTC so the once-per-day invariant
// holds across midnight.
func maybeGenerateDigest(cfgVal *atomic.Value, st *store.Store, jobs func() []domain.Job, hub *events.Hub, now time.Time) error {
	cfg := cfgVal.Load().(config.Config)
	if !cfg.Digest.Auto {
		return nil
	}
	now = now.UTC()
	if now.Hour() < cfg.Digest.Hour {
		return nil
	}
	if st.Digest(now.Format("2006-01-02")) != nil {
		return nil
	}
	prefs := st.Preferences()
	if prefs == nil || prefs.Empty() {
		return nil
	}

	d := rank.BuildDigest(jobs(), prefs, now)
	if err := st.SaveDigest(*d); err != nil {
		return err
	}
	hub.Publish(events.MakeEvent("", events.TypeDigestGenerated, 1, map[string]any{"date": d.Date, "count": len(d.Jobs)}))
	log.Printf("[digest] generated date=%s jobs=%d", d.Date, len(d.Jobs))
	return nil
}
