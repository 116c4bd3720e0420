package httpapi

import (
	"database/sql"
	"sync/atomic"

	"placement-engine/internal/config"
	"placement-engine/internal/domain"
	"placement-engine/internal/events"
	"placement-engine/internal/prep"
	"placement-engine/internal/store"
)

type Deps struct {
	Store *store.Store
	Hub   *events.Hub

	// Catalog snapshot accessor; the handler never mutates what it returns.
	Jobs func() []domain.Job

	Generator *prep.Generator

	// Hot config
	CfgVal      *atomic.Value // stores config.Config
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	// Optional: present only with the sqlite backend (checkpoint endpoint).
	DB *sql.DB

	// Shutdown endpoint; registered only when Stop is set.
	ShutdownToken string
	Stop          func()
}
