package main

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"placement-engine/internal/config"
	"placement-engine/internal/domain"
	"placement-engine/internal/events"
	"placement-engine/internal/store"
)

func digestFixture(auto bool, hour int) (*atomic.Value, *store.Store, func() []domain.Job, *events.Hub) {
	var cfgVal atomic.Value
	cfg := config.Default()
	cfg.Digest.Auto = auto
	cfg.Digest.Hour = hour
	cfgVal.Store(cfg)

	st := store.New(store.NewMemKV())
	jobs := func() []domain.Job {
		return []domain.Job{{ID: "a", Title: "React Developer", Skills: []string{"React"}}}
	}
	return &cfgVal, st, jobs, events.NewHub()
}

func TestMaybeGenerateDigestHonorsHourInUTC(t *testing.T) {
	cfgVal, st, jobs, hub := digestFixture(true, 9)
	require.NoError(t, st.SavePreferences(domain.Preferences{Skills: "react", MinMatchScore: 10}))

	// 08:30 UTC: too early, regardless of what any local zone says.
	early := time.Date(2026, 9, 1, 8, 30, 0, 0, time.UTC)
	require.NoError(t, maybeGenerateDigest(cfgVal, st, jobs, hub, early))
	assert.Nil(t, st.Digest("2026-09-01"))

	at := time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC)
	require.NoError(t, maybeGenerateDigest(cfgVal, st, jobs, hub, at))
	d := st.Digest("2026-09-01")
	require.NotNil(t, d)
	require.Len(t, d.Jobs, 1)

	// Same day again: no regeneration.
	later := time.Date(2026, 9, 1, 17, 0, 0, 0, time.UTC)
	require.NoError(t, maybeGenerateDigest(cfgVal, st, jobs, hub, later))
	assert.Equal(t, d.GeneratedAt, st.Digest("2026-09-01").GeneratedAt)
}

func TestMaybeGenerateDigestGuards(t *testing.T) {
	at := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	// Auto off: nothing happens.
	cfgVal, st, jobs, hub := digestFixture(false, 9)
	require.NoError(t, st.SavePreferences(domain.Preferences{Skills: "react", MinMatchScore: 10}))
	require.NoError(t, maybeGenerateDigest(cfgVal, st, jobs, hub, at))
	assert.Nil(t, st.Digest("2026-09-01"))

	// No preferences: nothing happens.
	cfgVal, st, jobs, hub = digestFixture(true, 9)
	require.NoError(t, maybeGenerateDigest(cfgVal, st, jobs, hub, at))
	assert.Nil(t, st.Digest("2026-09-01"))
}

func TestCatalogCacheMissingFile(t *testing.T) {
	c := &catalogCache{}

	// Missing files keep the last good (here: empty) snapshot.
	assert.Empty(t, c.get("does/not/exist.yml"))
}
