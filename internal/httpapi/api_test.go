package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"placement-engine/internal/config"
	"placement-engine/internal/domain"
	"placement-engine/internal/events"
	"placement-engine/internal/extract"
	"placement-engine/internal/prep"
	"placement-engine/internal/store"
)

func intPtr(n int) *int { return &n }

func testJobs() []domain.Job {
	return []domain.Job{
		{ID: "a", Title: "React Developer", Company: "TechNova", Location: "Bengaluru", Mode: "Hybrid", Experience: "Fresher", Skills: []string{"React"}, SalaryRange: "6-9 LPA", PostedDaysAgo: intPtr(1), Source: "LinkedIn"},
		{ID: "b", Title: "Backend Engineer", Company: "CloudKite", Location: "Hyderabad", Mode: "Remote", Experience: "1-3 years", Skills: []string{"Node.js"}, SalaryRange: "10-14 LPA", PostedDaysAgo: intPtr(3), Source: "Naukri"},
		{ID: "c", Title: "Data Analyst", Company: "FinEdge", Location: "Mumbai", Mode: "Hybrid", Experience: "Fresher", Skills: []string{"Python"}, SalaryRange: "5-8 LPA", Source: "Indeed"},
	}
}

func newTestServer(t *testing.T) (*httptest.Server, *store.Store) {
	t.Helper()

	st := store.New(store.NewMemKV())
	gen := prep.NewGeneratorFor(
		extract.New(extract.Taxonomy),
		rand.New(rand.NewSource(1)),
		func() time.Time { return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC) },
		func() string { return "an-test" },
	)

	var cfgVal atomic.Value
	cfgVal.Store(config.Default())

	mux := NewMux(Deps{
		Store:       st,
		Hub:         events.NewHub(),
		Jobs:        testJobs,
		Generator:   gen,
		CfgVal:      &cfgVal,
		UserCfgPath: "unused.yml",
		LoadCfg:     func() (config.Config, error) { return config.Default(), nil },
	})

	srv := httptest.NewServer(Chain(mux, RequestID, Recover))
	t.Cleanup(srv.Close)
	return srv, st
}

func do(t *testing.T, method, url string, body any) (*http.Response, []byte) {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, rd)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, raw
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)
	resp, raw := do(t, http.MethodGet, srv.URL+"/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), `"ok":true`)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestPreferencesFlow(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, raw := do(t, http.MethodGet, srv.URL+"/preferences", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), `"preferences":null`)

	resp, _ = do(t, http.MethodPut, srv.URL+"/preferences", map[string]any{
		"skills":        "react",
		"minMatchScore": 150,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, raw = do(t, http.MethodGet, srv.URL+"/preferences", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Preferences *domain.Preferences `json:"preferences"`
	}
	require.NoError(t, json.Unmarshal(raw, &out))
	require.NotNil(t, out.Preferences)
	assert.Equal(t, 100, out.Preferences.MinMatchScore)

	// Omitting the threshold defaults it, never zeroes it.
	resp, _ = do(t, http.MethodPut, srv.URL+"/preferences", map[string]any{"skills": "sql"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, raw = do(t, http.MethodGet, srv.URL+"/preferences", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &out))
	require.NotNil(t, out.Preferences)
	assert.Equal(t, domain.DefaultMinMatchScore, out.Preferences.MinMatchScore)
}

func TestJobsListSortedByMatch(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, _ := do(t, http.MethodPut, srv.URL+"/preferences", map[string]any{"skills": "react", "minMatchScore": 10})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, raw := do(t, http.MethodGet, srv.URL+"/jobs?sort=match", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var jobs []domain.Job
	require.NoError(t, json.Unmarshal(raw, &jobs))
	require.Len(t, jobs, 3)
	assert.Equal(t, "a", jobs[0].ID)
	assert.Equal(t, 25, jobs[0].MatchScore) // skill overlap + fresh + source

	resp, raw = do(t, http.MethodGet, srv.URL+"/jobs?sort=match&only_matches=true", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &jobs))
	assert.Len(t, jobs, 1)
}

func TestJobSaveAndStatus(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, _ := do(t, http.MethodPost, srv.URL+"/jobs/a/save", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, raw := do(t, http.MethodGet, srv.URL+"/saved", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var saved []domain.Job
	require.NoError(t, json.Unmarshal(raw, &saved))
	require.Len(t, saved, 1)
	assert.Equal(t, "a", saved[0].ID)

	resp, raw = do(t, http.MethodPut, srv.URL+"/jobs/a/status", map[string]string{"status": "nonsense"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "invalid_status")

	resp, _ = do(t, http.MethodPut, srv.URL+"/jobs/a/status", map[string]string{"status": domain.StatusApplied})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, raw = do(t, http.MethodGet, srv.URL+"/jobs/a", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), `"status":"Applied"`)
	assert.Contains(t, string(raw), `"saved":true`)

	resp, raw = do(t, http.MethodGet, srv.URL+"/status/history", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var history []domain.StatusEntry
	require.NoError(t, json.Unmarshal(raw, &history))
	require.Len(t, history, 1)
	assert.Equal(t, "TechNova", history[0].Company)

	resp, _ = do(t, http.MethodGet, srv.URL+"/jobs/zzz", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = do(t, http.MethodDelete, srv.URL+"/jobs/a/save", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, raw = do(t, http.MethodGet, srv.URL+"/saved", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &saved))
	assert.Empty(t, saved)
}

func TestDigestFlow(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, raw := do(t, http.MethodPost, srv.URL+"/digest", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "preferences_required")

	resp, _ = do(t, http.MethodPut, srv.URL+"/preferences", map[string]any{"skills": "react", "minMatchScore": 10})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, raw = do(t, http.MethodPost, srv.URL+"/digest", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var d domain.Digest
	require.NoError(t, json.Unmarshal(raw, &d))
	require.Len(t, d.Jobs, 1)
	assert.Equal(t, "a", d.Jobs[0].ID)

	resp, _ = do(t, http.MethodGet, srv.URL+"/digest?date="+d.Date, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = do(t, http.MethodGet, srv.URL+"/digest?date=1999-01-01", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, raw = do(t, http.MethodGet, srv.URL+"/digest/export?date="+d.Date, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")
	text := string(raw)
	assert.True(t, strings.HasPrefix(text, fmt.Sprintf("Top 1 Jobs For You (%s)", d.Date)))
	assert.Contains(t, text, "React Developer at TechNova")
}

func TestAnalysisFlow(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, raw := do(t, http.MethodPost, srv.URL+"/analyses", map[string]string{
		"company": "Infosys", "role": "SDE", "jdText": "too short",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "jd_too_short")
	assert.Contains(t, string(raw), "Paste full JD for better output.")

	jd := strings.Repeat("We need Java, React and SQL engineers. ", 10)
	resp, raw = do(t, http.MethodPost, srv.URL+"/analyses", map[string]string{
		"company": "Infosys", "role": "SDE", "jdText": jd,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var a domain.Analysis
	require.NoError(t, json.Unmarshal(raw, &a))
	assert.Equal(t, "an-test", a.ID)
	assert.Equal(t, a.BaseScore, a.ReadinessScore)
	require.Contains(t, a.SkillConfidence, "React")

	resp, raw = do(t, http.MethodGet, srv.URL+"/analyses", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []domain.Analysis
	require.NoError(t, json.Unmarshal(raw, &list))
	assert.Len(t, list, 1)

	resp, raw = do(t, http.MethodPost, srv.URL+"/analyses/an-test/skills/toggle", map[string]string{"skill": "React"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var toggled domain.Analysis
	require.NoError(t, json.Unmarshal(raw, &toggled))
	assert.Equal(t, a.ReadinessScore+4, toggled.ReadinessScore)
	assert.Equal(t, a.BaseScore, toggled.BaseScore)
	assert.Equal(t, "2026-09-01T12:00:00Z", toggled.UpdatedAt) // generator clock, not wall time

	resp, raw = do(t, http.MethodPost, srv.URL+"/analyses/an-test/skills/toggle", map[string]string{"skill": "Rust"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "unknown_skill")

	resp, _ = do(t, http.MethodGet, srv.URL+"/analyses/nope", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestResumeScore(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, raw := do(t, http.MethodPost, srv.URL+"/resume/score", map[string]any{
		"personalInfo": map[string]string{"fullName": "Asha Rao", "email": "asha@example.com"},
		"summary":      "Final-year CS student who shipped three production web apps for real users.",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Score       int      `json:"score"`
		Suggestions []string `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, 30, out.Score) // name + email + summary length
	assert.Len(t, out.Suggestions, 3)
	assert.Equal(t, "Add at least 2 projects.", out.Suggestions[0])
}

func TestConfigGetAndPut(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, raw := do(t, http.MethodGet, srv.URL+"/config", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), `"port":38471`)

	bad := config.Default()
	bad.App.Port = 0
	resp, raw = do(t, http.MethodPut, srv.URL+"/config", bad)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "app.port")
}

func TestCheckpointWithoutDatabase(t *testing.T) {
	srv, _ := newTestServer(t)
	resp, raw := do(t, http.MethodPost, srv.URL+"/db/checkpoint", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(raw), "no_database")
}

func TestMethodNotAllowed(t *testing.T) {
	srv, _ := newTestServer(t)
	resp, _ := do(t, http.MethodDelete, srv.URL+"/jobs", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
