package store

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"placement-engine/internal/domain"
)

// Storage keys. Digest keys carry the calendar date so yesterday's digest
// naturally expires.
const (
	keyPreferences   = "preferences"
	keySavedJobs     = "saved_jobs"
	keyStatusMap     = "job_status"
	keyStatusHistory = "status_history"
	keyAnalyses      = "analysis_history"
	digestKeyPrefix  = "digest:"
)

const statusHistoryCap = 10

// Store layers typed, replace-whole-value operations over a KV. Read paths
// degrade: malformed stored JSON is logged and treated as absent/default,
// never returned as an error.
type Store struct {
	kv KV
}

func New(kv KV) *Store {
	return &Store{kv: kv}
}

// readJSON unmarshals the value at key into out. Returns false when the key
// is absent or the payload is corrupt.
func (s *Store) readJSON(key string, out any) bool {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		log.Printf("[store] read %s: %v", key, err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		log.Printf("[store] corrupt value at %s, using defaults: %v", key, err)
		return false
	}
	return true
}

func (s *Store) writeJSON(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return s.kv.Set(key, string(b))
}

// Preferences returns the stored profile, normalized, or nil when none has
// been saved. Nil is a valid "no personalization" state.
func (s *Store) Preferences() *domain.Preferences {
	var p domain.Preferences
	if !s.readJSON(keyPreferences, &p) {
		return nil
	}
	p = p.Normalize()
	return &p
}

func (s *Store) SavePreferences(p domain.Preferences) error {
	return s.writeJSON(keyPreferences, p.Normalize())
}

func (s *Store) SavedIDs() []string {
	var ids []string
	if !s.readJSON(keySavedJobs, &ids) {
		return []string{}
	}
	return ids
}

func (s *Store) SaveJob(id string) error {
	ids := s.SavedIDs()
	for _, x := range ids {
		if x == id {
			return nil
		}
	}
	return s.writeJSON(keySavedJobs, append(ids, id))
}

func (s *Store) UnsaveJob(id string) error {
	ids := s.SavedIDs()
	kept := ids[:0]
	for _, x := range ids {
		if x != id {
			kept = append(kept, x)
		}
	}
	return s.writeJSON(keySavedJobs, kept)
}

func (s *Store) IsSaved(id string) bool {
	for _, x := range s.SavedIDs() {
		if x == id {
			return true
		}
	}
	return false
}

// Status returns the application status for a job id, defaulting to
// "Not Applied".
func (s *Store) Status(id string) string {
	m := s.statusMap()
	if st, ok := m[id]; ok {
		return st
	}
	return domain.StatusNotApplied
}

func (s *Store) statusMap() map[string]string {
	m := map[string]string{}
	s.readJSON(keyStatusMap, &m)
	return m
}

// SetStatus updates the status map and prepends a history entry, capped at
// statusHistoryCap, newest first. Both writes are whole-value replaces.
func (s *Store) SetStatus(job domain.Job, status string) error {
	m := s.statusMap()
	m[job.ID] = status
	if err := s.writeJSON(keyStatusMap, m); err != nil {
		return err
	}

	history := s.StatusHistory()
	entry := domain.StatusEntry{
		Title:   job.Title,
		Company: job.Company,
		Status:  status,
		Date:    time.Now().UTC().Format(time.RFC3339),
	}
	history = append([]domain.StatusEntry{entry}, history...)
	if len(history) > statusHistoryCap {
		history = history[:statusHistoryCap]
	}
	return s.writeJSON(keyStatusHistory, history)
}

func (s *Store) StatusHistory() []domain.StatusEntry {
	var h []domain.StatusEntry
	if !s.readJSON(keyStatusHistory, &h) {
		return []domain.StatusEntry{}
	}
	return h
}

// Digest returns the stored digest for the given date, or nil.
func (s *Store) Digest(date string) *domain.Digest {
	var d domain.Digest
	if !s.readJSON(digestKeyPrefix+date, &d) {
		return nil
	}
	return &d
}

func (s *Store) SaveDigest(d domain.Digest) error {
	return s.writeJSON(digestKeyPrefix+d.Date, d)
}

// Analyses returns the analysis history, newest first.
func (s *Store) Analyses() []domain.Analysis {
	var list []domain.Analysis
	if !s.readJSON(keyAnalyses, &list) {
		return []domain.Analysis{}
	}
	return list
}

func (s *Store) AnalysisByID(id string) *domain.Analysis {
	for _, a := range s.Analyses() {
		if a.ID == id {
			return &a
		}
	}
	return nil
}

// AppendAnalysis prepends a new analysis to the history.
func (s *Store) AppendAnalysis(a domain.Analysis) error {
	return s.writeJSON(keyAnalyses, append([]domain.Analysis{a}, s.Analyses()...))
}

// ReplaceAnalysis swaps the whole item with a matching id.
func (s *Store) ReplaceAnalysis(a domain.Analysis) error {
	list := s.Analyses()
	found := false
	for i := range list {
		if list[i].ID == a.ID {
			list[i] = a
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("analysis %s not found", a.ID)
	}
	return s.writeJSON(keyAnalyses, list)
}
