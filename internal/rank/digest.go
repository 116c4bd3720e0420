package rank

import (
	"sort"
	"time"

	"placement-engine/internal/domain"
	"placement-engine/internal/match"
)

const (
	// DigestSize caps the daily digest.
	DigestSize = 10

	// The digest comparator treats undated postings as day 0, unlike the
	// list pipeline which pushes them last.
	missingDaysDigest = 0
)

// BuildDigest assembles the per-day top-matches snapshot: jobs at or above
// the profile threshold, stable-sorted by match score desc then posting
// recency asc, capped at DigestSize. No profile means no digest (nil).
// Zero qualifying jobs yields a valid empty digest, not an error.
func BuildDigest(jobs []domain.Job, prefs *domain.Preferences, now time.Time) *domain.Digest {
	if prefs == nil {
		return nil
	}

	var candidates []domain.Job
	for _, j := range jobs {
		j.MatchScore = match.Score(j, prefs)
		if j.MatchScore >= prefs.MinMatchScore {
			candidates = append(candidates, j)
		}
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		if candidates[a].MatchScore != candidates[b].MatchScore {
			return candidates[a].MatchScore > candidates[b].MatchScore
		}
		return daysOr(candidates[a].PostedDaysAgo, missingDaysDigest) < daysOr(candidates[b].PostedDaysAgo, missingDaysDigest)
	})

	if len(candidates) > DigestSize {
		candidates = candidates[:DigestSize]
	}
	if candidates == nil {
		candidates = []domain.Job{}
	}

	return &domain.Digest{
		Date:        now.UTC().Format("2006-01-02"),
		Jobs:        candidates,
		GeneratedAt: now.UTC().Format(time.RFC3339),
	}
}
