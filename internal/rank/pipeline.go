package rank

import (
	"sort"
	"strings"

	"placement-engine/internal/domain"
	"placement-engine/internal/match"
)

type SortMode string

const (
	SortLatest SortMode = "latest"
	SortMatch  SortMode = "match"
	SortSalary SortMode = "salary"
)

// Explicit defaults for missing fields, instead of inline fallbacks.
// "latest" pushes undated postings to the end; the digest comparator
// (see digest.go) deliberately treats missing as 0 instead.
const missingDaysSortsLast = 99

// Filters are the optional exact-match and keyword constraints applied
// before sorting. Zero values mean "no constraint".
type Filters struct {
	Keyword     string
	Location    string
	Mode        string
	Experience  string
	Source      string
	Status      string
	OnlyMatches bool
}

// Apply runs the full pipeline: keyword filter, exact-match filters, score
// attachment, optional threshold filter, then a stable sort. The input slice
// is never mutated; scores are attached to copies. statusOf resolves a job's
// application status and may be nil when no status filter is set.
func Apply(jobs []domain.Job, f Filters, mode SortMode, prefs *domain.Preferences, statusOf func(id string) string) []domain.Job {
	list := make([]domain.Job, 0, len(jobs))
	kw := strings.ToLower(strings.TrimSpace(f.Keyword))

	for _, j := range jobs {
		if kw != "" &&
			!strings.Contains(strings.ToLower(j.Title), kw) &&
			!strings.Contains(strings.ToLower(j.Company), kw) {
			continue
		}
		if f.Location != "" && j.Location != f.Location {
			continue
		}
		if f.Mode != "" && j.Mode != f.Mode {
			continue
		}
		if f.Experience != "" && j.Experience != f.Experience {
			continue
		}
		if f.Source != "" && j.Source != f.Source {
			continue
		}
		if f.Status != "" {
			status := domain.StatusNotApplied
			if statusOf != nil {
				status = statusOf(j.ID)
			}
			if status != f.Status {
				continue
			}
		}
		list = append(list, j)
	}

	for i := range list {
		list[i].MatchScore = match.Score(list[i], prefs)
	}

	if f.OnlyMatches && prefs != nil {
		kept := list[:0]
		for _, j := range list {
			if j.MatchScore >= prefs.MinMatchScore {
				kept = append(kept, j)
			}
		}
		list = kept
	}

	sortJobs(list, mode)
	return list
}

// sortJobs is stable: jobs with equal keys keep their catalog order.
func sortJobs(list []domain.Job, mode SortMode) {
	switch mode {
	case SortMatch:
		sort.SliceStable(list, func(a, b int) bool {
			return list[a].MatchScore > list[b].MatchScore
		})
	case SortSalary:
		sort.SliceStable(list, func(a, b int) bool {
			return match.SalaryNumber(list[a].SalaryRange) > match.SalaryNumber(list[b].SalaryRange)
		})
	default: // SortLatest
		sort.SliceStable(list, func(a, b int) bool {
			return daysOr(list[a].PostedDaysAgo, missingDaysSortsLast) < daysOr(list[b].PostedDaysAgo, missingDaysSortsLast)
		})
	}
}

func daysOr(d *int, fallback int) int {
	if d == nil {
		return fallback
	}
	return *d
}
