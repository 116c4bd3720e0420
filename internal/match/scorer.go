package match

import (
	"strings"

	"placement-engine/internal/domain"
)

// Rule weights for the job match score. Additive from zero, capped at 100.
const (
	weightTitleKeyword  = 25
	weightDescKeyword   = 15
	weightLocation      = 15
	weightMode          = 10
	weightExperience    = 10
	weightSkillOverlap  = 15
	weightFreshPosting  = 5
	weightSourceChannel = 5

	// Postings at most this many days old earn the freshness bonus.
	freshPostingMaxDays = 2

	// The one privileged source channel. The freshness and channel bonuses
	// apply regardless of profile content; only a missing profile zeroes
	// the score.
	privilegedSource = "LinkedIn"
)

// Score evaluates a job against the preference profile. A nil profile means
// "no personalization" and always scores 0.
func Score(job domain.Job, prefs *domain.Preferences) int {
	if prefs == nil {
		return 0
	}

	score := 0
	roleKeywords := ParseCommaList(prefs.RoleKeywords)
	userSkills := ParseCommaList(prefs.Skills)
	title := strings.ToLower(job.Title)
	desc := strings.ToLower(job.Description)

	if len(roleKeywords) > 0 {
		if anyContained(title, roleKeywords) {
			score += weightTitleKeyword
		}
		if anyContained(desc, roleKeywords) {
			score += weightDescKeyword
		}
	}
	if len(prefs.PreferredLocations) > 0 && job.Location != "" && containsExact(prefs.PreferredLocations, job.Location) {
		score += weightLocation
	}
	if len(prefs.PreferredMode) > 0 && job.Mode != "" && containsExact(prefs.PreferredMode, job.Mode) {
		score += weightMode
	}
	if prefs.ExperienceLevel != "" && job.Experience == prefs.ExperienceLevel {
		score += weightExperience
	}
	if len(userSkills) > 0 && skillOverlap(userSkills, job.Skills) {
		score += weightSkillOverlap
	}
	if job.PostedDaysAgo != nil && *job.PostedDaysAgo <= freshPostingMaxDays {
		score += weightFreshPosting
	}
	if job.Source == privilegedSource {
		score += weightSourceChannel
	}

	return domain.ClampScore(score)
}

func anyContained(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

func containsExact(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

// skillOverlap checks pairwise substring containment in either direction,
// so "react" matches "React.js" and "golang" matches "go".
func skillOverlap(userSkills, jobSkills []string) bool {
	for _, js := range jobSkills {
		j := strings.ToLower(js)
		for _, us := range userSkills {
			if strings.Contains(j, us) || strings.Contains(us, j) {
				return true
			}
		}
	}
	return false
}
