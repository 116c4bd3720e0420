package resume

import (
	"fmt"
	"regexp"
	"strings"
)

// ATS rule weights. Additive from zero, capped at 100.
const (
	weightName          = 10
	weightEmail         = 10
	weightSummaryLength = 10
	weightExperience    = 10
	weightSkillCount    = 10
	weightProfileLink   = 10
	weightQuantified    = 15
	weightEducation     = 10

	summaryMinChars  = 50
	summaryMinWords  = 40
	skillCountTarget = 8
	minProjects      = 2

	// At most this many suggestions are returned, highest priority first.
	maxSuggestions = 3
)

// Digits, a percent sign, or a bare "k" (as in 10k) count as measurable
// impact in a description.
var quantified = regexp.MustCompile(`(?i)\d+|%|k\b`)

// Evaluate scores a resume against the fixed ATS rule set and collects
// improvement suggestions. Deterministic; equal input gives equal output.
func Evaluate(r Resume) Analysis {
	score := 0
	var suggestions []string

	if strings.TrimSpace(r.PersonalInfo.FullName) != "" {
		score += weightName
	} else {
		suggestions = append(suggestions, "Add your full name (+10)")
	}
	if strings.TrimSpace(r.PersonalInfo.Email) != "" {
		score += weightEmail
	} else {
		suggestions = append(suggestions, "Add a professional email (+10)")
	}

	summary := strings.TrimSpace(r.Summary)
	if len(summary) > summaryMinChars {
		score += weightSummaryLength
	} else {
		suggestions = append(suggestions, "Expand summary to > 50 characters (+10)")
	}

	if len(r.Experience) >= 1 {
		score += weightExperience
	}

	skillCount := len(r.Skills.Technical) + len(r.Skills.Soft) + len(r.Skills.Tools)
	if skillCount >= skillCountTarget {
		score += weightSkillCount
	}

	if strings.TrimSpace(r.PersonalInfo.LinkedIn) != "" || strings.TrimSpace(r.PersonalInfo.GitHub) != "" {
		score += weightProfileLink
	}

	hasNumbers := false
	for _, e := range r.Experience {
		if quantified.MatchString(e.Description) {
			hasNumbers = true
			break
		}
	}
	if !hasNumbers {
		for _, p := range r.Projects {
			if quantified.MatchString(p.Description) {
				hasNumbers = true
				break
			}
		}
	}
	if hasNumbers {
		score += weightQuantified
	}

	if educationComplete(r.Education) {
		score += weightEducation
	}

	// Improvement suggestions in strict priority order, appended after the
	// missing-field ones collected above.
	if len(r.Projects) < minProjects {
		suggestions = append(suggestions, "Add at least 2 projects.")
	}
	if !hasNumbers {
		suggestions = append(suggestions, "Add measurable impact (numbers, %, scale) to descriptions.")
	}
	if len(strings.Fields(summary)) < summaryMinWords {
		suggestions = append(suggestions, "Expand summary to 40-120 words (+10)")
	}
	if skillCount < skillCountTarget {
		suggestions = append(suggestions, fmt.Sprintf("Add more skills (Target 8+, Current: %d).", skillCount))
	}
	if len(r.Experience) == 0 {
		suggestions = append(suggestions, "Add internship or work experience.")
	}

	if score > 100 {
		score = 100
	}
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	if suggestions == nil {
		suggestions = []string{}
	}

	return Analysis{Score: score, Suggestions: suggestions}
}

// educationComplete reports at least one entry with school, degree and year
// all filled, and no partially filled entries.
func educationComplete(entries []Education) bool {
	if len(entries) == 0 {
		return false
	}
	for _, e := range entries {
		if strings.TrimSpace(e.School) == "" ||
			strings.TrimSpace(e.Degree) == "" ||
			strings.TrimSpace(e.Year) == "" {
			return false
		}
	}
	return true
}
