package domain

import (
	"encoding/json"
	"strings"
)

const DefaultMinMatchScore = 40

// Preferences is the user-declared matching profile. RoleKeywords and Skills
// are stored as raw comma-separated text, exactly as entered; parsing happens
// at scoring time.
type Preferences struct {
	RoleKeywords       string   `json:"roleKeywords"`
	PreferredLocations []string `json:"preferredLocations"`
	PreferredMode      []string `json:"preferredMode"` // Remote/Hybrid/Onsite
	ExperienceLevel    string   `json:"experienceLevel"`
	Skills             string   `json:"skills"`
	MinMatchScore      int      `json:"minMatchScore"`
}

// UnmarshalJSON applies the profile's one defaulting rule: a missing, null or
// non-numeric minMatchScore decodes to DefaultMinMatchScore rather than 0, so
// an old or hand-edited profile never silently loses its digest threshold. An
// explicit 0 is kept.
func (p *Preferences) UnmarshalJSON(b []byte) error {
	type plain Preferences
	aux := struct {
		*plain
		MinMatchScore json.RawMessage `json:"minMatchScore"`
	}{plain: (*plain)(p)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	p.MinMatchScore = DefaultMinMatchScore
	if len(aux.MinMatchScore) > 0 {
		var n int
		if err := json.Unmarshal(aux.MinMatchScore, &n); err == nil {
			p.MinMatchScore = n
		}
	}
	return nil
}

// Normalize repairs a profile read from storage or a client: nil slices
// become empty, mode values are constrained, and the threshold is clamped
// to [0,100].
func (p Preferences) Normalize() Preferences {
	out := p
	if out.PreferredLocations == nil {
		out.PreferredLocations = []string{}
	}
	var modes []string
	for _, m := range out.PreferredMode {
		switch strings.TrimSpace(m) {
		case "Remote", "Hybrid", "Onsite":
			modes = append(modes, strings.TrimSpace(m))
		}
	}
	if modes == nil {
		modes = []string{}
	}
	out.PreferredMode = modes
	out.MinMatchScore = ClampScore(out.MinMatchScore)
	return out
}

// Empty reports whether the profile carries no matching criteria at all.
func (p Preferences) Empty() bool {
	return p.RoleKeywords == "" && len(p.PreferredLocations) == 0 &&
		len(p.PreferredMode) == 0 && p.ExperienceLevel == "" && p.Skills == ""
}

// ClampScore bounds any score-like value to [0,100].
func ClampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
