package prep

import (
	"fmt"
	"time"

	"placement-engine/internal/domain"
)

// Readiness delta applied when a skill flips between practice and know.
const toggleDelta = 4

// ToggleSkill flips one skill's confidence state on the analysis and moves
// the readiness score by the bounded delta, clamped to [0,100]. The base
// score never changes. Unknown skills are an error; callers treat it as
// validation feedback. UpdatedAt is stamped from at.
func ToggleSkill(a *domain.Analysis, skill string, at time.Time) error {
	if a.SkillConfidence == nil {
		return fmt.Errorf("analysis %s has no skill map", a.ID)
	}
	current, ok := a.SkillConfidence[skill]
	if !ok {
		return fmt.Errorf("unknown skill %q", skill)
	}

	if current == domain.ConfidenceKnow {
		a.SkillConfidence[skill] = domain.ConfidencePractice
		a.ReadinessScore = domain.ClampScore(a.ReadinessScore - toggleDelta)
	} else {
		a.SkillConfidence[skill] = domain.ConfidenceKnow
		a.ReadinessScore = domain.ClampScore(a.ReadinessScore + toggleDelta)
	}
	a.UpdatedAt = at.UTC().Format(time.RFC3339)
	return nil
}

// ToggleSkill on the generator uses its injected clock, keeping analysis
// timestamps deterministic wherever the generator's are.
func (g *Generator) ToggleSkill(a *domain.Analysis, skill string) error {
	return ToggleSkill(a, skill, g.now())
}
