package prep

import (
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"placement-engine/internal/domain"
	"placement-engine/internal/extract"
)

// Readiness score rules. Additive from a fixed base, capped at 100.
const (
	readinessBase        = 35
	perCategoryBonus     = 5
	categoryBonusCap     = 30
	companyGivenBonus    = 10
	roleGivenBonus       = 10
	longJDBonus          = 10
	longJDThresholdChars = 800
)

// Generator synthesizes analysis results from job-description text. The
// random source only drives the question shuffle; inject a seeded one for
// reproducible output.
type Generator struct {
	extractor *extract.Extractor
	rng       *rand.Rand
	now       func() time.Time
	newID     func() string
}

// NewGenerator wires a production generator: ambient-seeded shuffle, UTC
// clock, uuid ids.
func NewGenerator(ex *extract.Extractor) *Generator {
	return &Generator{
		extractor: ex,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
}

// NewGeneratorFor is the test constructor: everything non-deterministic is
// injected.
func NewGeneratorFor(ex *extract.Extractor, rng *rand.Rand, now func() time.Time, newID func() string) *Generator {
	return &Generator{extractor: ex, rng: rng, now: now, newID: newID}
}

// Analyze extracts skills from the JD text and composes the full analysis
// record: readiness scores, day plan, round checklist, question set, company
// intel and round mapping. It is pure apart from the question shuffle.
func (g *Generator) Analyze(company, role, jdText string) domain.Analysis {
	skills := g.extractor.Extract(jdText)

	score := readinessBase
	bonus := len(skills) * perCategoryBonus
	if bonus > categoryBonusCap {
		bonus = categoryBonusCap
	}
	score += bonus
	if strings.TrimSpace(company) != "" {
		score += companyGivenBonus
	}
	if strings.TrimSpace(role) != "" {
		score += roleGivenBonus
	}
	if len(jdText) > longJDThresholdChars {
		score += longJDBonus
	}
	score = domain.ClampScore(score)

	confidence := make(map[string]string)
	for _, skill := range g.extractor.Flatten(skills) {
		confidence[skill] = domain.ConfidencePractice
	}

	intel := companyIntel(company)
	now := g.now().Format(time.RFC3339)

	return domain.Analysis{
		ID:              g.newID(),
		CreatedAt:       now,
		UpdatedAt:       now,
		Company:         orDefault(company, "Unknown Company"),
		Role:            orDefault(role, "General Role"),
		JDText:          jdText,
		ExtractedSkills: skills,
		Plan:            buildPlan(skills),
		Checklist:       buildChecklist(skills),
		Questions:       g.buildQuestions(skills),
		BaseScore:       score,
		ReadinessScore:  score,
		SkillConfidence: confidence,
		CompanyIntel:    intel,
		RoundMapping:    roundMapping(intel),
	}
}

// buildQuestions gathers question-bank entries for every matched skill,
// shuffles (Fisher-Yates), dedupes first-occurrence-wins, tops up with the
// default set when short, and truncates to exactly questionCount.
func (g *Generator) buildQuestions(skills map[string][]string) []string {
	var questions []string
	for _, skill := range g.extractor.Flatten(skills) {
		for key, qs := range interviewQuestions {
			if strings.EqualFold(key, skill) {
				questions = append(questions, qs...)
				break
			}
		}
	}

	g.rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})

	questions = dedupe(questions)
	if len(questions) < questionCount {
		questions = dedupe(append(questions, defaultQuestions...))
	}
	if len(questions) > questionCount {
		questions = questions[:questionCount]
	}
	return questions
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, q := range in {
		if seen[q] {
			continue
		}
		seen[q] = true
		out = append(out, q)
	}
	return out
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
