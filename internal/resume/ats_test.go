package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullResume() Resume {
	return Resume{
		PersonalInfo: PersonalInfo{
			FullName: "Asha Rao",
			Email:    "asha@example.com",
			GitHub:   "https://github.com/asharao",
		},
		Summary: "Final-year CS student who shipped three production web apps and led a four-person project team.",
		Education: []Education{
			{ID: "e1", School: "NIT Trichy", Degree: "B.Tech CSE", Year: "2026"},
		},
		Experience: []Experience{
			{ID: "x1", Company: "TechNova", Role: "Intern", Duration: "6 months", Description: "Cut dashboard load time by 40% for 10k users."},
		},
		Projects: []Project{
			{ID: "p1", Name: "TrackIt", Description: "Job tracker used by 200 students.", TechStack: []string{"React"}},
			{ID: "p2", Name: "Notely", Description: "Markdown notes app.", TechStack: []string{"Node.js"}},
		},
		Skills: Skills{
			Technical: []string{"Java", "Python", "React", "SQL"},
			Soft:      []string{"Communication", "Teamwork"},
			Tools:     []string{"Git", "Docker"},
		},
	}
}

func TestEvaluateFullResume(t *testing.T) {
	a := Evaluate(fullResume())
	// Every rule fires: 10 name + 10 email + 10 summary + 10 experience +
	// 10 skills + 10 link + 15 quantified + 10 education.
	assert.Equal(t, 85, a.Score)
	// Only the word-count suggestion remains (summary is under 40 words).
	assert.Equal(t, []string{"Expand summary to 40-120 words (+10)"}, a.Suggestions)
}

func TestEvaluateEmptyResume(t *testing.T) {
	a := Evaluate(Resume{})
	assert.Equal(t, 0, a.Score)
	require.Len(t, a.Suggestions, 3) // capped, highest priority first
	assert.Equal(t, "Add your full name (+10)", a.Suggestions[0])
	assert.Equal(t, "Add a professional email (+10)", a.Suggestions[1])
	assert.Equal(t, "Expand summary to > 50 characters (+10)", a.Suggestions[2])
}

func TestEvaluateQuantifiedImpact(t *testing.T) {
	r := fullResume()
	r.Experience[0].Description = "Helped with the dashboard."
	r.Projects[0].Description = "Job tracker."
	r.Projects[1].Description = "Notes app."

	a := Evaluate(r)
	assert.Equal(t, 70, a.Score)
	assert.Contains(t, a.Suggestions, "Add measurable impact (numbers, %, scale) to descriptions.")

	// A bare "k" scale marker counts.
	r.Projects[0].Description = "Served 10k requests daily."
	assert.Equal(t, 85, Evaluate(r).Score)
}

func TestEvaluateEducationMustBeComplete(t *testing.T) {
	r := fullResume()
	r.Education = append(r.Education, Education{ID: "e2", School: "Online course"})
	// A partially filled entry forfeits the education points.
	assert.Equal(t, 75, Evaluate(r).Score)

	r.Education = nil
	assert.Equal(t, 75, Evaluate(r).Score)
}

func TestEvaluateSkillCountTarget(t *testing.T) {
	r := fullResume()
	r.Skills = Skills{Technical: []string{"Java", "SQL"}}

	a := Evaluate(r)
	assert.Equal(t, 75, a.Score)
	assert.Contains(t, a.Suggestions, "Add more skills (Target 8+, Current: 2).")
}

func TestEvaluateProjectSuggestionPriority(t *testing.T) {
	r := fullResume()
	r.Projects = r.Projects[:1]

	a := Evaluate(r)
	assert.Equal(t, "Add at least 2 projects.", a.Suggestions[0])
}

func TestEvaluateDeterministic(t *testing.T) {
	r := fullResume()
	assert.Equal(t, Evaluate(r), Evaluate(r))
}

func TestEvaluateNoSuggestionsIsEmptyNotNil(t *testing.T) {
	r := fullResume()
	r.Summary = "Final-year computer science student who designed, built and shipped three production web applications, " +
		"led a four-person project team end to end, and mentored juniors in data structures, version control and code review practices every week, " +
		"while maintaining a strong academic record, active open source contributions and a consistent daily problem solving habit."

	a := Evaluate(r)
	assert.NotNil(t, a.Suggestions)
	assert.Empty(t, a.Suggestions)
}
