package prep

import "placement-engine/internal/domain"

// buildPlan returns the fixed 5-day preparation plan, with two entries
// textually augmented when Web or Core CS skills were extracted.
func buildPlan(skills map[string][]string) []domain.PlanDay {
	plan := []domain.PlanDay{
		{Day: "Day 1-2", Title: "Foundations & Basics", Desc: "Brush up on Aptitude, Logic, and Core CS/Language syntax."},
		{Day: "Day 3-4", Title: "DSA & Problem Solving", Desc: "Solve 5-10 problems daily. Focus on Arrays, Strings, and Logic."},
		{Day: "Day 5", Title: "Project Deep Dive", Desc: "Review your resume projects. Be ready to draw architecture."},
		{Day: "Day 6", Title: "Mock & Behavioral", Desc: "Practice speaking answers aloud. Star method for HR questions."},
		{Day: "Day 7", Title: "Revision & Calm", Desc: "Review cheat sheets. Rest well before the big day."},
	}

	if _, ok := skills["Web"]; ok {
		plan[0].Desc += " Focus on HTML/CSS/JS fundamentals."
		plan[2].Desc += " Ensure you can explain the flow of your web app."
	}
	if _, ok := skills["Core CS"]; ok {
		plan[1].Desc += " Revise OS/DBMS concepts deeply."
	}
	return plan
}
