package prep

import "placement-engine/internal/domain"

// buildChecklist returns the fixed 4-round preparation checklist, with extra
// items appended when Web or Data skills were extracted. Rounds stay ordered.
func buildChecklist(skills map[string][]string) []domain.ChecklistRound {
	checklist := []domain.ChecklistRound{
		{Round: "Round 1: Aptitude / Basics", Items: []string{
			"Quantitative Aptitude (Time & Work, Percentages)",
			"Logical Reasoning (Series, Puzzles)",
			"Verbal Ability (Reading Comprehension)",
			"Prepare a 1-minute self-introduction",
			"Be ready to explain resume projects briefly",
			"Check company background and values",
			"Review job description thoroughly",
		}},
		{Round: "Round 2: DSA / Core CS", Items: []string{
			"Review Array and String manipulation problems",
			"Practice Linked List and Tree traversals",
			"Understand Time and Space Complexity (Big O)",
			"Revise OOP concepts (Polymorphism, Inheritance)",
			"SQL queries (Joins, Group By)",
			"Operating Systems basics (Process, Threads)",
			"DBMS Normalization and ACID properties",
		}},
		{Round: "Round 3: Tech Interview", Items: []string{
			"Deep dive into final year project architecture",
			"Be prepared to code a simple problem on paper/whiteboard",
			"System Design basics (Scalability, Load Balancing)",
			"Explain challenges faced in projects",
			"Why did you choose this tech stack?",
			"Code optimization discussion",
		}},
		{Round: "Round 4: Managerial / HR", Items: []string{
			"STAR method for behavioral questions",
			"Why this role specifically?",
			"Salary negotiation preparation",
			"Questions to ask the interviewer",
			"Availability and relocation preferences",
			"Explain study gaps (if any)",
		}},
	}

	if _, ok := skills["Web"]; ok {
		checklist[2].Items = append(checklist[2].Items,
			"Frontend/Backend integration flow",
			"API error handling strategies")
	}
	if _, ok := skills["Data"]; ok {
		checklist[1].Items = append(checklist[1].Items, "Complex SQL Query writing")
		checklist[2].Items = append(checklist[2].Items, "Database Schema Design discussion")
	}
	return checklist
}
