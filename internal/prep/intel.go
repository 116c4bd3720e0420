package prep

import (
	"strings"

	"placement-engine/internal/domain"
)

var knownEnterprises = []string{
	"Amazon", "Google", "Microsoft", "TCS", "Infosys", "Wipro", "Accenture",
	"Deloitte", "Capgemini", "IBM", "Oracle", "Cisco", "Intel", "Samsung", "HCL", "Cognizant",
}

// companyIntel classifies a company as Enterprise or Startup by substring
// match against the known-enterprise list. Empty company means no intel.
func companyIntel(company string) *domain.CompanyIntel {
	name := strings.TrimSpace(company)
	if name == "" {
		return nil
	}

	lower := strings.ToLower(name)
	for _, e := range knownEnterprises {
		if strings.Contains(lower, strings.ToLower(e)) {
			return &domain.CompanyIntel{
				Size:     "Enterprise",
				Industry: "Technology & Services",
				Focus:    "Strong focus on DSA, Problem Solving, and Core Fundamentals (OS/DBMS).",
			}
		}
	}
	return &domain.CompanyIntel{
		Size:     "Startup",
		Industry: "Technology / Product",
		Focus:    "Practical application, Speed of delivery, and Tech Stack depth.",
	}
}

// roundMapping returns the fixed interview round template for the company
// class: 4 rounds for Enterprise, 3 for Startup, none without intel.
func roundMapping(intel *domain.CompanyIntel) []domain.InterviewRound {
	if intel == nil {
		return []domain.InterviewRound{}
	}

	if intel.Size == "Enterprise" {
		return []domain.InterviewRound{
			{Round: "Round 1: Online Assessment", Desc: "Aptitude + 2-3 DSA Coding questions.", WhyMatters: "Filters candidates based on raw problem-solving speed."},
			{Round: "Round 2: Technical Interview 1", Desc: "Live Coding (DSA) + Core CS (DBMS/OS).", WhyMatters: "Validates your computer science fundamentals."},
			{Round: "Round 3: Technical Interview 2", Desc: "Project Deep Dive + System Design Basics.", WhyMatters: "Tests your ability to build and explain software."},
			{Round: "Round 4: HR / Managerial", Desc: "Behavioral fit, willingness to relocate, stability.", WhyMatters: "Ensures you fit the company culture long-term."},
		}
	}
	return []domain.InterviewRound{
		{Round: "Round 1: Screening / Task", Desc: "Resume screening or Take-home coding assignment.", WhyMatters: "Checks if you can actually write code that runs."},
		{Round: "Round 2: Technical Discussion", Desc: "Stack-specific questions (React/Node) + Live Debugging.", WhyMatters: "Assesses immediate productivity and stack knowledge."},
		{Round: "Round 3: Founder / Culture", Desc: "Vision alignment, ownership, and adaptability.", WhyMatters: "Startups need people who care about the product."},
	}
}
