package extract

// Category pairs a taxonomy category with its canonical keyword list.
// Declaration order is the canonical category order throughout the engine.
type Category struct {
	Name     string
	Keywords []string
}

// Taxonomy is the fixed skill taxonomy scanned against job-description text.
var Taxonomy = []Category{
	{Name: "Core CS", Keywords: []string{"DSA", "OOP", "DBMS", "OS", "Networks", "Data Structures", "Algorithms", "Operating Systems", "Computer Networks"}},
	{Name: "Languages", Keywords: []string{"Java", "Python", "JavaScript", "TypeScript", "C", "C++", "C#", "Go", "Ruby", "Swift", "Kotlin", "Rust"}},
	{Name: "Web", Keywords: []string{"React", "Next.js", "Node.js", "Express", "REST", "GraphQL", "HTML", "CSS", "Tailwind", "Redux", "Vue", "Angular"}},
	{Name: "Data", Keywords: []string{"SQL", "MongoDB", "PostgreSQL", "MySQL", "Redis", "NoSQL", "Firebase", "Cassandra"}},
	{Name: "Cloud/DevOps", Keywords: []string{"AWS", "Azure", "GCP", "Docker", "Kubernetes", "CI/CD", "Linux", "Jenkins", "Terraform"}},
	{Name: "Testing", Keywords: []string{"Selenium", "Cypress", "Playwright", "JUnit", "PyTest", "Jest", "Mocha"}},
}

// Fallback category substituted when nothing in the taxonomy matches, so
// extraction never comes back empty.
const FallbackCategory = "General"

var FallbackSkills = []string{"Communication", "Problem Solving", "Projects"}
