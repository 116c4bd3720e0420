package domain

// Skill confidence states. Every extracted skill starts at ConfidencePractice.
const (
	ConfidenceKnow     = "know"
	ConfidencePractice = "practice"
)

type PlanDay struct {
	Day   string `json:"day"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

type ChecklistRound struct {
	Round string   `json:"round"`
	Items []string `json:"items"`
}

type CompanyIntel struct {
	Size     string `json:"size"` // Enterprise or Startup
	Industry string `json:"industry"`
	Focus    string `json:"focus"`
}

type InterviewRound struct {
	Round      string `json:"round"`
	Desc       string `json:"desc"`
	WhyMatters string `json:"whyMatters"`
}

// Analysis is one persisted job-description analysis. BaseScore is fixed at
// creation; ReadinessScore moves only through skill confidence toggles.
type Analysis struct {
	ID              string              `json:"id"`
	CreatedAt       string              `json:"createdAt"`
	UpdatedAt       string              `json:"updatedAt"`
	Company         string              `json:"company"`
	Role            string              `json:"role"`
	JDText          string              `json:"jdText"`
	ExtractedSkills map[string][]string `json:"extractedSkills"`
	Plan            []PlanDay           `json:"plan"`
	Checklist       []ChecklistRound    `json:"checklist"`
	Questions       []string            `json:"questions"`
	BaseScore       int                 `json:"baseScore"`
	ReadinessScore  int                 `json:"readinessScore"`
	SkillConfidence map[string]string   `json:"skillConfidenceMap"`
	CompanyIntel    *CompanyIntel       `json:"companyIntel,omitempty"`
	RoundMapping    []InterviewRound    `json:"roundMapping"`
}
