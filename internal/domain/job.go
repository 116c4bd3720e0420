package domain

// Job is one record from the external read-only catalog. The engine never
// mutates the catalog; MatchScore is attached to working copies only.
type Job struct {
	ID            string   `json:"id" yaml:"id"`
	Title         string   `json:"title" yaml:"title"`
	Company       string   `json:"company" yaml:"company"`
	Description   string   `json:"description" yaml:"description"`
	Location      string   `json:"location" yaml:"location"`
	Mode          string   `json:"mode" yaml:"mode"` // Remote/Hybrid/Onsite
	Experience    string   `json:"experience" yaml:"experience"`
	Skills        []string `json:"skills" yaml:"skills"`
	SalaryRange   string   `json:"salaryRange" yaml:"salary_range"`
	PostedDaysAgo *int     `json:"postedDaysAgo,omitempty" yaml:"posted_days_ago"`
	Source        string   `json:"source" yaml:"source"`
	ApplyURL      string   `json:"applyUrl,omitempty" yaml:"apply_url"`

	// Computed per scoring pass, not part of the record's identity.
	MatchScore int `json:"matchScore" yaml:"-"`
}

// Application status values. Unknown ids report StatusNotApplied.
const (
	StatusNotApplied = "Not Applied"
	StatusApplied    = "Applied"
	StatusRejected   = "Rejected"
	StatusSelected   = "Selected"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusNotApplied, StatusApplied, StatusRejected, StatusSelected:
		return true
	}
	return false
}

// StatusEntry is one line of the capped status history log.
type StatusEntry struct {
	Title   string `json:"title"`
	Company string `json:"company"`
	Status  string `json:"status"`
	Date    string `json:"date"` // RFC3339
}
