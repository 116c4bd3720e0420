package domain

// Digest is the per-day "top matches" snapshot. Jobs carry the match score
// they had when the digest was generated.
type Digest struct {
	Date        string `json:"date"` // YYYY-MM-DD
	Jobs        []Job  `json:"jobs"`
	GeneratedAt string `json:"generatedAt"` // RFC3339
}
