package match

import "strings"

// ParseCommaList splits comma-separated preference text into trimmed,
// lower-cased tokens. Empty or non-list input degrades to an empty slice,
// never an error.
func ParseCommaList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
