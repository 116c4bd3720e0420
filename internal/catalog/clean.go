package catalog

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// CleanText collapses whitespace (including NBSP) and trims.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// StripHTML extracts plain text from descriptions that arrive as HTML
// fragments (pasted JDs, scraped boards). Non-HTML text passes through
// unchanged; on parse failure the input is returned as-is.
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<>") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return doc.Text()
}

// NormalizeMode maps free-text work modes onto the three canonical values.
// Unrecognized input is preserved so exact-match filters stay honest.
func NormalizeMode(mode string) string {
	m := strings.ToLower(strings.TrimSpace(mode))
	switch {
	case strings.Contains(m, "remote"):
		return "Remote"
	case strings.Contains(m, "hybrid"):
		return "Hybrid"
	case strings.Contains(m, "on-site"), strings.Contains(m, "onsite"), strings.Contains(m, "on site"):
		return "Onsite"
	case m == "":
		return ""
	default:
		return mode
	}
}
