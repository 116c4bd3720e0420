package extract

import (
	"log"
	"regexp"
)

var (
	startsWordChar = regexp.MustCompile(`^\w`)
	endsWordChar   = regexp.MustCompile(`\w$`)
)

type compiledKeyword struct {
	keyword string
	pattern *regexp.Regexp
}

type compiledCategory struct {
	name     string
	keywords []compiledKeyword
}

// Extractor scans free text against the taxonomy with precompiled
// case-insensitive, boundary-aware patterns.
type Extractor struct {
	categories []compiledCategory
}

// New compiles the given taxonomy once. A keyword whose pattern fails to
// compile is skipped with a log line; it never aborts extraction.
func New(taxonomy []Category) *Extractor {
	e := &Extractor{categories: make([]compiledCategory, 0, len(taxonomy))}
	for _, cat := range taxonomy {
		cc := compiledCategory{name: cat.Name, keywords: make([]compiledKeyword, 0, len(cat.Keywords))}
		for _, kw := range cat.Keywords {
			re, err := compileKeyword(kw)
			if err != nil {
				log.Printf("[extract] skipping keyword %q: %v", kw, err)
				continue
			}
			cc.keywords = append(cc.keywords, compiledKeyword{keyword: kw, pattern: re})
		}
		e.categories = append(e.categories, cc)
	}
	return e
}

// compileKeyword builds the boundary-aware pattern: \b is anchored on a side
// only when that side of the keyword is a word character, so "C++" matches
// without demanding a word boundary after '+', and "C" cannot fire inside
// "JavaScript".
func compileKeyword(kw string) (*regexp.Regexp, error) {
	pattern := regexp.QuoteMeta(kw)
	if startsWordChar.MatchString(kw) {
		pattern = `\b` + pattern
	}
	if endsWordChar.MatchString(kw) {
		pattern = pattern + `\b`
	}
	return regexp.Compile(`(?i)` + pattern)
}

// Extract returns category -> matched keywords (taxonomy order, not text
// order). A category appears only if at least one keyword matched. When
// nothing matches, the General fallback is substituted: extraction is total
// and never empty.
func (e *Extractor) Extract(text string) map[string][]string {
	out := make(map[string][]string)
	for _, cat := range e.categories {
		var found []string
		for _, ck := range cat.keywords {
			if ck.pattern.MatchString(text) {
				found = append(found, ck.keyword)
			}
		}
		if len(found) > 0 {
			out[cat.name] = found
		}
	}
	if len(out) == 0 {
		out[FallbackCategory] = append([]string(nil), FallbackSkills...)
	}
	return out
}

// Flatten lists every matched skill in canonical category order. The
// fallback category, when present, is the only category, so it trivially
// keeps a stable order too.
func (e *Extractor) Flatten(skills map[string][]string) []string {
	var out []string
	for _, cat := range e.categories {
		out = append(out, skills[cat.name]...)
	}
	out = append(out, skills[FallbackCategory]...)
	return out
}
