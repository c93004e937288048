package segmenter

import "regexp"

// Rule is a named header-detection predicate. Rules are evaluated in
// order; the first match classifies the line as a section header.
// The set is pluggable so new document dialects can be supported
// without touching the segmentation control flow.
type Rule struct {
	// Name identifies the rule for logging and tests.
	Name string

	// Pattern matches against a trimmed, non-empty line.
	Pattern *regexp.Regexp
}

// Matches reports whether the line satisfies the rule.
func (r Rule) Matches(line string) bool {
	return r.Pattern.MatchString(line)
}

// Compiled patterns shared between header detection and hierarchy
// tracking.
var (
	articleKeywordRe    = regexp.MustCompile(`(?i)^\s*(ARTICLE|SECTION|CHAPTER|PART)\s+([IVXLC]+|\d+)`)
	numberedClauseRe    = regexp.MustCompile(`^\s*(\d+)\.\s*([A-Z][^.]*\.?)`)
	allCapsRe           = regexp.MustCompile(`^\s*([A-Z][A-Z\s]{3,})\s*$`)
	boilerplateRe       = regexp.MustCompile(`(?i)^\s*(WHEREAS|THEREFORE|NOW THEREFORE)`)
	legalTopicRe        = regexp.MustCompile(`(?i)^\s*(Definitions?|Obligations?|Representations?|Warranties?|Termination|Liability|Confidentiality)`)
	letteredSubclauseRe = regexp.MustCompile(`^\s*\([a-z]\)\s*`)
	numberedSubclauseRe = regexp.MustCompile(`^\s*\([0-9]+\)\s*`)

	// Hierarchy classification patterns. Lettered sub-clauses truncate
	// the stack deeper than numbered top-level clauses; ARTICLE-class
	// headers reset it entirely.
	hierarchyResetRe   = regexp.MustCompile(`(?i)^\s*(ARTICLE|SECTION|CHAPTER)`)
	topLevelNumberedRe = regexp.MustCompile(`^\s*\d+\.`)
)

// DefaultRules returns the legal-document header ruleset in priority
// order.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "article-keyword", Pattern: articleKeywordRe},
		{Name: "numbered-clause", Pattern: numberedClauseRe},
		{Name: "all-caps", Pattern: allCapsRe},
		{Name: "boilerplate", Pattern: boilerplateRe},
		{Name: "legal-topic", Pattern: legalTopicRe},
		{Name: "lettered-subclause", Pattern: letteredSubclauseRe},
		{Name: "numbered-subclause", Pattern: numberedSubclauseRe},
	}
}
