// Package segmenter turns extracted pages into a flat list of document
// sections. Headers are recognised by an ordered ruleset and each
// section carries the hierarchy path of headers that led to it.
package segmenter

import (
	"fmt"
	"strings"

	"github.com/akashhguptaa/Legal-ChatBot/internal/core/domain"
	"github.com/akashhguptaa/Legal-ChatBot/internal/tokenizer"
)

// Segmenter splits page text into titled sections.
type Segmenter struct {
	rules []Rule
	count func(string) int
}

// Option customises a Segmenter.
type Option func(*Segmenter)

// WithRules replaces the default header ruleset.
func WithRules(rules []Rule) Option {
	return func(s *Segmenter) {
		if len(rules) > 0 {
			s.rules = rules
		}
	}
}

// WithTokenCounter replaces the token estimator used for section
// token counts.
func WithTokenCounter(count func(string) int) Option {
	return func(s *Segmenter) {
		if count != nil {
			s.count = count
		}
	}
}

// New creates a Segmenter with the default legal ruleset.
func New(opts ...Option) *Segmenter {
	s := &Segmenter{
		rules: DefaultRules(),
		count: tokenizer.Count,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IsHeader reports whether a line matches any header rule. Lines
// shorter than three characters never qualify.
func (s *Segmenter) IsHeader(line string) bool {
	line = strings.TrimSpace(line)
	if len(line) < 3 {
		return false
	}
	for _, rule := range s.rules {
		if rule.Matches(line) {
			return true
		}
	}
	return false
}

// FlagSectionStarts marks each page whose first non-empty line is a
// recognised header. The flag is advisory metadata on the page record.
func (s *Segmenter) FlagSectionStarts(pages []domain.Page) {
	for i := range pages {
		for _, line := range strings.Split(pages[i].Text, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			pages[i].SectionStart = s.IsHeader(line)
			break
		}
	}
}

// Segment walks the pages line by line and produces sections in
// document order. A header line closes the previous section and opens
// a new one; header lines with no following body are suppressed.
// Content that precedes the first header is emitted under a
// placeholder title naming the page it starts on.
func (s *Segmenter) Segment(pages []domain.Page) []domain.Section {
	var (
		sections  []domain.Section
		hierarchy []string
		body      []string

		title     string
		startPage int
		endPage   int
	)

	flush := func() {
		if len(body) == 0 {
			return
		}
		name := title
		if name == "" {
			name = fmt.Sprintf("Section starting page %d", startPage)
		}
		content := strings.Join(body, " ")
		sections = append(sections, domain.Section{
			Title:      name,
			Hierarchy:  append([]string(nil), hierarchy...),
			Content:    content,
			TokenCount: s.count(content),
			PageStart:  startPage,
			PageEnd:    endPage,
		})
		body = nil
	}

	for _, page := range pages {
		for _, raw := range strings.Split(page.Text, "\n") {
			line := strings.TrimSpace(raw)
			if line == "" {
				continue
			}
			if s.IsHeader(line) {
				flush()
				hierarchy = advance(hierarchy, line)
				title = line
				startPage = page.Number
				continue
			}
			if len(body) == 0 && title == "" {
				startPage = page.Number
			}
			endPage = page.Number
			body = append(body, line)
		}
	}
	flush()

	return sections
}

// advance updates the hierarchy stack for a new header. ARTICLE-class
// headers reset the stack, numbered clauses sit at depth two, lettered
// sub-clauses at depth three, and anything else nests one level
// deeper.
func advance(stack []string, header string) []string {
	switch {
	case hierarchyResetRe.MatchString(header):
		return []string{header}
	case topLevelNumberedRe.MatchString(header):
		return append(stack[:min(1, len(stack))], header)
	case letteredSubclauseRe.MatchString(header):
		return append(stack[:min(2, len(stack))], header)
	default:
		return append(stack, header)
	}
}
