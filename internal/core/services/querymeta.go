package services

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/akashhguptaa/Legal-ChatBot/internal/core/domain"
)

// Query metadata extraction: light keyword and pattern matching that
// turns the raw query into boosting intent and candidate pre-filters.

var (
	pageRefRe    = regexp.MustCompile(`(?i)\bpage\s+(\d+)\b`)
	sectionRefRe = regexp.MustCompile(`(?i)\bsection\s+(\d+)\b`)
)

var (
	definitionKeywords = []string{"definition", "define", "meaning", "means", "what is", "what does"}
	obligationCues     = []string{"obligation", "shall", "must", "required", "duty", "responsibilit"}
)

// ExtractIntent derives boosting signals from the query wording.
func ExtractIntent(query string) domain.QueryIntent {
	lower := strings.ToLower(query)

	intent := domain.QueryIntent{}
	for _, kw := range definitionKeywords {
		if strings.Contains(lower, kw) {
			intent.Definitions = true
			break
		}
	}
	for _, kw := range obligationCues {
		if strings.Contains(lower, kw) {
			intent.Obligations = true
			break
		}
	}
	return intent
}

// ExtractFilters derives candidate pre-filters from explicit page and
// section references in the query. Returns nil when the query carries
// no usable reference.
func ExtractFilters(query string) *domain.SearchFilters {
	filters := &domain.SearchFilters{}

	if m := pageRefRe.FindStringSubmatch(query); m != nil {
		if page, err := strconv.Atoi(m[1]); err == nil && page > 0 {
			filters.PageRange = &domain.PageRange{Start: page, End: page}
		}
	}
	if m := sectionRefRe.FindStringSubmatch(query); m != nil {
		if section, err := strconv.Atoi(m[1]); err == nil && section >= 0 {
			filters.SectionIndex = &section
		}
	}

	if filters.Empty() {
		return nil
	}
	return filters
}
