package chunker

import (
	"regexp"
	"strings"

	"github.com/akashhguptaa/Legal-ChatBot/internal/core/domain"
)

var (
	subsectionMarkerRe = regexp.MustCompile(`(?m)^\s*\([a-z0-9]\)`)
	dateRe             = regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`)
)

var obligationKeywords = []string{"shall", "must", "required", "obligation"}

// deriveMetadata computes the retrieval-time filter flags for a chunk.
// Flags are derived from the final chunk content, overlap included,
// since that is the text the embedding represents.
func deriveMetadata(section domain.Section, content string) domain.ChunkMetadata {
	lower := strings.ToLower(content)

	obligations := false
	for _, kw := range obligationKeywords {
		if strings.Contains(lower, kw) {
			obligations = true
			break
		}
	}

	return domain.ChunkMetadata{
		HierarchyLevel:      len(section.Hierarchy),
		HasSubsections:      subsectionMarkerRe.MatchString(content),
		ContainsDefinitions: strings.Contains(lower, "definition"),
		ContainsObligations: obligations,
		ContainsDates:       dateRe.MatchString(content),
		WordCount:           len(strings.Fields(content)),
	}
}
