package driven

import (
	"context"

	"github.com/akashhguptaa/Legal-ChatBot/internal/core/domain"
)

// PageExtractor extracts per-page text from an uploaded document file.
type PageExtractor interface {
	// ExtractPages returns the non-empty pages of the file in order,
	// each trimmed of surrounding whitespace, plus the total page
	// count of the source.
	//
	// Returns domain.ErrNoExtractableText when no page yields any
	// text; that is terminal for the document.
	ExtractPages(ctx context.Context, path string) ([]domain.Page, int, error)
}
