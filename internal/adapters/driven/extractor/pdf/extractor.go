// Package pdf provides a PageExtractor adapter backed by an in-process
// PDF text extraction library. No external binaries or services are
// involved.
package pdf

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/akashhguptaa/Legal-ChatBot/internal/core/domain"
	"github.com/akashhguptaa/Legal-ChatBot/internal/core/ports/driven"
	"github.com/akashhguptaa/Legal-ChatBot/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.PageExtractor = (*Extractor)(nil)

// Extractor extracts per-page text from PDF files.
type Extractor struct{}

// New creates a new PDF extractor.
func New() *Extractor {
	return &Extractor{}
}

// ExtractPages returns the non-empty pages of the file in order, each
// trimmed of surrounding whitespace, plus the total page count of the
// source. Pages that fail to decode are logged and skipped; a document
// where nothing decodes at all is terminal.
func (e *Extractor) ExtractPages(ctx context.Context, path string) ([]domain.Page, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open pdf: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, 0, fmt.Errorf("stat pdf: %w", err)
	}

	reader, err := pdf.NewReader(file, info.Size())
	if err != nil {
		return nil, 0, fmt.Errorf("read pdf: %w", err)
	}

	totalPages := reader.NumPage()
	pages := make([]domain.Page, 0, totalPages)

	for i := 1; i <= totalPages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			logger.Warn("Failed to extract text from page %d of %s: %v", i, path, err)
			continue
		}

		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		pages = append(pages, domain.Page{
			Number: i,
			Text:   text,
		})
	}

	if len(pages) == 0 {
		return nil, totalPages, fmt.Errorf("%s: %w", path, domain.ErrNoExtractableText)
	}

	logger.Debug("Extracted text from %d of %d pages in %s", len(pages), totalPages, path)
	return pages, totalPages, nil
}
