// Package chunker converts document sections into token-bounded,
// overlapping chunks ready for embedding. Section text is carried
// verbatim; the chunker only prepends overlap context and splits
// sections that exceed the token budget.
package chunker

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/akashhguptaa/Legal-ChatBot/internal/core/domain"
	"github.com/akashhguptaa/Legal-ChatBot/internal/tokenizer"
)

// Builder produces chunks from segmented sections.
type Builder struct {
	maxTokens    int
	overlapPct   float64
	reserveWords int
	count        func(string) int
	now          func() time.Time
}

// Option customises a Builder.
type Option func(*Builder)

// WithMaxTokens sets the per-chunk token budget.
func WithMaxTokens(n int) Option {
	return func(b *Builder) {
		if n > 0 {
			b.maxTokens = n
		}
	}
}

// WithOverlapPct sets the overlap fraction carried between adjacent
// chunks.
func WithOverlapPct(pct float64) Option {
	return func(b *Builder) {
		if pct >= 0 && pct < 1 {
			b.overlapPct = pct
		}
	}
}

// WithSplitReserve sets how many words below the token budget split
// pieces are sized, leaving room for the prepended overlap.
func WithSplitReserve(n int) Option {
	return func(b *Builder) {
		if n >= 0 {
			b.reserveWords = n
		}
	}
}

// WithTokenCounter replaces the token estimator.
func WithTokenCounter(count func(string) int) Option {
	return func(b *Builder) {
		if count != nil {
			b.count = count
		}
	}
}

// WithClock replaces the timestamp source, for tests.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

// New creates a Builder from the given chunking settings.
func New(settings domain.ChunkingSettings, opts ...Option) *Builder {
	normalised := domain.Settings{Chunking: settings}
	normalised.Normalise()
	settings = normalised.Chunking

	b := &Builder{
		maxTokens:    settings.MaxTokens,
		overlapPct:   settings.OverlapPct,
		reserveWords: settings.SplitReserveWords,
		count:        tokenizer.Count,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build chunks the sections in document order. Each chunk is assigned
// an ordinal section index covering the whole document, so split
// pieces occupy consecutive indices.
func (b *Builder) Build(sections []domain.Section) []domain.Chunk {
	var chunks []domain.Chunk
	for i, section := range sections {
		if section.TokenCount > b.maxTokens {
			chunks = append(chunks, b.split(section)...)
			continue
		}
		chunks = append(chunks, b.whole(section, prev(sections, i)))
	}
	for i := range chunks {
		chunks[i].SectionIndex = i
	}
	return chunks
}

func prev(sections []domain.Section, i int) *domain.Section {
	if i == 0 {
		return nil
	}
	return &sections[i-1]
}

// whole emits a section as a single chunk, prefixed with tail words of
// the previous section when overlap is configured.
func (b *Builder) whole(section domain.Section, previous *domain.Section) domain.Chunk {
	content := section.Content
	hasOverlap := false
	overlapSource := ""

	if previous != nil {
		overlapTokens := int(math.Floor(float64(previous.TokenCount) * b.overlapPct))
		words := strings.Fields(previous.Content)
		if overlapTokens > 0 && len(words) > 0 {
			if overlapTokens > len(words) {
				overlapTokens = len(words)
			}
			tail := strings.Join(words[len(words)-overlapTokens:], " ")
			content = tail + "\n\n" + content
			hasOverlap = true
			overlapSource = previous.Title
		}
	}

	return domain.Chunk{
		Title:         section.Title,
		Content:       content,
		TokenCount:    b.count(content),
		Hierarchy:     append([]string(nil), section.Hierarchy...),
		PageStart:     section.PageStart,
		PageEnd:       section.PageEnd,
		Metadata:      deriveMetadata(section, content),
		HasOverlap:    hasOverlap,
		OverlapSource: overlapSource,
		CreatedAt:     b.now().UTC(),
	}
}

// split breaks an oversized section into word-sized pieces. Pieces
// after the first are prefixed with words drawn from the original
// word sequence, so the overlap never compounds across pieces.
func (b *Builder) split(section domain.Section) []domain.Chunk {
	words := strings.Fields(section.Content)

	pieceSize := b.maxTokens - b.reserveWords
	if pieceSize < 1 {
		pieceSize = 1
	}
	overlapSize := int(math.Floor(float64(pieceSize) * b.overlapPct))
	totalParts := (len(words) + pieceSize - 1) / pieceSize

	var chunks []domain.Chunk
	for j := 0; j < len(words); j += pieceSize {
		end := j + pieceSize
		if end > len(words) {
			end = len(words)
		}
		piece := words[j:end]

		content := strings.Join(piece, " ")
		hasOverlap := false
		overlapSource := ""
		if j > 0 && overlapSize > 0 {
			from := j - overlapSize
			if from < 0 {
				from = 0
			}
			content = strings.Join(words[from:j], " ") + "\n\n" + content
			hasOverlap = true
			overlapSource = section.Title
		}

		part := j/pieceSize + 1
		chunks = append(chunks, domain.Chunk{
			Title:         fmt.Sprintf("%s (Part %d)", section.Title, part),
			Content:       content,
			TokenCount:    b.count(content),
			Hierarchy:     append([]string(nil), section.Hierarchy...),
			PageStart:     section.PageStart,
			PageEnd:       section.PageEnd,
			Metadata:      deriveMetadata(section, content),
			HasOverlap:    hasOverlap,
			OverlapSource: overlapSource,
			IsSplit:       true,
			PartNumber:    part,
			TotalParts:    totalParts,
			CreatedAt:     b.now().UTC(),
		})
	}
	return chunks
}
