package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/akashhguptaa/Legal-ChatBot/internal/chunker"
	"github.com/akashhguptaa/Legal-ChatBot/internal/core/domain"
	"github.com/akashhguptaa/Legal-ChatBot/internal/core/ports/driven"
	"github.com/akashhguptaa/Legal-ChatBot/internal/core/ports/driving"
	"github.com/akashhguptaa/Legal-ChatBot/internal/logger"
	"github.com/akashhguptaa/Legal-ChatBot/internal/segmenter"
	"github.com/akashhguptaa/Legal-ChatBot/internal/vectorindex"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService runs the document processing pipeline: extract,
// segment, chunk, embed, index, publish.
type IngestService struct {
	extractor  driven.PageExtractor
	docStore   driven.DocumentStore
	indexStore driven.IndexStore
	embedder   driven.EmbeddingService
	segmenter  *segmenter.Segmenter
	chunker    *chunker.Builder
	settings   domain.IngestionSettings
	now        func() time.Time
}

// NewIngestService creates a new ingestion service.
func NewIngestService(
	extractor driven.PageExtractor,
	docStore driven.DocumentStore,
	indexStore driven.IndexStore,
	embedder driven.EmbeddingService,
	seg *segmenter.Segmenter,
	chk *chunker.Builder,
	settings domain.IngestionSettings,
) *IngestService {
	normalised := domain.Settings{Ingestion: settings}
	normalised.Normalise()

	return &IngestService{
		extractor:  extractor,
		docStore:   docStore,
		indexStore: indexStore,
		embedder:   embedder,
		segmenter:  seg,
		chunker:    chk,
		settings:   normalised.Ingestion,
		now:        time.Now,
	}
}

// embedBatch is one unit of work for the embedding pool.
type embedBatch struct {
	ordinal int
	chunks  []domain.Chunk
}

// embedResult pairs a batch with its vectors. A nil vectors slice
// marks a failed batch.
type embedResult struct {
	ordinal int
	chunks  []domain.Chunk
	vectors [][]float32
}

// Ingest processes one PDF end to end. The registry entry is created
// in pending state up front and transitions to processed or failed, so
// a crash mid-pipeline leaves an inspectable record behind.
func (s *IngestService) Ingest(ctx context.Context, sessionID, path string) (*driving.IngestResult, error) {
	logger.Section("Document Ingestion")
	logger.Info("Ingesting %s", path)

	doc := domain.Document{
		ID:         uuid.NewString(),
		SessionID:  sessionID,
		Filename:   filepath.Base(path),
		Status:     domain.StatusPending,
		UploadedAt: s.now().UTC(),
		UpdatedAt:  s.now().UTC(),
	}
	if err := s.docStore.SaveDocument(ctx, &doc); err != nil {
		return nil, fmt.Errorf("register document: %w", err)
	}

	pages, totalPages, err := s.extractor.ExtractPages(ctx, path)
	if err != nil {
		s.markFailed(ctx, doc.ID)
		return nil, fmt.Errorf("extract pages: %w", err)
	}
	doc.PageCount = totalPages
	doc.UpdatedAt = s.now().UTC()
	if err := s.docStore.SaveDocument(ctx, &doc); err != nil {
		return nil, fmt.Errorf("update document: %w", err)
	}
	logger.Debug("Extracted %d non-empty pages of %d", len(pages), totalPages)

	s.segmenter.FlagSectionStarts(pages)
	sections := s.segmenter.Segment(pages)
	if len(sections) == 0 {
		s.markFailed(ctx, doc.ID)
		return nil, fmt.Errorf("segment %s: %w", doc.Filename, domain.ErrNoExtractableText)
	}
	logger.Debug("Segmented into %d sections", len(sections))

	chunks := s.chunker.Build(sections)
	logger.Debug("Built %d chunks", len(chunks))

	index, indexed, tokens, err := s.embedAndIndex(ctx, doc.ID, chunks)
	if err != nil {
		s.markFailed(ctx, doc.ID)
		return nil, err
	}

	indexBlob, metaBlob, err := index.Marshal()
	if err != nil {
		s.markFailed(ctx, doc.ID)
		return nil, fmt.Errorf("serialise index: %w", err)
	}
	if err := s.indexStore.Put(ctx, doc.ID, indexBlob, metaBlob); err != nil {
		s.markFailed(ctx, doc.ID)
		return nil, fmt.Errorf("publish index: %w", err)
	}

	doc.Status = domain.StatusProcessed
	doc.UpdatedAt = s.now().UTC()
	if err := s.docStore.UpdateStatus(ctx, doc.ID, domain.StatusProcessed); err != nil {
		return nil, fmt.Errorf("mark processed: %w", err)
	}

	logger.Info("Document %s processed: %d/%d chunks indexed", doc.ID, indexed, len(chunks))
	return &driving.IngestResult{
		Document:   doc,
		Sections:   len(sections),
		Chunks:     len(chunks),
		Indexed:    indexed,
		TokensUsed: tokens,
	}, nil
}

// embedAndIndex runs the embedding worker pool and assembles the
// per-document index. Failed batches are logged and skipped; the
// surviving chunks keep their original document order because batches
// are recombined by ordinal.
func (s *IngestService) embedAndIndex(
	ctx context.Context, documentID string, chunks []domain.Chunk,
) (*vectorindex.Index, int, int, error) {
	batches := splitBatches(chunks, s.settings.BatchSize)
	logger.Debug("Embedding %d chunks in %d batches with %d workers",
		len(chunks), len(batches), s.settings.Workers)

	jobs := make(chan embedBatch)
	results := make(chan embedResult)

	var wg sync.WaitGroup
	for w := 0; w < s.settings.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				texts := make([]string, len(job.chunks))
				for i, c := range job.chunks {
					texts[i] = c.Content
				}
				vectors, err := s.embedder.EmbedBatch(ctx, texts)
				if err != nil || len(vectors) != len(job.chunks) {
					logger.Warn("Embedding batch %d failed: %v", job.ordinal, err)
					results <- embedResult{ordinal: job.ordinal, chunks: job.chunks}
					continue
				}
				results <- embedResult{ordinal: job.ordinal, chunks: job.chunks, vectors: vectors}
			}
		}()
	}

	go func() {
		for i, batch := range batches {
			jobs <- embedBatch{ordinal: i, chunks: batch}
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	collected := make([]embedResult, 0, len(batches))
	for res := range results {
		collected = append(collected, res)
	}
	if err := ctx.Err(); err != nil {
		return nil, 0, 0, fmt.Errorf("ingestion cancelled: %w", err)
	}
	sort.Slice(collected, func(i, j int) bool { return collected[i].ordinal < collected[j].ordinal })

	index, err := vectorindex.New(s.embedder.Dimensions())
	if err != nil {
		return nil, 0, 0, err
	}

	indexed, tokens := 0, 0
	for _, res := range collected {
		if res.vectors == nil {
			continue
		}
		for i, chunk := range res.chunks {
			if err := index.Add(res.vectors[i], domain.ChunkRecord{DocumentID: documentID, Chunk: chunk}); err != nil {
				return nil, 0, 0, fmt.Errorf("index chunk %d: %w", chunk.SectionIndex, err)
			}
			indexed++
			tokens += chunk.TokenCount
		}
	}
	if indexed == 0 {
		return nil, 0, 0, fmt.Errorf("every embedding batch failed: %w", domain.ErrEmbeddingUnavailable)
	}
	return index, indexed, tokens, nil
}

// Delete removes a document and its index artifacts. Index deletion is
// idempotent, so a document whose ingestion failed early still cleans
// up.
func (s *IngestService) Delete(ctx context.Context, documentID string) error {
	logger.Debug("Deleting document %s", documentID)
	if err := s.indexStore.Delete(ctx, documentID); err != nil {
		return fmt.Errorf("delete index: %w", err)
	}
	if err := s.docStore.DeleteDocument(ctx, documentID); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}

// Info summarises a document from its registry entry and published
// index.
func (s *IngestService) Info(ctx context.Context, documentID string) (*domain.DocumentInfo, error) {
	doc, err := s.docStore.GetDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}

	info := &domain.DocumentInfo{
		Filename:   doc.Filename,
		TotalPages: doc.PageCount,
	}

	index, err := s.loadIndex(ctx, documentID)
	if err != nil {
		if errors.Is(err, domain.ErrIndexNotFound) {
			return info, nil
		}
		return nil, err
	}
	info.TotalSections = index.Len()
	return info, nil
}

// Section returns the indexed chunk with the given ordinal index.
func (s *IngestService) Section(ctx context.Context, documentID string, sectionIndex int) (*domain.Chunk, error) {
	index, err := s.loadIndex(ctx, documentID)
	if err != nil {
		return nil, err
	}
	for _, rec := range index.Records() {
		if rec.Chunk.SectionIndex == sectionIndex {
			chunk := rec.Chunk
			return &chunk, nil
		}
	}
	return nil, fmt.Errorf("section %d of document %s: %w", sectionIndex, documentID, domain.ErrNotFound)
}

func (s *IngestService) loadIndex(ctx context.Context, documentID string) (*vectorindex.Index, error) {
	indexBlob, metaBlob, err := s.indexStore.Get(ctx, documentID)
	if err != nil {
		return nil, err
	}
	index, err := vectorindex.Unmarshal(indexBlob, metaBlob)
	if err != nil {
		return nil, fmt.Errorf("load index for %s: %w", documentID, err)
	}
	return index, nil
}

// markFailed is best effort; the original error is what the caller
// needs to see.
func (s *IngestService) markFailed(ctx context.Context, documentID string) {
	if err := s.docStore.UpdateStatus(ctx, documentID, domain.StatusFailed); err != nil {
		logger.Warn("Failed to mark document %s as failed: %v", documentID, err)
	}
}

func splitBatches(chunks []domain.Chunk, size int) [][]domain.Chunk {
	if size <= 0 {
		size = 1
	}
	var batches [][]domain.Chunk
	for i := 0; i < len(chunks); i += size {
		end := i + size
		if end > len(chunks) {
			end = len(chunks)
		}
		batches = append(batches, chunks[i:end])
	}
	return batches
}
