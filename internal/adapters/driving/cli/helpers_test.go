package cli

import (
	"context"
	"time"

	"github.com/akashhguptaa/Legal-ChatBot/internal/core/domain"
	"github.com/akashhguptaa/Legal-ChatBot/internal/core/ports/driven"
	"github.com/akashhguptaa/Legal-ChatBot/internal/core/ports/driving"
)

// stubIngest provides canned ingestion results.
type stubIngest struct {
	result *driving.IngestResult
	info   *domain.DocumentInfo
	chunk  *domain.Chunk
	err    error
}

func (s *stubIngest) Ingest(_ context.Context, sessionID, path string) (*driving.IngestResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *stubIngest) Delete(context.Context, string) error { return s.err }

func (s *stubIngest) Info(context.Context, string) (*domain.DocumentInfo, error) {
	return s.info, s.err
}

func (s *stubIngest) Section(context.Context, string, int) (*domain.Chunk, error) {
	return s.chunk, s.err
}

// stubSearch records the last query and returns canned results.
type stubSearch struct {
	results   []domain.ScoredChunk
	lastQuery string
	lastOpts  driving.SearchOptions
	err       error
}

func (s *stubSearch) Search(_ context.Context, query string, opts driving.SearchOptions) ([]domain.ScoredChunk, error) {
	s.lastQuery = query
	s.lastOpts = opts
	return s.results, s.err
}

// stubAssistant returns canned answers and history.
type stubAssistant struct {
	answer  *driving.Answer
	summary string
	history []domain.Message
	err     error
}

func (s *stubAssistant) Ask(context.Context, string, string) (*driving.Answer, error) {
	return s.answer, s.err
}

func (s *stubAssistant) Summarise(context.Context, string) (string, error) {
	return s.summary, s.err
}

func (s *stubAssistant) History(context.Context, string) ([]domain.Message, error) {
	return s.history, s.err
}

// stubRouter records the inputs of the last classification.
type stubRouter struct {
	route    domain.Route
	lastDocs int
}

func (s *stubRouter) Route(_ context.Context, _ string, docs []domain.Document) domain.Route {
	s.lastDocs = len(docs)
	return s.route
}

// stubDocStore serves fixed sessions and documents.
type stubDocStore struct {
	driven.DocumentStore

	sessions  []domain.Session
	documents []domain.Document
	err       error
}

func (s *stubDocStore) ListSessions(context.Context) ([]domain.Session, error) {
	return s.sessions, s.err
}

func (s *stubDocStore) ListDocuments(context.Context, string) ([]domain.Document, error) {
	return s.documents, s.err
}

func sampleChunk() domain.Chunk {
	return domain.Chunk{
		SectionIndex: 0,
		Title:        "ARTICLE I",
		Content:      "The parties agree to the terms set out below.",
		TokenCount:   9,
		PageStart:    1,
		PageEnd:      2,
		CreatedAt:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

// setupTestServices swaps the wired services for stubs and returns a
// cleanup that restores the previous state.
func setupTestServices() func() {
	prevIngest := ingestService
	prevSearch := searchService
	prevRouter := routerService
	prevAssistant := assistantService
	prevDocStore := docStore
	prevConfig := configStore
	prevWired := wired

	ingestService = &stubIngest{
		result: &driving.IngestResult{
			Document: domain.Document{
				ID:        "doc-1",
				SessionID: "sess-1",
				Filename:  "contract.pdf",
				PageCount: 4,
				Status:    domain.StatusProcessed,
			},
			Sections:   3,
			Chunks:     3,
			Indexed:    3,
			TokensUsed: 120,
		},
		info:  &domain.DocumentInfo{Filename: "contract.pdf", TotalPages: 4, TotalSections: 3},
		chunk: func() *domain.Chunk { c := sampleChunk(); return &c }(),
	}
	searchService = &stubSearch{
		results: []domain.ScoredChunk{
			{DocumentID: "doc-1", Chunk: sampleChunk(), Score: 0.97},
		},
	}
	routerService = &stubRouter{route: domain.RouteDocument}
	assistantService = &stubAssistant{
		answer: &driving.Answer{
			Route: domain.RouteDocument,
			Text:  "The agreement terminates after thirty days' notice.",
			Sources: []domain.ScoredChunk{
				{DocumentID: "doc-1", Chunk: sampleChunk(), Score: 0.97},
			},
		},
		summary: "A services agreement between two parties.",
		history: []domain.Message{
			{SessionID: "sess-1", Role: domain.RoleUser, Content: "What is a lien?"},
			{SessionID: "sess-1", Role: domain.RoleAssistant, Content: "A lien is a security interest."},
		},
	}
	docStore = &stubDocStore{
		sessions: []domain.Session{
			{ID: "sess-1", Title: "Lien basics", CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)},
		},
		documents: []domain.Document{
			{ID: "doc-1", SessionID: "sess-1", Filename: "contract.pdf", PageCount: 4, Status: domain.StatusProcessed},
		},
	}
	wired = true

	return func() {
		ingestService = prevIngest
		searchService = prevSearch
		routerService = prevRouter
		assistantService = prevAssistant
		docStore = prevDocStore
		configStore = prevConfig
		wired = prevWired
	}
}
