package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/akashhguptaa/Legal-ChatBot/internal/core/domain"
	"github.com/akashhguptaa/Legal-ChatBot/internal/core/ports/driven"
	"github.com/akashhguptaa/Legal-ChatBot/internal/core/ports/driving"
)

// mockExtractor returns canned pages.
type mockExtractor struct {
	pages []domain.Page
	total int
	err   error
}

func (m *mockExtractor) ExtractPages(_ context.Context, _ string) ([]domain.Page, int, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	pages := make([]domain.Page, len(m.pages))
	copy(pages, m.pages)
	return pages, m.total, nil
}

// mockDocStore is an in-memory DocumentStore.
type mockDocStore struct {
	mu        sync.Mutex
	documents map[string]domain.Document
	sessions  map[string]domain.Session
	messages  []domain.Message

	saveErr error
}

func newMockDocStore() *mockDocStore {
	return &mockDocStore{
		documents: make(map[string]domain.Document),
		sessions:  make(map[string]domain.Session),
	}
}

func (m *mockDocStore) SaveDocument(_ context.Context, doc *domain.Document) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.documents[doc.ID] = *doc
	return nil
}

func (m *mockDocStore) GetDocument(_ context.Context, id string) (*domain.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.documents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

func (m *mockDocStore) ListDocuments(_ context.Context, sessionID string) ([]domain.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var docs []domain.Document
	for _, doc := range m.documents {
		if doc.SessionID == sessionID {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

func (m *mockDocStore) UpdateStatus(_ context.Context, id string, status domain.DocumentStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.documents[id]
	if !ok {
		return domain.ErrNotFound
	}
	doc.Status = status
	m.documents[id] = doc
	return nil
}

func (m *mockDocStore) DeleteDocument(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.documents[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.documents, id)
	return nil
}

func (m *mockDocStore) SaveSession(_ context.Context, session domain.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.ID] = session
	return nil
}

func (m *mockDocStore) GetSession(_ context.Context, id string) (*domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &session, nil
}

func (m *mockDocStore) ListSessions(_ context.Context) ([]domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var sessions []domain.Session
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	return sessions, nil
}

func (m *mockDocStore) AppendMessage(_ context.Context, msg domain.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
	return nil
}

func (m *mockDocStore) ListMessages(_ context.Context, sessionID string) ([]domain.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var msgs []domain.Message
	for _, msg := range m.messages {
		if msg.SessionID == sessionID {
			msgs = append(msgs, msg)
		}
	}
	return msgs, nil
}

// mockIndexStore is an in-memory IndexStore.
type mockIndexStore struct {
	mu    sync.Mutex
	blobs map[string][2][]byte

	putErr error
}

func newMockIndexStore() *mockIndexStore {
	return &mockIndexStore{blobs: make(map[string][2][]byte)}
}

func (m *mockIndexStore) Put(_ context.Context, documentID string, indexBlob, metaBlob []byte) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[documentID] = [2][]byte{indexBlob, metaBlob}
	return nil
}

func (m *mockIndexStore) Get(_ context.Context, documentID string) ([]byte, []byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	pair, ok := m.blobs[documentID]
	if !ok {
		return nil, nil, domain.ErrIndexNotFound
	}
	return pair[0], pair[1], nil
}

func (m *mockIndexStore) Delete(_ context.Context, documentID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blobs, documentID)
	return nil
}

func (m *mockIndexStore) List(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, 0, len(m.blobs))
	for id := range m.blobs {
		ids = append(ids, id)
	}
	return ids, nil
}

// mockEmbedder produces deterministic vectors. embedFn overrides the
// per-text vector; failBatches marks batch ordinals (by call order)
// that should fail.
type mockEmbedder struct {
	mu          sync.Mutex
	dims        int
	embedFn     func(text string) []float32
	queryVec    []float32
	batchCalls  int
	failBatches map[int]bool
}

func newMockEmbedder(dims int) *mockEmbedder {
	return &mockEmbedder{dims: dims}
}

func (m *mockEmbedder) vector(text string) []float32 {
	if m.embedFn != nil {
		return m.embedFn(text)
	}
	vec := make([]float32, m.dims)
	vec[0] = 1
	return vec
}

func (m *mockEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if m.queryVec != nil {
		return m.queryVec, nil
	}
	return m.vector(text), nil
}

func (m *mockEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	m.mu.Lock()
	call := m.batchCalls
	m.batchCalls++
	m.mu.Unlock()

	if m.failBatches[call] {
		return nil, fmt.Errorf("embedding backend unavailable")
	}
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = m.vector(text)
	}
	return vectors, nil
}

func (m *mockEmbedder) Dimensions() int              { return m.dims }
func (m *mockEmbedder) ModelName() string            { return "mock-embedder" }
func (m *mockEmbedder) Ping(_ context.Context) error { return nil }
func (m *mockEmbedder) Close() error                 { return nil }

// mockLLM answers from canned responses.
type mockLLM struct {
	generateFn  func(prompt string) (string, error)
	classifyFn  func(prompt string) (string, error)
	summariseFn func(content string, maxLength int) (string, error)
}

func (m *mockLLM) Generate(_ context.Context, prompt string, _ driven.GenerateOptions) (string, error) {
	if m.generateFn == nil {
		return "generated answer", nil
	}
	return m.generateFn(prompt)
}

func (m *mockLLM) Classify(_ context.Context, prompt string) (string, error) {
	if m.classifyFn == nil {
		return "general", nil
	}
	return m.classifyFn(prompt)
}

func (m *mockLLM) Summarise(_ context.Context, content string, maxLength int) (string, error) {
	if m.summariseFn == nil {
		return "summary", nil
	}
	return m.summariseFn(content, maxLength)
}

func (m *mockLLM) ModelName() string            { return "mock-llm" }
func (m *mockLLM) Ping(_ context.Context) error { return nil }
func (m *mockLLM) Close() error                 { return nil }

// mockRouter returns a fixed route.
type mockRouter struct {
	route domain.Route
}

func (m *mockRouter) Route(_ context.Context, _ string, _ []domain.Document) domain.Route {
	return m.route
}

// mockSearch returns canned retrieval results.
type mockSearch struct {
	results []domain.ScoredChunk
	err     error

	lastQuery string
	lastOpts  driving.SearchOptions
}

func (m *mockSearch) Search(_ context.Context, query string, opts driving.SearchOptions) ([]domain.ScoredChunk, error) {
	m.lastQuery = query
	m.lastOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}
