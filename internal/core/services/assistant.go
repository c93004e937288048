package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/akashhguptaa/Legal-ChatBot/internal/core/domain"
	"github.com/akashhguptaa/Legal-ChatBot/internal/core/ports/driven"
	"github.com/akashhguptaa/Legal-ChatBot/internal/core/ports/driving"
	"github.com/akashhguptaa/Legal-ChatBot/internal/logger"
	"github.com/akashhguptaa/Legal-ChatBot/internal/vectorindex"
)

// Ensure AssistantService implements the interface.
var _ driving.AssistantService = (*AssistantService)(nil)

// How many leading sections feed a document summary, and how much of
// each section's content.
const (
	summarySections   = 10
	summaryPreviewLen = 200
	summaryMaxLength  = 500
)

// How many trailing transcript messages accompany each answer prompt,
// and the session title length cap.
const (
	historyTurns  = 6
	titleMaxRunes = 60
)

// AssistantService answers user questions. Each query is routed to a
// strategy, grounded on retrieval when the route calls for it, and
// both turns are appended to the session transcript.
type AssistantService struct {
	docStore   driven.DocumentStore
	indexStore driven.IndexStore
	llm        driven.LLMService
	router     driving.RouterService
	search     driving.SearchService
	now        func() time.Time
}

// NewAssistantService creates a new assistant. The llm parameter is
// optional; without it Ask and Summarise report the model as
// unavailable.
func NewAssistantService(
	docStore driven.DocumentStore,
	indexStore driven.IndexStore,
	llm driven.LLMService,
	router driving.RouterService,
	search driving.SearchService,
) *AssistantService {
	return &AssistantService{
		docStore:   docStore,
		indexStore: indexStore,
		llm:        llm,
		router:     router,
		search:     search,
		now:        time.Now,
	}
}

// Ask answers one query within a session.
func (s *AssistantService) Ask(ctx context.Context, sessionID, query string) (*driving.Answer, error) {
	logger.Section("Ask")

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("empty query: %w", domain.ErrInvalidInput)
	}
	if s.llm == nil {
		return nil, fmt.Errorf("ask requires a language model: %w", domain.ErrLLMUnavailable)
	}

	if err := s.ensureSession(ctx, sessionID, query); err != nil {
		return nil, err
	}

	documents, err := s.docStore.ListDocuments(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	route := s.router.Route(ctx, query, documents)
	logger.Info("Answering via %s route", route)

	answer, err := s.answer(ctx, route, query, s.recentHistory(ctx, sessionID))
	if err != nil {
		return nil, err
	}

	if err := s.record(ctx, sessionID, query, answer.Text); err != nil {
		return nil, err
	}
	return answer, nil
}

func (s *AssistantService) answer(ctx context.Context, route domain.Route, query, history string) (*driving.Answer, error) {
	// Without a retrieval backend, document routes degrade to general.
	if route == domain.RouteGeneral || s.search == nil {
		text, err := s.generate(ctx, fmt.Sprintf(generalPromptTemplate, history, query))
		if err != nil {
			return nil, err
		}
		return &driving.Answer{Route: domain.RouteGeneral, Text: text}, nil
	}

	results, err := s.search.Search(ctx, query, driving.SearchOptions{
		Filters: ExtractFilters(query),
		Intent:  ExtractIntent(query),
	})
	if err != nil {
		return nil, fmt.Errorf("retrieve context: %w", err)
	}

	if len(results) == 0 && route == domain.RouteDocument {
		logger.Debug("No retrieval results for document route")
		return &driving.Answer{Route: route, Text: noContextAnswer}, nil
	}

	template := documentPromptTemplate
	if route == domain.RouteHybrid {
		template = hybridPromptTemplate
	}
	text, err := s.generate(ctx, fmt.Sprintf(template, history, formatContext(results), query))
	if err != nil {
		return nil, err
	}
	return &driving.Answer{Route: route, Text: text, Sources: results}, nil
}

func (s *AssistantService) generate(ctx context.Context, prompt string) (string, error) {
	text, err := s.llm.Generate(ctx, prompt, driven.GenerateOptions{
		MaxTokens:   1024,
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("generate answer: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// ensureSession creates the session on first use, titling it from the
// opening query.
func (s *AssistantService) ensureSession(ctx context.Context, sessionID, query string) error {
	_, err := s.docStore.GetSession(ctx, sessionID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("get session: %w", err)
	}

	session := domain.Session{
		ID:        sessionID,
		Title:     s.sessionTitle(ctx, query),
		CreatedAt: s.now().UTC(),
	}
	if err := s.docStore.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// sessionTitle asks the model for a short title and falls back to a
// truncation of the query.
func (s *AssistantService) sessionTitle(ctx context.Context, query string) string {
	if s.llm != nil {
		title, err := s.llm.Generate(ctx, fmt.Sprintf(titlePromptTemplate, query), driven.GenerateOptions{
			MaxTokens:   20,
			Temperature: 0.2,
		})
		if err == nil {
			if title = strings.TrimSpace(strings.Trim(strings.TrimSpace(title), `"`)); title != "" {
				return title
			}
		} else {
			logger.Warn("Session title generation failed: %v", err)
		}
	}

	return truncateRunes(query, titleMaxRunes)
}

// recentHistory renders the tail of the session transcript for prompt
// injection. A transcript that fails to load degrades to an empty
// history rather than failing the question.
func (s *AssistantService) recentHistory(ctx context.Context, sessionID string) string {
	messages, err := s.docStore.ListMessages(ctx, sessionID)
	if err != nil {
		logger.Warn("Loading conversation history failed: %v", err)
		return noHistory
	}
	return formatHistory(messages)
}

func (s *AssistantService) record(ctx context.Context, sessionID, query, answer string) error {
	turns := []domain.Message{
		{SessionID: sessionID, Role: domain.RoleUser, Content: query, CreatedAt: s.now().UTC()},
		{SessionID: sessionID, Role: domain.RoleAssistant, Content: answer, CreatedAt: s.now().UTC()},
	}
	for _, msg := range turns {
		if err := s.docStore.AppendMessage(ctx, msg); err != nil {
			return fmt.Errorf("append message: %w", err)
		}
	}
	return nil
}

// Summarise generates a structured summary of a document from its
// leading sections.
func (s *AssistantService) Summarise(ctx context.Context, documentID string) (string, error) {
	if s.llm == nil {
		return "", fmt.Errorf("summarise requires a language model: %w", domain.ErrLLMUnavailable)
	}

	if _, err := s.docStore.GetDocument(ctx, documentID); err != nil {
		return "", err
	}

	indexBlob, metaBlob, err := s.indexStore.Get(ctx, documentID)
	if err != nil {
		return "", err
	}
	index, err := vectorindex.Unmarshal(indexBlob, metaBlob)
	if err != nil {
		return "", fmt.Errorf("load index for %s: %w", documentID, err)
	}

	records := index.Records()
	if len(records) > summarySections {
		records = records[:summarySections]
	}

	var outline strings.Builder
	for _, rec := range records {
		preview := truncateRunes(rec.Chunk.Content, summaryPreviewLen)
		fmt.Fprintf(&outline, "%s: %s\n", rec.Chunk.Title, preview)
	}

	summary, err := s.llm.Summarise(ctx, outline.String(), summaryMaxLength)
	if err != nil {
		return "", fmt.Errorf("summarise document: %w", err)
	}
	return strings.TrimSpace(summary), nil
}

// History returns a session's conversation in chronological order.
func (s *AssistantService) History(ctx context.Context, sessionID string) ([]domain.Message, error) {
	return s.docStore.ListMessages(ctx, sessionID)
}

// formatHistory renders the last few transcript messages as labelled
// lines, oldest first.
func formatHistory(messages []domain.Message) string {
	if len(messages) > historyTurns {
		messages = messages[len(messages)-historyTurns:]
	}
	if len(messages) == 0 {
		return noHistory
	}

	var b strings.Builder
	for i, m := range messages {
		if i > 0 {
			b.WriteByte('\n')
		}
		label := "User"
		if m.Role == domain.RoleAssistant {
			label = "Assistant"
		}
		fmt.Fprintf(&b, "%s: %s", label, m.Content)
	}
	return b.String()
}

// truncateRunes shortens s to at most n runes, never splitting a
// multi-byte character.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// formatContext renders retrieved chunks for prompt injection.
func formatContext(results []domain.ScoredChunk) string {
	var b strings.Builder
	for i, r := range results {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "[%s] (pages %d-%d)\n%s", r.Chunk.Title, r.Chunk.PageStart, r.Chunk.PageEnd, r.Chunk.Content)
	}
	return b.String()
}
