package driving

import (
	"context"

	"github.com/akashhguptaa/Legal-ChatBot/internal/core/domain"
)

// Answer is the assistant's response to one query.
type Answer struct {
	// Route is the strategy that produced the answer.
	Route domain.Route

	// Text is the generated answer.
	Text string

	// Sources are the retrieved chunks the answer was grounded on.
	// Empty for general-knowledge answers.
	Sources []domain.ScoredChunk
}

// AssistantService answers user questions, routing each query to the
// appropriate strategy and recording the conversation.
type AssistantService interface {
	// Ask routes the query, retrieves context when the route needs it,
	// generates the answer and appends both turns to the session.
	Ask(ctx context.Context, sessionID, query string) (*Answer, error)

	// Summarise generates a structured summary of one document from
	// its leading sections.
	Summarise(ctx context.Context, documentID string) (string, error)

	// History returns a session's conversation in order.
	History(ctx context.Context, sessionID string) ([]domain.Message, error)
}
