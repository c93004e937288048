package driven

import (
	"context"

	"github.com/akashhguptaa/Legal-ChatBot/internal/core/domain"
)

// DocumentStore persists document registry entries, sessions and
// conversation messages. Backed by SQLite.
type DocumentStore interface {
	// SaveDocument stores or updates a document registry entry.
	SaveDocument(ctx context.Context, doc *domain.Document) error

	// GetDocument retrieves a document by ID.
	// Returns domain.ErrNotFound when it does not exist.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// ListDocuments returns all documents for a session, newest first.
	ListDocuments(ctx context.Context, sessionID string) ([]domain.Document, error)

	// UpdateStatus transitions a document's processing status.
	UpdateStatus(ctx context.Context, id string, status domain.DocumentStatus) error

	// DeleteDocument removes a document registry entry.
	DeleteDocument(ctx context.Context, id string) error

	// SaveSession stores a session.
	SaveSession(ctx context.Context, session domain.Session) error

	// GetSession retrieves a session by ID.
	// Returns domain.ErrNotFound when it does not exist.
	GetSession(ctx context.Context, id string) (*domain.Session, error)

	// ListSessions returns all sessions, newest first.
	ListSessions(ctx context.Context) ([]domain.Session, error)

	// AppendMessage records one conversation turn.
	AppendMessage(ctx context.Context, msg domain.Message) error

	// ListMessages returns a session's messages in chronological order.
	ListMessages(ctx context.Context, sessionID string) ([]domain.Message, error)
}
