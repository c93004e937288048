package driving

import (
	"context"

	"github.com/akashhguptaa/Legal-ChatBot/internal/core/domain"
)

// RouterService classifies a query into an answering strategy.
type RouterService interface {
	// Route decides between document, general and hybrid answering.
	// It never fails: classification errors and unrecognised labels
	// degrade to domain.RouteGeneral.
	Route(ctx context.Context, query string, documents []domain.Document) domain.Route
}
