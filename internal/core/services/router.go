package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/akashhguptaa/Legal-ChatBot/internal/core/domain"
	"github.com/akashhguptaa/Legal-ChatBot/internal/core/ports/driven"
	"github.com/akashhguptaa/Legal-ChatBot/internal/core/ports/driving"
	"github.com/akashhguptaa/Legal-ChatBot/internal/logger"
)

// Ensure RouterService implements the interface.
var _ driving.RouterService = (*RouterService)(nil)

// RouterService classifies queries into answering strategies using an
// LLM. Classification is advisory: any failure, an unreachable model
// or a label outside the known set all degrade to the general route.
type RouterService struct {
	llm driven.LLMService
}

// NewRouterService creates a new router. The llm parameter is
// optional; without it every query routes to general.
func NewRouterService(llm driven.LLMService) *RouterService {
	return &RouterService{llm: llm}
}

// Route decides how a query should be answered. It never returns an
// error by contract.
func (s *RouterService) Route(ctx context.Context, query string, documents []domain.Document) domain.Route {
	if len(documents) == 0 {
		logger.Debug("No documents in session, routing to general")
		return domain.RouteGeneral
	}
	if s.llm == nil {
		logger.Debug("LLM unavailable, routing to general")
		return domain.RouteGeneral
	}

	names := make([]string, 0, len(documents))
	for _, doc := range documents {
		if doc.Status == domain.StatusProcessed {
			names = append(names, doc.Filename)
		}
	}
	if len(names) == 0 {
		logger.Debug("No processed documents in session, routing to general")
		return domain.RouteGeneral
	}

	prompt := fmt.Sprintf(routePromptTemplate, strings.Join(names, ", "), query)
	label, err := s.llm.Classify(ctx, prompt)
	if err != nil {
		logger.Warn("Route classification failed: %v, routing to general", err)
		return domain.RouteGeneral
	}

	route, ok := domain.ParseRoute(label)
	if !ok {
		logger.Warn("Unrecognised route label %q, routing to general", label)
		return domain.RouteGeneral
	}
	logger.Debug("Routed query to %s", route)
	return route
}
