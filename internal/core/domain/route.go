package domain

import "strings"

// Route is the answering strategy selected for a query.
type Route string

// Recognised routing labels.
const (
	// RouteDocument answers from retrieved document context only.
	RouteDocument Route = "document"

	// RouteGeneral answers from general legal knowledge, without
	// retrieval. This is the fail-safe default.
	RouteGeneral Route = "general"

	// RouteHybrid combines retrieved context with general knowledge.
	RouteHybrid Route = "hybrid"
)

// IsValid returns true if the route is recognised.
func (r Route) IsValid() bool {
	switch r {
	case RouteDocument, RouteGeneral, RouteHybrid:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (r Route) String() string {
	return string(r)
}

// ParseRoute normalises a classifier response into a Route.
// Unrecognised labels report ok=false; callers must fall back to
// RouteGeneral rather than failing the query.
func ParseRoute(s string) (Route, bool) {
	r := Route(strings.ToLower(strings.TrimSpace(s)))
	if r.IsValid() {
		return r, true
	}
	return RouteGeneral, false
}
