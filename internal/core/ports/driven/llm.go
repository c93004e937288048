package driven

import "context"

// LLMService provides language model operations for routing and
// answering. This is an optional service and must be treated as
// unreliable: it may fail or return garbage, and every call site is
// expected to degrade rather than propagate.
type LLMService interface {
	// Generate produces text completion from a prompt.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// Classify answers a constrained-label classification prompt.
	// The raw response is returned as-is; callers validate the label
	// and apply their own fallback.
	Classify(ctx context.Context, prompt string) (string, error)

	// Summarise creates a summary of document content.
	Summarise(ctx context.Context, content string, maxLength int) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable with a lightweight request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// GenerateOptions configures text generation behaviour.
type GenerateOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic).
	Temperature float64

	// StopWords are sequences that stop generation when encountered.
	StopWords []string
}
