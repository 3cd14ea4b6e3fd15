package port

import "context"

// Embedder abstracts the sentence-embedding backend. Implementations must
// preserve input order in batch calls and be safe for concurrent use.
type Embedder interface {
	// ModelName returns the identifier of the embedding model.
	ModelName() string

	// Embed generates a vector embedding for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts in one call,
	// one vector per input, order preserved.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// ChatResult carries a chat completion's text plus token accounting.
type ChatResult struct {
	Content          string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// ChatCompleter abstracts the text-generation backend used by the
// summarizer. One call issues a single system+user exchange.
type ChatCompleter interface {
	// ModelName returns the identifier of the chat model.
	ModelName() string

	// Complete sends a system+user message pair and returns the generated
	// text with usage metadata.
	Complete(ctx context.Context, systemPrompt, userPrompt string) (*ChatResult, error)
}
