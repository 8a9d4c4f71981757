// Package llm provides the Gemini client used for LLM-backed requirement
// extraction and text embeddings.
package llm

// Config holds the model configuration for the LLM client.
type Config struct {
	Model          string
	EmbeddingModel string
}

// DefaultConfig returns the default Gemini model configuration.
func DefaultConfig() *Config {
	return &Config{
		Model:          "gemini-2.5-flash-lite",
		EmbeddingModel: "text-embedding-004",
	}
}
