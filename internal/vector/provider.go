package vector

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vkinnnnn/givemejobs-match/internal/llm"
)

// EmbeddingProvider combines an LLM embedding client with a local index to
// satisfy the Provider contract.
type EmbeddingProvider struct {
	client llm.Client
	index  *InMemoryIndex
}

// NewEmbeddingProvider creates a provider over the given embedding client and
// index.
func NewEmbeddingProvider(client llm.Client, index *InMemoryIndex) *EmbeddingProvider {
	return &EmbeddingProvider{client: client, index: index}
}

// Embed embeds text via the LLM client.
func (p *EmbeddingProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	if p.client == nil {
		return nil, fmt.Errorf("no embedding client configured")
	}
	return p.client.EmbedText(ctx, text)
}

// Query delegates to the local index.
func (p *EmbeddingProvider) Query(ctx context.Context, vec []float32, topK int, filter map[string]string) ([]Match, error) {
	if p.index == nil {
		return nil, fmt.Errorf("no vector index configured")
	}
	return p.index.Query(ctx, vec, topK, filter)
}

// Index returns the underlying index for job upserts.
func (p *EmbeddingProvider) Index() *InMemoryIndex {
	return p.index
}

// IndexText embeds the text and stores the vector under the given id.
func (p *EmbeddingProvider) IndexText(ctx context.Context, id uuid.UUID, text string, metadata map[string]string) error {
	if p.index == nil {
		return fmt.Errorf("no vector index configured")
	}
	vec, err := p.Embed(ctx, text)
	if err != nil {
		return fmt.Errorf("failed to embed text for %s: %w", id, err)
	}
	p.index.Upsert(id, vec, metadata)
	return nil
}

// Remove drops the vector stored under the given id, if any.
func (p *EmbeddingProvider) Remove(id uuid.UUID) {
	if p.index != nil {
		p.index.Delete(id)
	}
}
