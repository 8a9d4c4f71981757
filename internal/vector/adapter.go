// Package vector provides the semantic similarity boundary: text embeddings
// plus nearest-neighbor lookup over a job index, behind a failure-isolating
// adapter.
package vector

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
)

// DefaultTimeout bounds every similarity lookup so a slow or absent vector
// service cannot stall score computation.
const DefaultTimeout = 300 * time.Millisecond

// Match is one nearest-neighbor result from the job index.
type Match struct {
	JobID      uuid.UUID         `json:"job_id"`
	Similarity float64           `json:"similarity"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// Result is the explicit outcome of a similarity lookup. Callers branch on
// Available; unavailability is an expected state, not an error.
type Result struct {
	Available bool
	Matches   []Match
}

// Provider is the contract for an embedding + vector query backend.
type Provider interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Query(ctx context.Context, vec []float32, topK int, filter map[string]string) ([]Match, error)
}

// Adapter wraps a Provider with a bounded timeout and converts every failure
// mode (timeout, backend error, missing configuration) into an unavailable
// Result.
type Adapter struct {
	provider Provider
	timeout  time.Duration
}

// NewAdapter creates an adapter over the given provider. A nil provider
// yields an adapter that always reports unavailable.
func NewAdapter(provider Provider, timeout time.Duration) *Adapter {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Adapter{provider: provider, timeout: timeout}
}

// Similar embeds the text and returns the topK most similar indexed jobs.
// On any failure it logs a warning and reports unavailable so the caller
// falls back to traditional scoring.
func (a *Adapter) Similar(ctx context.Context, text string, topK int, filter map[string]string) Result {
	if a == nil || a.provider == nil {
		return Result{}
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	vec, err := a.provider.Embed(ctx, text)
	if err != nil {
		log.Printf("warning: semantic similarity unavailable (embed): %v", err)
		return Result{}
	}

	matches, err := a.provider.Query(ctx, vec, topK, filter)
	if err != nil {
		log.Printf("warning: semantic similarity unavailable (query): %v", err)
		return Result{}
	}

	for i := range matches {
		matches[i].Similarity = clampUnit(matches[i].Similarity)
	}
	return Result{Available: true, Matches: matches}
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
